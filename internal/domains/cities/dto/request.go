package dto

import "github.com/savioruz/geoapi/pkg/gdto"

type CreateCityRequest struct {
	Name      string  `example:"Toronto" json:"name" validate:"required,max=100"`
	Latitude  float64 `example:"43.6532" json:"latitude" validate:"latitude"`
	Longitude float64 `example:"-79.3832" json:"longitude" validate:"longitude"`
}

type UpdateCityRequest struct {
	Name      string  `example:"Toronto" json:"name" validate:"required,max=100"`
	Latitude  float64 `example:"43.6532" json:"latitude" validate:"latitude"`
	Longitude float64 `example:"-79.3832" json:"longitude" validate:"longitude"`
}

// GetCitiesRequest filters a country's cities. Coordinates match exactly.
type GetCitiesRequest struct {
	gdto.PagedRequest
	Name      string   `json:"name" query:"name" validate:"max=100"`
	Latitude  *float64 `json:"latitude" query:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" query:"longitude" validate:"omitempty,longitude"`
}
