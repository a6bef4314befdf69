package dto

import "github.com/savioruz/geoapi/pkg/gdto"

type CreateCountryRequest struct {
	Name    string `example:"Germany" json:"name" validate:"required,max=100"`
	IsoCode string `example:"DEU" json:"isoCode" validate:"required,len=3"`
}

type UpdateCountryRequest struct {
	Name    string `example:"Germany" json:"name" validate:"required,max=100"`
	IsoCode string `example:"DEU" json:"isoCode" validate:"required,len=3"`
}

type GetCountriesRequest struct {
	gdto.PagedRequest
	Name    string `json:"name" query:"name" validate:"max=100"`
	IsoCode string `json:"isoCode" query:"isoCode" validate:"max=3"`
}
