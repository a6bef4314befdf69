package dto

import "github.com/savioruz/geoapi/internal/domains/cities/repository"

type CityResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	CountryID string  `json:"countryId"`
}

func (c CityResponse) FromModel(model repository.City) CityResponse {
	return CityResponse{
		ID:        model.ID.String(),
		Name:      model.Name,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		CountryID: model.CountryID.String(),
	}
}

func FromModels(models []repository.City) []CityResponse {
	res := make([]CityResponse, len(models))
	for i, model := range models {
		res[i] = CityResponse{}.FromModel(model)
	}

	return res
}
