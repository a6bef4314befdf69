package dto

import "github.com/savioruz/geoapi/internal/domains/countries/repository"

type CountryResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IsoCode string `json:"isoCode"`
}

func (c CountryResponse) FromModel(model repository.Country) CountryResponse {
	return CountryResponse{
		ID:      model.ID.String(),
		Name:    model.Name,
		IsoCode: model.IsoCode,
	}
}

func FromModels(models []repository.Country) []CountryResponse {
	res := make([]CountryResponse, len(models))
	for i, model := range models {
		res[i] = CountryResponse{}.FromModel(model)
	}

	return res
}
