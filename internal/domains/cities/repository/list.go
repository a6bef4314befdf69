package repository

import (
	"context"

	"github.com/savioruz/geoapi/pkg/gdto"
	"github.com/savioruz/geoapi/pkg/postgres"
	"github.com/savioruz/geoapi/pkg/query"
)

//go:generate mockgen -destination=../mock/store.go -package=mock github.com/savioruz/geoapi/internal/domains/cities/repository Store

const (
	FieldID        = "Id"
	FieldCountryID = "CountryId"
	FieldName      = "Name"
	FieldCountry   = "Country"
	FieldLatitude  = "Latitude"
	FieldLongitude = "Longitude"
)

// "Country" sorts by the parent's name, hence the join.
var citiesTable = postgres.Table{
	From: "cities ci JOIN countries co ON co.id = ci.country_id",
	Columns: []string{
		"ci.id", "ci.country_id", "ci.name", "ci.latitude", "ci.longitude", "ci.created_at", "ci.updated_at",
	},
	Fields: map[string]string{
		FieldID:        "ci.id",
		FieldCountryID: "ci.country_id",
		FieldName:      "ci.name",
		FieldCountry:   "co.name",
		FieldLatitude:  "ci.latitude",
		FieldLongitude: "ci.longitude",
	},
	Key: FieldID,
}

type Store interface {
	Querier
	ListCities(ctx context.Context, db DBTX, spec query.Spec, p gdto.Paging) ([]City, int64, error)
}

var _ Store = (*Queries)(nil)

func (q *Queries) ListCities(ctx context.Context, db DBTX, spec query.Spec, p gdto.Paging) ([]City, int64, error) {
	return postgres.ListPage[City](ctx, db, citiesTable, spec, p)
}
