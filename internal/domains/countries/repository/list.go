package repository

import (
	"context"

	"github.com/savioruz/geoapi/pkg/gdto"
	"github.com/savioruz/geoapi/pkg/postgres"
	"github.com/savioruz/geoapi/pkg/query"
)

//go:generate mockgen -destination=../mock/store.go -package=mock github.com/savioruz/geoapi/internal/domains/countries/repository Store

// Filterable and sortable country fields.
const (
	FieldID      = "Id"
	FieldName    = "Name"
	FieldIsoCode = "IsoCode"
)

var countriesTable = postgres.Table{
	From:    "countries",
	Columns: []string{"id", "name", "iso_code", "created_at", "updated_at"},
	Fields: map[string]string{
		FieldID:      "id",
		FieldName:    "name",
		FieldIsoCode: "iso_code",
	},
	Key: FieldID,
}

// Store is every country query, the generated ones plus the dynamic listing.
type Store interface {
	Querier
	ListCountries(ctx context.Context, db DBTX, spec query.Spec, p gdto.Paging) ([]Country, int64, error)
}

var _ Store = (*Queries)(nil)

func (q *Queries) ListCountries(ctx context.Context, db DBTX, spec query.Spec, p gdto.Paging) ([]Country, int64, error) {
	return postgres.ListPage[Country](ctx, db, countriesTable, spec, p)
}
