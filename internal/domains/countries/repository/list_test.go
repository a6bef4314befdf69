package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/savioruz/geoapi/pkg/gdto"
	"github.com/savioruz/geoapi/pkg/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountriesTable_CoversSortColumns(t *testing.T) {
	for _, col := range gdto.Countries.SortColumns {
		_, ok := countriesTable.Fields[col]
		assert.True(t, ok, "sort column %s has no SQL mapping", col)
	}
}

func TestQueries_ListCountries(t *testing.T) {
	t.Run("filters by substring and sorts by iso code", func(t *testing.T) {
		db, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer db.Close()

		spec := query.New().Contains(FieldName, "united").Contains(FieldIsoCode, "u")
		paging := gdto.PagedRequest{SortColumn: "isocode", SortOrder: "desc"}.Normalize(gdto.Countries)

		db.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM countries WHERE (name ILIKE $1 AND iso_code ILIKE $2)")).
			WithArgs("%united%", "%u%").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))

		db.ExpectQuery(regexp.QuoteMeta("SELECT id, name, iso_code, created_at, updated_at FROM countries WHERE (name ILIKE $1 AND iso_code ILIKE $2) ORDER BY iso_code DESC, id ASC LIMIT 10 OFFSET 0")).
			WithArgs("%united%", "%u%").
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "iso_code", "created_at", "updated_at"}).
				AddRow(pgUUID(t, "7d2f4a52-8a55-4c34-9a3b-0d3c1c6f5a10"), "United Kingdom", "GBR", pgNow(), pgNow()))

		items, total, err := New().ListCountries(context.Background(), db, spec, paging)

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, items, 1)
		assert.Equal(t, "GBR", items[0].IsoCode)
		assert.NoError(t, db.ExpectationsWereMet())
	})

	t.Run("empty set skips the page query", func(t *testing.T) {
		db, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer db.Close()

		db.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM countries")).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))

		items, total, err := New().ListCountries(context.Background(), db, query.New(), gdto.PagedRequest{}.Normalize(gdto.Countries))

		require.NoError(t, err)
		assert.Zero(t, total)
		assert.NotNil(t, items)
		assert.Empty(t, items)
		assert.NoError(t, db.ExpectationsWereMet())
	})
}
