package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/savioruz/geoapi/pkg/gdto"
	"github.com/savioruz/geoapi/pkg/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersTable_CoversSortColumns(t *testing.T) {
	for _, col := range gdto.Users.SortColumns {
		_, ok := usersTable.Fields[col]
		assert.True(t, ok, "sort column %s has no SQL mapping", col)
	}
}

func TestQueries_ListUsers(t *testing.T) {
	db, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer db.Close()

	var id pgtype.UUID
	require.NoError(t, id.Scan("2b1f6c0e-3a0c-4b8e-9d11-5b3c1f4a7e21"))

	now := pgtype.Timestamp{Time: time.Now().UTC(), Valid: true}
	page := 2
	paging := gdto.PagedRequest{Page: &page, SortColumn: "email"}.Normalize(gdto.Users)

	db.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users WHERE (email ILIKE $1)")).
		WithArgs(`%100\%%`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(11)))

	db.ExpectQuery(regexp.QuoteMeta("SELECT id, username, email, first_name, last_name, password_hash, created_at, updated_at FROM users WHERE (email ILIKE $1) ORDER BY email ASC, id ASC LIMIT 10 OFFSET 10")).
		WithArgs(`%100\%%`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "email", "first_name", "last_name", "password_hash", "created_at", "updated_at"}).
			AddRow(id, "user", "100%@geoapi.com", "Regular", "User", "hash", now, now))

	items, total, err := New().ListUsers(context.Background(), db, query.New().Contains(FieldEmail, "100%"), paging)

	require.NoError(t, err)
	assert.Equal(t, int64(11), total)
	require.Len(t, items, 1)
	assert.Equal(t, "user", items[0].Username)
	assert.NoError(t, db.ExpectationsWereMet())
}
