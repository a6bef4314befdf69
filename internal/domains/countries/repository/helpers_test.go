package repository

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"
)

func pgUUID(t *testing.T, id string) pgtype.UUID {
	t.Helper()

	var u pgtype.UUID
	require.NoError(t, u.Scan(id))

	return u
}

func pgNow() pgtype.Timestamp {
	return pgtype.Timestamp{Time: time.Now().UTC(), Valid: true}
}
