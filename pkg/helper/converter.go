package helper

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// PgUUID converts a string UUID to pgtype.UUID
func PgUUID(id string) pgtype.UUID {
	var uuid pgtype.UUID

	err := uuid.Scan(id)
	if err != nil {
		return pgtype.UUID{Valid: false}
	}

	return uuid
}

// PgTimestamp converts a time.Time object to pgtype.Timestamp
func PgTimestamp(t time.Time) pgtype.Timestamp {
	return pgtype.Timestamp{
		Time:             t.UTC(),
		InfinityModifier: 0,
		Valid:            true,
	}
}
