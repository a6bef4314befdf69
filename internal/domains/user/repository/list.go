package repository

import (
	"context"

	"github.com/savioruz/geoapi/pkg/gdto"
	"github.com/savioruz/geoapi/pkg/postgres"
	"github.com/savioruz/geoapi/pkg/query"
)

//go:generate mockgen -destination=../mock/store.go -package=mock github.com/savioruz/geoapi/internal/domains/user/repository Store

const (
	FieldID       = "Id"
	FieldUserName = "UserName"
	FieldEmail    = "Email"
)

var usersTable = postgres.Table{
	From: "users",
	Columns: []string{
		"id", "username", "email", "first_name", "last_name", "password_hash", "created_at", "updated_at",
	},
	Fields: map[string]string{
		FieldID:       "id",
		FieldUserName: "username",
		FieldEmail:    "email",
	},
	Key: FieldID,
}

type Store interface {
	Querier
	ListUsers(ctx context.Context, db DBTX, spec query.Spec, p gdto.Paging) ([]User, int64, error)
}

var _ Store = (*Queries)(nil)

func (q *Queries) ListUsers(ctx context.Context, db DBTX, spec query.Spec, p gdto.Paging) ([]User, int64, error) {
	return postgres.ListPage[User](ctx, db, usersTable, spec, p)
}
