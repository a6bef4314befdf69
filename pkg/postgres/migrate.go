package postgres

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/savioruz/geoapi/pkg/logger"
)

type gooseLogger struct {
	l logger.Interface
}

func (g gooseLogger) Printf(format string, v ...interface{}) {
	g.l.Info("postgres - migrate - "+format, v...)
}

// Fatalf logs only; goose errors are also returned to the caller.
func (g gooseLogger) Fatalf(format string, v ...interface{}) {
	g.l.Error("postgres - migrate - "+format, v...)
}

// Migrate applies every pending goose migration found in dir of fsys.
func (p *Postgres) Migrate(ctx context.Context, fsys fs.FS, dir string, l logger.Interface) error {
	db := stdlib.OpenDBFromPool(p.Pool)
	defer db.Close()

	goose.SetBaseFS(fsys)
	goose.SetLogger(gooseLogger{l: l})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("postgres: set migration dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("postgres: migrate: %w", err)
	}

	return nil
}
