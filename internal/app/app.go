package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/savioruz/geoapi/config"
	"github.com/savioruz/geoapi/migrations"
	"github.com/savioruz/geoapi/pkg/constant"
)

//go:generate go run github.com/google/wire/cmd/wire

func Run(cfg *config.Config) {
	app, err := InitializeApp(cfg)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize application: %v", err))
	}

	defer app.PG.Close()
	defer app.Redis.Close()

	ctx := context.Background()

	if err := app.PG.Ping(ctx); err != nil {
		app.Logger.Fatal(fmt.Errorf("app - Run - postgres.Ping: %w", err))
	}

	if err := app.Redis.Ping(ctx); err != nil {
		app.Logger.Fatal(fmt.Errorf("app - Run - redis.Ping: %w", err))
	}

	if cfg.Pg.Migrate {
		if err := app.PG.Migrate(ctx, migrations.FS, migrations.Dir, app.Logger); err != nil {
			app.Logger.Fatal(fmt.Errorf("app - Run - postgres.Migrate: %w", err))
		}
	}

	if cfg.App.Seed {
		if strings.EqualFold(cfg.App.Environment, constant.EnvDevelopment) {
			if err := app.Seeder.Seed(ctx); err != nil {
				app.Logger.Fatal(fmt.Errorf("app - Run - seed: %w", err))
			}
		} else {
			app.Logger.Warn("app - Run - APP_SEED ignored outside development")
		}
	}

	scheduler, err := Cron(app.Auth, cfg, app.Logger)
	if err != nil {
		app.Logger.Fatal(fmt.Errorf("app - Run - cron: %w", err))
	}

	defer scheduler.Stop()

	app.HTTPServer.Start()
	app.Logger.Info("app - Run - listening on :" + cfg.HTTP.Port)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		app.Logger.Info("app - Run - signal: " + s.String())
	case err = <-app.HTTPServer.Notify():
		app.Logger.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}

	err = app.HTTPServer.Shutdown()
	if err != nil {
		app.Logger.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}
}
