//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/savioruz/geoapi/config"
	"github.com/savioruz/geoapi/internal/delivery/http"
)

func InitializeApp(cfg *config.Config) (*Application, error) {
	wire.Build(
		// Infrastructure providers
		infrastructure,

		domains,

		wire.Struct(new(http.Handlers), "*"),

		// HTTP server
		provideHTTPServer,

		NewSeeder,

		// Application
		wire.Struct(new(Application), "*"),
	)

	return &Application{}, nil
}
