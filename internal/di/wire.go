//go:build wireinject
// +build wireinject

package di

import (
	"GridPulse/pkg/config"
	"GridPulse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideClock,
		ProvideMetrics,

		// Domain
		ProvideCatalog,
		ProvideMarketData,

		// Transport extras
		ProvideCache,
		ProvideSimulator,
		ProvideHub,
		ProvideBroadcaster,

		// HTTP surface
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
