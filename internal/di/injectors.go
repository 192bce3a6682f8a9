//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"sdn/internal"
	"sdn/internal/controllers"
	"sdn/internal/discord"
	"sdn/internal/providers"
	"sdn/internal/steam"
	"sdn/internal/structures"
	"sdn/internal/watcher"
)

func InitApp(flags *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewCacheProvider,

		steam.NewClient,
		discord.NewNotifier,
		watcher.NewDetector,
		watcher.NewStatusStore,
		watcher.NewSupervisor,

		controllers.NewLivenessController,
		controllers.NewHealthController,
		controllers.NewStatusController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
