package bootstrap

import (
	"context"
	"log/slog"

	"ticketgate/internal/infra/artifact"
	"ticketgate/internal/pkg/clock"
	"ticketgate/internal/pkg/config"

	"go.uber.org/fx"
)

var ArtifactModule = fx.Module("artifact",
	fx.Provide(
		NewArtifactStore,
		artifact.NewQREncoder,
		NewSweeper,
	),
	fx.Invoke(runSweeper),
)

func NewArtifactStore(cfg config.Config) (*artifact.Store, error) {
	return artifact.NewStore(cfg.Ticket.ArtifactDir)
}

func NewSweeper(store *artifact.Store, clk clock.Clock, cfg config.Config, logger *slog.Logger) *artifact.Sweeper {
	return artifact.NewSweeper(store, clk, cfg.Ticket.ArtifactRetention, cfg.Ticket.SweepInterval, logger)
}

func runSweeper(lc fx.Lifecycle, sweeper *artifact.Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sweeper.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			sweeper.Stop()
			return nil
		},
	})
}
