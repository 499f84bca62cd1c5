package bootstrap

import (
	"context"
	"log/slog"

	"ticketgate/internal/infra/notify"
	"ticketgate/internal/pkg/config"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewMailer,
		NewDispatcher,
	),
	fx.Invoke(runDispatcher),
)

func NewMailer(cfg config.Config) notify.Mailer {
	return notify.NewSMTPMailer(cfg.SMTP)
}

func NewDispatcher(mailer notify.Mailer, cfg config.Config, logger *slog.Logger) *notify.Dispatcher {
	return notify.NewDispatcher(mailer, cfg.Ticket.NotifyQueueSize, logger)
}

func runDispatcher(lc fx.Lifecycle, dispatcher *notify.Dispatcher) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			dispatcher.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			dispatcher.Stop()
			return nil
		},
	})
}
