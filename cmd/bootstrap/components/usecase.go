package components

import (
	"log/slog"

	"ticketgate/internal/infra/artifact"
	"ticketgate/internal/infra/notify"
	"ticketgate/internal/pkg/clock"
	"ticketgate/internal/pkg/config"
	"ticketgate/internal/pkg/token"
	"ticketgate/internal/usecase"
	"ticketgate/internal/usecase/commands"
	"ticketgate/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	// The artifact store and encoder are consumed through narrow ports.
	func(s *artifact.Store) commands.ArtifactWriter { return s },
	func(s *artifact.Store) usecase.ArtifactReader { return s },
	func(e *artifact.QREncoder) commands.ArtifactEncoder { return e },
	func(d *notify.Dispatcher) commands.Notifier { return d },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthUseCase,
		commands.NewEventUseCase,
		NewBookingUseCase,
		NewValidationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewEventQueries,
		queries.NewBookingQueries,
		queries.NewDashboardQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
		usecase.NewArtifactAccess,
	),
)

func NewBookingUseCase(
	ledger commands.SeatLedger,
	events commands.EventReader,
	bookings commands.BookingRepository,
	users commands.UserReader,
	reads queries.BookingQueries,
	encoder commands.ArtifactEncoder,
	store commands.ArtifactWriter,
	capability *token.CapabilityService,
	notifier commands.Notifier,
	cfg config.Config,
	logger *slog.Logger,
) commands.BookingCommands {
	return commands.NewBookingUseCase(
		ledger, events, bookings, users, reads,
		encoder, store, capability, notifier,
		cfg.Ticket.ArtifactTokenTTL, cfg.Server.BaseURL, logger,
	)
}

func NewValidationUseCase(
	consumer commands.TicketConsumer,
	reads commands.ScanReader,
	clk clock.Clock,
	logger *slog.Logger,
) commands.ValidationCommands {
	return commands.NewValidationUseCase(consumer, reads, clk, logger)
}
