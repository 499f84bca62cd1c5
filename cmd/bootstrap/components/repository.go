package components

import (
	"ticketgate/internal/infra/readstore"
	repo_impl "ticketgate/internal/infra/repository"
	"ticketgate/internal/usecase/commands"
	"ticketgate/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write side. The event repository doubles as the seat ledger:
		// both surfaces are backed by the same conditional updates.
		fx.Annotate(
			repo_impl.NewEventRepository,
			fx.As(new(commands.SeatLedger)),
			fx.As(new(commands.EventReader)),
			fx.As(new(commands.EventRepository)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
			fx.As(new(commands.TicketConsumer)),
		),
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
			fx.As(new(commands.UserReader)),
		),
		// Read side
		fx.Annotate(
			readstore.NewEventReadStore,
			fx.As(new(queries.EventReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(commands.ScanReader)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewDashboardReadStore,
			fx.As(new(queries.DashboardReadStore)),
		),
	),
)
