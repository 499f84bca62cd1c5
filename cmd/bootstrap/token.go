package bootstrap

import (
	"time"

	"ticketgate/internal/pkg/clock"
	"ticketgate/internal/pkg/config"
	"ticketgate/internal/pkg/token"

	"go.uber.org/fx"
)

var TokenModule = fx.Module("token",
	fx.Provide(
		NewSessionService,
		NewCapabilityService,
	),
)

func NewSessionService(cfg config.Config) *token.SessionService {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		panic("invalid JWT_DURATION: " + err.Error())
	}

	return token.NewSessionService(cfg.JWT.Secret, duration)
}

func NewCapabilityService(cfg config.Config, clk clock.Clock) *token.CapabilityService {
	return token.NewCapabilityService(cfg.JWT.Secret, clk)
}
