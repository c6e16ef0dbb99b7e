package bootstrap

import (
	"roomescape/internal/pkg/clock"
	"roomescape/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewClock,
	),
)

// NewClock binds "now" to APP_TIMEZONE so past-reservation checks use the
// business day of the venue.
func NewClock(cfg config.Config) (clock.Clock, error) {
	loc, err := cfg.App.Location()
	if err != nil {
		return nil, err
	}
	return clock.NewRealClockIn(loc), nil
}
