package components

import (
	"roomescape/internal/handler"
	"roomescape/internal/handler/api"
	"roomescape/internal/handler/middleware"
	"roomescape/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewTimeSlotHandler,
		api.NewThemeHandler,
		api.NewReservationHandler,
		NewHandlers,
		NewRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(ts *api.TimeSlotHandler, th *api.ThemeHandler, rs *api.ReservationHandler) handler.Handlers {
	return handler.Handlers{
		TimeSlots:    ts,
		Themes:       th,
		Reservations: rs,
	}
}

func NewRateLimiter(cfg config.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimit)
}
