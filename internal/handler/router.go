package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"roomescape/internal/handler/api"
	"roomescape/internal/handler/middleware"
	"roomescape/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	TimeSlots    *api.TimeSlotHandler
	Themes       *api.ThemeHandler
	Reservations *api.ReservationHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	limiter *middleware.RateLimiter,
	h Handlers,
) {
	setupMiddleware(engine, cfg, logger, limiter)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, limiter *middleware.RateLimiter) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(limiter.Middleware())
	engine.Use(middleware.ErrorHandler())

	engine.HandleMethodNotAllowed = true
	engine.NoRoute(middleware.NoRoute())
	engine.NoMethod(middleware.NoMethod())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	root := engine.Group("")
	{
		times := root.Group("/times")
		addRoutes(times, []route{
			{Method: http.MethodGet, Path: "", Handler: h.TimeSlots.List},
			{Method: http.MethodPost, Path: "", Handler: h.TimeSlots.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.TimeSlots.Get},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.TimeSlots.Delete},
		})

		themes := root.Group("/themes")
		addRoutes(themes, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Themes.List},
			{Method: http.MethodPost, Path: "", Handler: h.Themes.Create},
			{Method: http.MethodGet, Path: "/top", Handler: h.Themes.Top},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Themes.Get},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Themes.Delete},
		})

		reservations := root.Group("/reservations")
		addRoutes(reservations, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Reservations.List},
			{Method: http.MethodPost, Path: "", Handler: h.Reservations.Create},
			{Method: http.MethodGet, Path: "/themes/:themeId", Handler: h.Reservations.Availability},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservations.Get},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservations.Delete},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
