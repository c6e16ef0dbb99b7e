//go:build unit

package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"roomescape/internal/handler"
	"roomescape/internal/handler/api"
	"roomescape/internal/handler/middleware"
	"roomescape/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	logger := middleware.NewLogger(cfg.Log)
	t.Cleanup(func() { _ = logger.Close() })

	engine := gin.New()
	handler.NewRouter(engine, cfg, logger, middleware.NewRateLimiter(cfg.RateLimit), handler.Handlers{
		TimeSlots:    api.NewTimeSlotHandler(nil, nil),
		Themes:       api.NewThemeHandler(nil, nil),
		Reservations: api.NewReservationHandler(nil, nil),
	})
	return engine
}

func TestNewRouter_RegistersRoutes(t *testing.T) {
	engine := newTestEngine(t)

	got := map[string]bool{}
	for _, r := range engine.Routes() {
		got[r.Method+" "+r.Path] = true
	}

	expected := []string{
		"GET /health",
		"GET /times", "POST /times", "GET /times/:id", "DELETE /times/:id",
		"GET /themes", "POST /themes", "GET /themes/top", "GET /themes/:id", "DELETE /themes/:id",
		"GET /reservations", "POST /reservations", "GET /reservations/themes/:themeId",
		"GET /reservations/:id", "DELETE /reservations/:id",
	}
	for _, e := range expected {
		assert.True(t, got[e], "missing route %s", e)
	}
	assert.Len(t, got, len(expected))
}

func TestNewRouter_Health(t *testing.T) {
	engine := newTestEngine(t)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
