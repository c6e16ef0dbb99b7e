//go:build unit

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"roomescape/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitedRouter(cfg config.RateLimitConfig) (*gin.Engine, *RateLimiter) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(cfg)
	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r, rl
}

func doFrom(r *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = ip + ":40000"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter(t *testing.T) {
	t.Run("rejects requests beyond the burst", func(t *testing.T) {
		r, _ := newLimitedRouter(config.RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 2})

		assert.Equal(t, http.StatusOK, doFrom(r, "10.0.0.1").Code)
		assert.Equal(t, http.StatusOK, doFrom(r, "10.0.0.1").Code)

		w := doFrom(r, "10.0.0.1")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "1", w.Header().Get("Retry-After"))
		assert.Contains(t, w.Body.String(), "Too many requests")
	})

	t.Run("buckets are per client", func(t *testing.T) {
		r, _ := newLimitedRouter(config.RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 1})

		assert.Equal(t, http.StatusOK, doFrom(r, "10.0.0.1").Code)
		assert.Equal(t, http.StatusTooManyRequests, doFrom(r, "10.0.0.1").Code)
		assert.Equal(t, http.StatusOK, doFrom(r, "10.0.0.2").Code)
	})

	t.Run("disabled limiter passes everything", func(t *testing.T) {
		r, rl := newLimitedRouter(config.RateLimitConfig{Enabled: false, RPS: 0.001, Burst: 1})

		for i := 0; i < 5; i++ {
			assert.Equal(t, http.StatusOK, doFrom(r, "10.0.0.1").Code)
		}
		assert.Empty(t, rl.visitors)
	})

	t.Run("idle visitors are evicted when a new client arrives", func(t *testing.T) {
		r, rl := newLimitedRouter(config.RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 1})
		now := time.Date(2030, time.January, 1, 12, 0, 0, 0, time.UTC)
		rl.now = func() time.Time { return now }

		require.Equal(t, http.StatusOK, doFrom(r, "10.0.0.1").Code)
		require.Len(t, rl.visitors, 1)

		now = now.Add(limiterIdleTTL + time.Second)
		require.Equal(t, http.StatusOK, doFrom(r, "10.0.0.2").Code)

		assert.Len(t, rl.visitors, 1)
		assert.Contains(t, rl.visitors, "10.0.0.2")
		// the evicted client starts over with a fresh bucket
		assert.Equal(t, http.StatusOK, doFrom(r, "10.0.0.1").Code)
	})
}
