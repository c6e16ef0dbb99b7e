//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"roomescape/internal/handler/httperr"
	"roomescape/internal/handler/middleware"
	"roomescape/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	r.NoRoute(middleware.NoRoute())
	r.NoMethod(middleware.NoMethod())

	r.GET("/boom", func(c *gin.Context) { panic("boom") })
	r.GET("/public", func(c *gin.Context) {
		_ = c.Error(&gin.Error{
			Err:  errors.New("bad input"),
			Type: gin.ErrorTypePublic,
			Meta: httperr.NewResponse(c, http.StatusUnprocessableEntity, "bad input", nil),
		})
	})
	r.GET("/private", func(c *gin.Context) {
		_ = c.Error(errors.New("db exploded"))
	})
	r.POST("/only-post", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestErrorHandling(t *testing.T) {
	r := newErrorRouter()

	t.Run("unknown route is a JSON 404", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/nowhere", nil)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Not found")
	})

	t.Run("wrong method is a JSON 405", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/only-post", nil)
		httptest.AssertErrorResponse(t, w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	t.Run("panic is recovered as 500", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/boom", nil)
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("public error metadata is rendered", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/public", nil)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "bad input")
	})

	t.Run("private error is hidden", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/private", nil)
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
		assert.NotContains(t, w.Body.String(), "db exploded")
	})
}
