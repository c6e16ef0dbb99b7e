package middleware

import (
	"log/slog"
	"net/http"

	"roomescape/internal/handler/httperr"
	"roomescape/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var (
	errRouteNotFound    = errs.New("route not found")
	errMethodNotAllowed = errs.New("method not allowed")
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// latest error wins
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				// public errors carry their response in Meta
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
	}
}

func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusNotFound, errRouteNotFound, "Not found", nil)
	}
}

func NoMethod() gin.HandlerFunc {
	return func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusMethodNotAllowed, errMethodNotAllowed, "Method not allowed", nil)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic",
					"error", err,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c),
				)

				resp := httperr.NewResponse(c, http.StatusInternalServerError, "Internal server error", nil)
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
