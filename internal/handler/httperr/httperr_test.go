//go:build unit

package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"roomescape/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cause := errors.New("slot taken")

	var recorded *gin.Error
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(httperr.ContextKeyRequestID, "req-1")
		c.Next()
		require.Len(t, c.Errors, 1)
		recorded = c.Errors[0]
	})
	r.GET("/x", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusConflict, cause, "already reserved", nil)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusConflict, w.Code)
	var body httperr.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "already reserved", body.Error.Message)
	assert.Equal(t, "req-1", body.RequestID)

	require.NotNil(t, recorded)
	assert.True(t, recorded.IsType(gin.ErrorTypePublic), "error must stay public")
	assert.ErrorIs(t, recorded.Err, cause)
	meta, ok := recorded.Meta.(httperr.Response)
	require.True(t, ok, "response must travel in Meta")
	assert.Equal(t, http.StatusConflict, meta.Status)
	assert.Equal(t, "already reserved", meta.Error.Message)
}
