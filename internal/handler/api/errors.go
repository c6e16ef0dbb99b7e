package api

import (
	"net/http"

	"roomescape/internal/handler/httperr"
	"roomescape/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithUseCaseError maps the error kind to a status. Messages of kinded
// errors are safe to show; anything else becomes a generic 500.
func abortWithUseCaseError(c *gin.Context, err error) {
	switch {
	case errs.IsInvalidInput(err):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.IsNotFound(err):
		httperr.AbortWithError(c, http.StatusNotFound, err, err.Error(), nil)
	case errs.IsConflict(err):
		httperr.AbortWithError(c, http.StatusConflict, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func abortInvalidRequest(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
}
