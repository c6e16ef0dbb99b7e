package api

import (
	"strconv"

	"roomescape/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errInvalidID = errs.NewKind("id must be a positive integer", errs.ErrInvalidInput)

func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
