package httperr

import (
	"github.com/gin-gonic/gin"
)

// ContextKeyRequestID is where the logging middleware stores the request id.
const ContextKeyRequestID = "request_id"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	RequestID string `json:"requestId,omitempty"`
	Detail    any    `json:"detail,omitempty"`
}

func NewResponse(c *gin.Context, status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	resp.RequestID = c.GetString(ContextKeyRequestID)
	return resp
}

// preserves original error for the logging middleware
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(c, status, msg, detail)

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
