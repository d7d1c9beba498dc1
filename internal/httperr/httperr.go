package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type HTTPError struct {
	Success bool   `json:"success"`
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func ServiceUnavailable(c *gin.Context, code, message string) {
	Write(c, http.StatusServiceUnavailable, code, message)
}

// Respond is the single mapping point from use-case errors to responses.
// Anything that is not a BusinessError is logged and reported as a generic
// 500 without leaking its text.
func Respond(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		body := gin.H{
			"success":    false,
			"error_code": be.Code,
			"message":    be.Message,
		}
		for k, v := range be.Fields {
			body[k] = v
		}
		c.JSON(be.Kind.Status(), body)
		return
	}

	log.Error().
		Err(err).
		Str("method", c.Request.Method).
		Str("path", c.FullPath()).
		Msg("request failed")

	Internal(c, "internal_error", "Internal server error.")
}
