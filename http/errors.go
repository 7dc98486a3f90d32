package http

import (
	"errors"
	"net/http"

	"finance-engine/calculator"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// HTTPError is the body of every error response.
type HTTPError struct {
	Error string `json:"error"`
}

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, HTTPError{Error: message})
}

// statusFor maps an error to its HTTP status
func statusFor(err error) int {
	switch {
	case calculator.IsTypeMismatch(err):
		return http.StatusBadRequest
	case calculator.IsDomainViolation(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, calculator.ErrUnknownTool):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError responds with the status for err. Internal errors are logged
// and replaced by a generic message.
func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err)
		abortWithError(c, status, "internal server error")
		return
	}
	abortWithError(c, status, err.Error())
}

func invalidBody(c *gin.Context, err error) {
	log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("invalid request body")
	abortWithError(c, http.StatusBadRequest, "invalid request body")
}
