package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ets-hub/etshub-backend/internal/app/models/dto"
	"github.com/ets-hub/etshub-backend/internal/pkg/apperrors"
	"github.com/ets-hub/etshub-backend/internal/pkg/logger"
)

// HandleAPIError maps service errors onto the uniform error envelope.
// Messages attached to known error kinds pass through to the client;
// anything unrecognized becomes a generic 500 and the cause is only
// logged server-side.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	message := ""
	var details map[string]interface{}
	if errors.As(err, &custom) {
		message = custom.Message
		details = custom.Details
	}

	respond := func(status int, fallback string) {
		if message == "" {
			message = fallback
		}
		body := dto.NewErrorResponse(message)
		if details != nil {
			body = body.WithDetails(details)
		}
		c.JSON(status, body)
	}

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrInvalidEmail):
		respond(http.StatusBadRequest, "Validation failed")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, apperrors.ErrUnauthorized),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid):
		respond(http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respond(http.StatusNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrConflict):
		respond(http.StatusConflict, "Conflict")
	case errors.Is(err, apperrors.ErrUpstreamFailure):
		respond(http.StatusBadGateway, "Upstream service unavailable")
	default:
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
	}
}
