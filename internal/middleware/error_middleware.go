package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduadvisor/backoffice/internal/app/models/dto"
	"github.com/eduadvisor/backoffice/internal/pkg/apperrors"
	"github.com/eduadvisor/backoffice/internal/pkg/logger"
	"github.com/eduadvisor/backoffice/internal/pkg/observability"
)

// HandleAPIError writes the error response for err. Client errors carry the
// message attached to the error; unexpected errors are logged and answered
// with fallback, e.g. "Failed to fetch queries".
func HandleAPIError(c *gin.Context, err error, fallback string) {
	status, code, detail := classify(err, fallback)

	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg(detail)
		observability.CaptureErr(err)
	}

	_ = c.Error(err)
	c.JSON(status, dto.NewErrorResponse(code, detail))
}

// AbortWithError writes the error response and stops the handler chain.
func AbortWithError(c *gin.Context, err error, fallback string) {
	HandleAPIError(c, err, fallback)
	c.Abort()
}

// RespondValidationError answers a request whose parameters failed binding.
func RespondValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.HandleValidationError(err))
}

func classify(err error, fallback string) (int, dto.ErrorCode, string) {
	msg := apperrors.Message(err)
	pick := func(def string) string {
		if msg != "" {
			return msg
		}
		return def
	}

	switch {
	case errors.Is(err, apperrors.ErrConsultantNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound, pick("Resource not found")
	case errors.Is(err, apperrors.ErrInvalidAdminPassword):
		return http.StatusUnauthorized, dto.ErrorCodeInvalidAdminSecret, pick("Invalid admin password")
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrUnknownConsultant):
		return http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, pick("Invalid credentials")
	case errors.Is(err, apperrors.ErrConsultantExists),
		errors.Is(err, apperrors.ErrResourceAlreadyExists),
		errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, pick("Resource already exists")
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed, pick("Validation failed")
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.ErrorCodeBadRequest, pick("Bad request")
	case errors.Is(err, apperrors.ErrUpstreamFailure):
		return http.StatusInternalServerError, dto.ErrorCodeExternalServiceError, pick(fallback)
	default:
		return http.StatusInternalServerError, dto.ErrorCodeInternalServer, fallback
	}
}
