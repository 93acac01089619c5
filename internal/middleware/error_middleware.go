package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/calwells/degreeplanner/internal/app/models/dto"
	"github.com/calwells/degreeplanner/internal/pkg/apperrors"
	"github.com/calwells/degreeplanner/internal/pkg/logger"
)

// HandleAPIError maps application errors to transport responses. Only the
// taxonomy below reaches callers; anything else is logged and surfaced as an
// opaque 500. Authorization failures share the 401 status and message with
// authentication failures.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrUnauthorized),
		errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Not authorized"),
		))
	case errors.Is(err, apperrors.ErrPlanNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found"),
		))
	case errors.Is(err, apperrors.ErrTermOutOfRange):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Term outside plan range"),
		))
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed"),
		))
	default:
		logger.Error().
			Err(err).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
		c.JSON(500, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		))
	}
}
