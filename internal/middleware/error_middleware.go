package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qmexai/ramadandata/internal/app/models/dto"
	"github.com/qmexai/ramadandata/internal/pkg/apperrors"
	"github.com/qmexai/ramadandata/internal/pkg/logger"
)

// HandleAPIError maps service errors onto status codes and writes the
// standard error body. Unknown errors become a generic 500; the raw error
// text is only attached as debugInfo outside release mode.
func HandleAPIError(c *gin.Context, err error) {
	status, body := errorResponse(err)

	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")
		if gin.Mode() != gin.ReleaseMode {
			body = body.WithDebugInfo("%v", err)
		}
	}

	c.AbortWithStatusJSON(status, body)
}

func errorResponse(err error) (int, *dto.ErrorResponse) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeValidationFailed, apperrors.Message(err)).WithField(apperrors.Field(err))
	case apperrors.Is(err, apperrors.ErrBadRequest, apperrors.ErrInvalidStudentID, apperrors.ErrInvalidRole, apperrors.ErrUnsupportedFormat):
		return http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeBadRequest, apperrors.Message(err))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Unauthorized")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.NewErrorResponse(dto.ErrorCodeForbidden, "Unauthorized")
	case errors.Is(err, apperrors.ErrUserNotFound):
		return http.StatusNotFound, dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, "User not found")
	case errors.Is(err, apperrors.ErrUserAlreadyExists):
		return http.StatusConflict, dto.NewErrorResponse(dto.ErrorCodeResourceAlreadyExists, "Username or phone number already exists")
	default:
		return http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrorCodeInternalServer, "Internal server error")
	}
}
