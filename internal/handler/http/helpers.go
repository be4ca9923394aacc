package http

import (
	"errors"
	"net/http"

	"github.com/brandkit-io/brandkit-backend/internal/domain/apperror"
	"github.com/brandkit-io/brandkit-backend/internal/handler/http/dto"
	"github.com/gin-gonic/gin"
)

// Auth context keys set by the auth middleware.
const (
	ContextUserKey   = "user"
	ContextUserIDKey = "userID"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// RespondError maps domain error sentinels onto HTTP status codes.
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperror.ErrTokenExpired):
		ErrorHandler(c, http.StatusUnauthorized, "Session expired, please log in again")
	case errors.Is(err, apperror.ErrNotAuthorized):
		ErrorHandler(c, http.StatusUnauthorized, "Not authorized")
	case errors.Is(err, apperror.ErrNotFound):
		ErrorHandler(c, http.StatusNotFound, err.Error())
	case errors.Is(err, apperror.ErrValidation):
		ErrorHandler(c, http.StatusBadRequest, err.Error())
	default:
		ErrorHandler(c, http.StatusInternalServerError, "Something went wrong")
	}
}

// CurrentUserID reads the authenticated user id injected by the middleware.
func CurrentUserID(c *gin.Context) (string, bool) {
	id, ok := c.Get(ContextUserIDKey)
	if !ok {
		return "", false
	}
	userID, ok := id.(string)
	return userID, ok && userID != ""
}
