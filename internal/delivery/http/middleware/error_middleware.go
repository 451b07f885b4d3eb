package middleware

import (
	"errors"
	"net/http"

	"go-apply-portal/internal/delivery/http/response"
	"go-apply-portal/pkg/apperror"
	"go-apply-portal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors appended to the context into the standard
// response envelope. No error terminates the process; everything returns
// control to an interactive state.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				// Never expose internal error details to clients. Log the
				// actual error server-side and send a generic message.
				logger.Log.Error("Internal server error", "error", err)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
