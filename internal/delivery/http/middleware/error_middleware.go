package middleware

import (
	"errors"
	"net/http"

	"go-internship-backend/internal/delivery/http/response"
	"go-internship-backend/internal/domain"
	"go-internship-backend/pkg/apperror"
	"go-internship-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

const genericErrorMessage = "Something went wrong. Please try again."

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		reqID := c.GetString(string(domain.KeyRequestID))

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				// Internal details stay in the server log
				logger.Log.Error("request failed", "request_id", reqID, "path", c.FullPath(), "error", appErr.Err)
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		logger.Log.Error("unhandled error", "request_id", reqID, "path", c.FullPath(), "error", err)
		response.Error(c, http.StatusInternalServerError, genericErrorMessage, nil)
	}
}
