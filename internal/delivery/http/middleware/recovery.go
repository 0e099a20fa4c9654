package middleware

import (
	"net/http"

	"go-internship-backend/internal/delivery/http/response"
	"go-internship-backend/internal/domain"
	"go-internship-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into the standard error envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Log.Error("panic recovered",
			"request_id", c.GetString(string(domain.KeyRequestID)),
			"path", c.FullPath(),
			"panic", recovered,
		)
		response.Error(c, http.StatusInternalServerError, genericErrorMessage, nil)
		c.Abort()
	})
}
