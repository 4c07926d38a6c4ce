package middleware

import (
	"Portfolio/pkg/log"
	"Portfolio/pkg/response"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery panic 也按统一结构返回 500
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.L.Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
		)
		response.Abort(c, http.StatusInternalServerError, "unexpected server error")
	})
}
