package handler

import (
	"Portfolio/pkg/database"
	"Portfolio/pkg/response"
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Health struct {
	DB *gorm.DB
}

func (h *Health) RegisterRouter(r gin.IRouter) {
	r.GET("/healthz", h.Check)
}

func (h *Health) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := database.Ping(ctx, h.DB); err != nil {
		response.Fail(c, http.StatusServiceUnavailable, http.StatusText(http.StatusServiceUnavailable), err.Error())
		return
	}
	response.Success(c, gin.H{"status": "ok"})
}
