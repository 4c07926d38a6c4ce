package handler

import (
	"Portfolio/pkg/context"
	"Portfolio/pkg/response"
	"Portfolio/service"
	"Portfolio/types"

	"github.com/gin-gonic/gin"
)

type Like struct {
	LikeService service.ILikeService
}

func (l *Like) RegisterRouter(r gin.IRouter) {
	r.GET("/like", context.Wrap(l.Status))
	r.POST("/like", context.Wrap(l.Toggle))
}

func (l *Like) Status(c *gin.Context) error {
	status, err := l.LikeService.GetStatus(c.Request.Context(), context.GetClientID(c))
	if err != nil {
		return err
	}
	response.Success(c, status)
	return nil
}

// Toggle 匿名用户不允许写
func (l *Like) Toggle(c *gin.Context) error {
	clientID := context.GetClientID(c)
	if clientID == context.AnonymousClient {
		return response.NewAuthError("client id required")
	}

	var req types.ToggleLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidationError("action must be like or unlike")
	}

	res, err := l.LikeService.Toggle(c.Request.Context(), clientID, req.Action)
	if err != nil {
		return err
	}
	response.Success(c, res.LikeStatus, res.Message)
	return nil
}
