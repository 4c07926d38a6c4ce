package handler

import (
	"Portfolio/pkg/context"
	"Portfolio/pkg/response"
	"Portfolio/service"
	"Portfolio/types"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

type Guestbook struct {
	GuestbookService service.IGuestbookService
}

func (g *Guestbook) RegisterRouter(r gin.IRouter) {
	r.GET("/guestbook", context.Wrap(g.List))
	r.POST("/guestbook", context.Wrap(g.Create))
	r.DELETE("/guestbook", context.Wrap(g.Delete))
}

// List 留言列表, 按时间倒序
func (g *Guestbook) List(c *gin.Context) error {
	items, err := g.GuestbookService.List(c.Request.Context())
	if err != nil {
		return err
	}
	response.List(c, items, len(items))
	return nil
}

func (g *Guestbook) Create(c *gin.Context) error {
	var req types.CreateGuestbookRequest
	// 空请求体按 {} 处理, 交给字段校验
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return response.NewValidationError("invalid request body: " + err.Error())
	}

	entry, err := g.GuestbookService.Create(c.Request.Context(), req.Name, req.Message)
	if err != nil {
		return err
	}
	response.Created(c, entry, "guestbook entry created")
	return nil
}

func (g *Guestbook) Delete(c *gin.Context) error {
	if err := g.GuestbookService.Delete(c.Request.Context(), c.Query("id")); err != nil {
		return err
	}
	response.Success(c, nil, "guestbook entry deleted")
	return nil
}
