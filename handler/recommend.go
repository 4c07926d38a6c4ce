package handler

import (
	"Portfolio/pkg/context"
	"Portfolio/pkg/response"
	"Portfolio/service"
	"Portfolio/types"

	"github.com/gin-gonic/gin"
)

type Recommend struct {
	RecommendService service.IRecommendService
}

func (h *Recommend) RegisterRouter(r gin.IRouter) {
	r.GET("/recommend", context.Wrap(h.Random))
}

func (h *Recommend) Random(c *gin.Context) error {
	msg, err := h.RecommendService.GetRandom(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, types.RecommendResponse{Message: msg})
	return nil
}
