package context

import (
	"Portfolio/pkg/log"
	"Portfolio/pkg/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxClientID = "client_id"
	CtxRequest  = "request_id"

	AnonymousClient = "anonymous"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				response.Fail(c, be.Status, be.Label, be.Msg)
				return
			}
			log.L.Error("request failed",
				zap.String("path", c.FullPath()),
				zap.String("request_id", c.GetString(CtxRequest)),
				zap.Error(err),
			)
			response.Fail(c, http.StatusInternalServerError, response.LabelInternal, err.Error())
		}
	}
}

// GetClientID 未携带 x-client-id 时返回 anonymous
func GetClientID(c *gin.Context) string {
	v, ok := c.Get(CtxClientID)
	if !ok {
		return AnonymousClient
	}
	id, ok := v.(string)
	if !ok || id == "" {
		return AnonymousClient
	}
	return id
}
