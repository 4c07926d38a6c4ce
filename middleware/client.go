package middleware

import (
	"Portfolio/pkg/context"
	"strings"

	"github.com/gin-gonic/gin"
)

const HeaderClientID = "x-client-id"

// ClientID 读取 x-client-id, 缺省为 anonymous, 只是便利标识不做鉴权
func ClientID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(HeaderClientID))
		if id == "" {
			id = context.AnonymousClient
		}
		c.Set(context.CtxClientID, id)
		c.Next()
	}
}
