package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一返回结构
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func Success(c *gin.Context, data any, msg ...string) {
	SuccessWithStatus(c, http.StatusOK, data, msg...)
}

func Created(c *gin.Context, data any, msg ...string) {
	SuccessWithStatus(c, http.StatusCreated, data, msg...)
}

func SuccessWithStatus(c *gin.Context, status int, data any, msg ...string) {
	resp := Response{Success: true, Data: data}
	if len(msg) > 0 {
		resp.Message = msg[0]
	}
	c.JSON(status, resp)
}

// List 列表返回附带总数
func List(c *gin.Context, data any, count int) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data, Count: &count})
}

func Fail(c *gin.Context, status int, label, msg string) {
	c.JSON(status, Response{
		Success: false,
		Error:   label,
		Message: msg,
	})
}

func Abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, Response{
		Success: false,
		Error:   Label(status),
		Message: msg,
	})
}
