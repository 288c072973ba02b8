package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 错误响应体，成功时接口直接返回资源 JSON
type Response struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

// Fail code 是合法 HTTP 状态码时同时作为响应状态码
func Fail(c *gin.Context, code int, msg string) {
	status := code
	if status < http.StatusBadRequest || status > 599 {
		status = http.StatusInternalServerError
	}
	c.JSON(status, Response{
		Code: code,
		Msg:  msg,
	})
}
