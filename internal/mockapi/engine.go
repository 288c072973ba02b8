// Package mockapi 本地开发和测试用的内存后端，接口与线上一致。
package mockapi

import (
	"net/http"

	"Tripnote/middleware"
	"Tripnote/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewEngine(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID(), middleware.GinZap(), response.ErrorMiddleware())
	r.Use(middleware.PrometheusMiddleware())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	h.RegisterRouter(r)
	r.NoRoute(func(c *gin.Context) {
		response.Abort(c, http.StatusNotFound, "接口不存在")
	})
	return r
}

// New 用 seed 构建完整的 gin 引擎，seed 为空时使用内置数据
func New(seed *Seed, salt string) *gin.Engine {
	if seed == nil {
		seed = DefaultSeed()
	}
	return NewEngine(NewHandler(NewStore(seed), salt))
}
