package maxime

import (
	"github.com/gin-gonic/gin"

	"marginalia/blog-service/internal/middleware"
)

// RegisterRoutes 注册格言相关路由
// 与博客首页共用同一个 service 实例
func RegisterRoutes(r *gin.RouterGroup, maximeService *Service) {
	handler := NewMaximeHandler(maximeService)

	r.GET("/maximes", handler.List)
	r.GET("/maximes/random", handler.Random)

	admin := r.Group("/maximes", middleware.JWTAuth(), middleware.AdminOnly())
	{
		admin.POST("", handler.Create)
		admin.DELETE("/:id", handler.Delete)
	}
}
