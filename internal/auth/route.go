package auth

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"marginalia/blog-service/internal/middleware"
)

// RegisterRoutes 注册认证相关路由
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	handler := NewAuthHandler(db)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", handler.Register)
		authGroup.POST("/login", handler.Login)
		authGroup.POST("/refresh", handler.Refresh)
		authGroup.POST("/logout", handler.Logout)
		authGroup.GET("/me", middleware.JWTAuth(), handler.Me)
		authGroup.PUT("/me", middleware.JWTAuth(), handler.UpdateProfile)
	}

	// 用户公开主页
	r.GET("/users/:id", handler.GetProfile)
}
