package blog

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"marginalia/blog-service/internal/maxime"
	"marginalia/blog-service/internal/middleware"
	"marginalia/blog-service/pkg/email"
)

// RegisterRoutes 注册博客相关路由
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB, mailer *email.Client, maximeService *maxime.Service) {
	handler := NewBlogHandler(db, mailer, maximeService)

	// 公开读取
	r.GET("/posts", handler.Homepage)
	r.GET("/posts/:id", handler.GetPost)
	r.GET("/categories", handler.ListCategories)
	r.GET("/categories/:id", handler.GetCategory)
	r.GET("/tags/:id/posts", handler.GetTagPosts)

	// 评论需要登录
	r.POST("/posts/:id/comments", middleware.JWTAuth(), handler.CreateComment)

	// 写操作仅限管理员
	admin := r.Group("", middleware.JWTAuth(), middleware.AdminOnly())
	{
		admin.POST("/posts", handler.CreatePost)
		admin.PUT("/posts/:id", handler.UpdatePost)
		admin.DELETE("/posts/:id", handler.DeletePost)

		admin.POST("/categories", handler.CreateCategory)
		admin.PUT("/categories/:id", handler.UpdateCategory)
		admin.DELETE("/categories/:id", handler.DeleteCategory)
	}
}
