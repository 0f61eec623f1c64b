package todo

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"marginalia/blog-service/internal/middleware"
)

// RegisterRoutes 注册待办相关路由，全部需要登录
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	handler := NewTodoHandler(db)

	group := r.Group("/todo", middleware.JWTAuth())
	{
		group.GET("/projects", handler.ListProjects)
		group.POST("/projects", handler.CreateProject)
		group.GET("/projects/:id", handler.GetProject)
		group.PUT("/projects/:id", handler.UpdateProject)
		group.DELETE("/projects/:id", handler.DeleteProject)

		group.POST("/projects/:id/items", handler.CreateItem)
		group.PUT("/items/:id", handler.UpdateItem)
		group.POST("/items/:id/toggle", handler.ToggleItemStatus)
		group.POST("/items/:id/transfer", handler.TransferItem)
		group.DELETE("/items/:id", handler.DeleteItem)
	}
}
