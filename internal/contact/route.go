package contact

import (
	"github.com/gin-gonic/gin"

	"marginalia/blog-service/pkg/email"
)

// RegisterRoutes 注册联系表单路由
func RegisterRoutes(r *gin.RouterGroup, mailer *email.Client) {
	handler := NewContactHandler(mailer)

	r.POST("/contact", handler.Submit)
}
