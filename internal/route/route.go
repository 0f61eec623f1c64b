package route

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"marginalia/blog-service/config"
	"marginalia/blog-service/internal/auth"
	"marginalia/blog-service/internal/blog"
	"marginalia/blog-service/internal/contact"
	"marginalia/blog-service/internal/database"
	"marginalia/blog-service/internal/maxime"
	"marginalia/blog-service/internal/todo"
	"marginalia/blog-service/pkg/email"
)

func initRoute(r *gin.Engine) {
	db := database.GetDB()

	// 邮件客户端，未配置 SMTP 时为 nil，通知类功能自动降级
	var mailer *email.Client
	if config.Conf.Email.Host != "" {
		mailer = email.NewClient(&config.Conf.Email)
	}

	// 格言服务全局只建一个实例，博客首页和格言路由共用
	maximeService := maxime.NewService(db)

	api := r.Group("/api/v1")

	auth.RegisterRoutes(api, db)
	blog.RegisterRoutes(api, db, mailer, maximeService)
	maxime.RegisterRoutes(api, maximeService)
	todo.RegisterRoutes(api, db)
	contact.RegisterRoutes(api, mailer)
}

func SetupRouter() *gin.Engine {
	if config.Conf.Server.Mode != "" {
		gin.SetMode(config.Conf.Server.Mode)
	}

	r := gin.Default()

	origin := os.Getenv("FRONTEND_URL")
	if origin == "" {
		origin = "http://localhost:5173" // 默认值
	}

	// 设置跨域请求
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	initRoute(r)

	return r
}
