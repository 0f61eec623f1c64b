package main

import (
	"fmt"

	"marginalia/blog-service/config"
	"marginalia/blog-service/internal/database"
	"marginalia/blog-service/internal/route"
	"marginalia/blog-service/pkg/logger"
)

// @title Marginalia Blog Service API
// @version 1.0
// @description 个人博客与待办管理服务
// @BasePath /api/v1
func main() {
	// 1. 加载配置
	config.MustLoad("config.yaml")

	// 2. 初始化日志
	logger.Init(config.Conf.Log)

	// 3. 初始化数据库
	database.InitDatabase()

	// 4. 设置路由
	r := route.SetupRouter()

	// 5. 启动服务
	port := config.Conf.Server.Port
	if port == 0 {
		port = 8080
	}
	r.Run(fmt.Sprintf(":%d", port))
}
