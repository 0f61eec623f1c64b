package model

import (
	"gorm.io/gorm"

	"marginalia/blog-service/internal/model/blog"
	"marginalia/blog-service/internal/model/maxime"
	"marginalia/blog-service/internal/model/todo"
	"marginalia/blog-service/internal/model/user"
)

func InitTable(db *gorm.DB) error {
	// 自动迁移数据库表结构
	err := db.AutoMigrate(
		// 用户模型
		&user.User{},
		// 博客相关模型
		&blog.Category{},
		&blog.Post{},
		&blog.Tag{},
		&blog.PostTag{},
		&blog.Comment{},
		// 格言
		&maxime.Maxime{},
		// 待办相关模型
		&todo.Project{},
		&todo.Item{},
	)
	if err != nil {
		return err
	}
	return nil
}
