// Package permission 统一权限检查服务
// 提供管理员与资源所有者两类检查：管理员由用户角色显式标识，
// 所有者检查基于待办项目的 owner_id 行级归属
package permission

import (
	"gorm.io/gorm"

	"marginalia/blog-service/internal/model/todo"
	"marginalia/blog-service/internal/model/user"
)

// PermissionSource 权限来源类型
type PermissionSource string

const (
	PermissionSourceGlobal PermissionSource = "global" // 全局管理员权限
	PermissionSourceOwner  PermissionSource = "owner"  // 资源所有者
	PermissionSourceNone   PermissionSource = "none"   // 无权限
)

// PermissionResult 权限检查结果
type PermissionResult struct {
	HasPermission    bool             `json:"has_permission"`
	PermissionSource PermissionSource `json:"permission_source"`
}

// IsAdmin 检查角色是否为管理员
func IsAdmin(role string) bool {
	return role == string(user.RoleAdmin)
}

// NoPermission 返回无权限的结果
func NoPermission() PermissionResult {
	return PermissionResult{
		HasPermission:    false,
		PermissionSource: PermissionSourceNone,
	}
}

// Service 权限检查服务
type Service struct {
	db *gorm.DB
}

// NewService 创建权限服务实例
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// CheckProjectOwner 检查用户是否拥有指定待办项目
// 未认证调用者（userID == 0）拥有空的项目集合，恒被拒绝
func (s *Service) CheckProjectOwner(projectID uint, userID uint) PermissionResult {
	if userID == 0 {
		return NoPermission()
	}

	var count int64
	err := s.db.Model(&todo.Project{}).
		Where("id = ? AND owner_id = ?", projectID, userID).
		Count(&count).Error
	if err != nil || count == 0 {
		return NoPermission()
	}

	return PermissionResult{
		HasPermission:    true,
		PermissionSource: PermissionSourceOwner,
	}
}

// CheckItemOwner 检查用户是否拥有指定待办事项所在的项目
func (s *Service) CheckItemOwner(itemID uint, userID uint) PermissionResult {
	if userID == 0 {
		return NoPermission()
	}

	var item todo.Item
	if err := s.db.Select("project_id").First(&item, itemID).Error; err != nil {
		return NoPermission()
	}

	return s.CheckProjectOwner(item.ProjectID, userID)
}
