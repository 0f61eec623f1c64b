package permission

import (
	"testing"

	"marginalia/blog-service/internal/model/user"
	"marginalia/blog-service/internal/testutils"
)

// TestIsAdmin 测试管理员角色判断
func TestIsAdmin(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		expected bool
	}{
		{"admin role", "admin", true},
		{"user role", "user", false},
		{"empty role", "", false},
		{"unknown role", "moderator", false},
		{"case sensitive", "Admin", false},
		{"whitespace", " admin ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsAdmin(tt.role); result != tt.expected {
				t.Errorf("IsAdmin(%q) = %v, want %v", tt.role, result, tt.expected)
			}
		})
	}
}

// TestCheckProjectOwner 测试项目归属检查
func TestCheckProjectOwner(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewService(db)

	owner := testutils.CreateTestUser(db)
	other := testutils.CreateTestUser(db)
	project := testutils.CreateTestProject(db, owner.ID)

	t.Run("owner has permission", func(t *testing.T) {
		result := service.CheckProjectOwner(project.ID, owner.ID)
		if !result.HasPermission {
			t.Error("expected owner to have permission")
		}
		if result.PermissionSource != PermissionSourceOwner {
			t.Errorf("expected source %q, got %q", PermissionSourceOwner, result.PermissionSource)
		}
	})

	t.Run("other user denied", func(t *testing.T) {
		result := service.CheckProjectOwner(project.ID, other.ID)
		if result.HasPermission {
			t.Error("expected other user to be denied")
		}
		if result.PermissionSource != PermissionSourceNone {
			t.Errorf("expected source %q, got %q", PermissionSourceNone, result.PermissionSource)
		}
	})

	// 未认证调用者的项目集合为空，恒被拒绝
	t.Run("anonymous denied", func(t *testing.T) {
		result := service.CheckProjectOwner(project.ID, 0)
		if result.HasPermission {
			t.Error("expected anonymous caller to be denied")
		}
	})

	t.Run("missing project denied", func(t *testing.T) {
		result := service.CheckProjectOwner(99999999, owner.ID)
		if result.HasPermission {
			t.Error("expected missing project to be denied")
		}
	})
}

// TestCheckItemOwner 测试事项归属检查
func TestCheckItemOwner(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewService(db)

	owner := testutils.CreateTestUser(db)
	other := testutils.CreateTestUser(db)
	project := testutils.CreateTestProject(db, owner.ID)
	item := testutils.CreateTestItem(db, project.ID, owner.ID)

	t.Run("project owner has permission", func(t *testing.T) {
		result := service.CheckItemOwner(item.ID, owner.ID)
		if !result.HasPermission {
			t.Error("expected project owner to have permission on item")
		}
	})

	t.Run("other user denied", func(t *testing.T) {
		result := service.CheckItemOwner(item.ID, other.ID)
		if result.HasPermission {
			t.Error("expected other user to be denied")
		}
	})

	t.Run("missing item denied", func(t *testing.T) {
		result := service.CheckItemOwner(99999999, owner.ID)
		if result.HasPermission {
			t.Error("expected missing item to be denied")
		}
	})
}

// TestUserIsAdmin 模型层角色判断与权限层保持一致
func TestUserIsAdmin(t *testing.T) {
	admin := &user.User{Role: string(user.RoleAdmin)}
	normal := &user.User{Role: string(user.RoleUser)}

	if !admin.IsAdmin() {
		t.Error("expected admin user to be admin")
	}
	if normal.IsAdmin() {
		t.Error("expected normal user not to be admin")
	}
}
