package todo

import (
	"testing"

	"marginalia/blog-service/internal/testutils"
	"marginalia/blog-service/pkg/response"
)

// TestProjectCapReached 测试项目容量判定
func TestProjectCapReached(t *testing.T) {
	tests := []struct {
		name     string
		owned    int64
		expected bool
	}{
		{"no projects", 0, false},
		{"one project", 1, false},
		{"one below cap", 9, false},
		{"at cap", 10, true},
		{"above cap", 11, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := ProjectCapReached(tt.owned); result != tt.expected {
				t.Errorf("ProjectCapReached(%d) = %v, want %v", tt.owned, result, tt.expected)
			}
		})
	}
}

// TestItemCapReached 测试事项容量判定
func TestItemCapReached(t *testing.T) {
	tests := []struct {
		name     string
		items    int64
		expected bool
	}{
		{"empty project", 0, false},
		{"one below cap", 99, false},
		{"at cap", 100, true},
		{"above cap", 150, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := ItemCapReached(tt.items); result != tt.expected {
				t.Errorf("ItemCapReached(%d) = %v, want %v", tt.items, result, tt.expected)
			}
		})
	}
}

// TestCreateProjectCap 项目数达到上限后拒绝创建
func TestCreateProjectCap(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewTodoService(db)

	owner := testutils.CreateTestUser(db)
	for i := 0; i < MaxProjectsPerOwner; i++ {
		testutils.CreateTestProject(db, owner.ID)
	}

	_, bizErr := service.CreateProject(owner.ID, CreateProjectRequest{
		Name:        "one too many",
		Description: "should be rejected",
	})
	if bizErr == nil {
		t.Fatal("expected project creation above cap to fail")
	}
	if bizErr.Code != response.InvalidParameter {
		t.Errorf("expected code %d, got %d", response.InvalidParameter, bizErr.Code)
	}

	// 上限只作用于单个用户，其他用户不受影响
	other := testutils.CreateTestUser(db)
	if _, bizErr := service.CreateProject(other.ID, CreateProjectRequest{
		Name:        "first project",
		Description: "other user is under cap",
	}); bizErr != nil {
		t.Errorf("expected other user's creation to succeed, got %v", bizErr.Msg)
	}
}

// TestTransferItemCap 目标项目满员时拒绝转移且不产生变更
func TestTransferItemCap(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewTodoService(db)

	owner := testutils.CreateTestUser(db)
	source := testutils.CreateTestProject(db, owner.ID)
	dest := testutils.CreateTestProject(db, owner.ID)

	item := testutils.CreateTestItem(db, source.ID, owner.ID)
	for i := 0; i < MaxItemsPerProject; i++ {
		testutils.CreateTestItem(db, dest.ID, owner.ID)
	}

	_, bizErr := service.TransferItem(item.ID, owner.ID, dest.ID)
	if bizErr == nil {
		t.Fatal("expected transfer into full project to fail")
	}

	// 拒绝后事项仍在原项目
	refreshed, err := NewItemRepository(db).GetByID(item.ID)
	if err != nil {
		t.Fatalf("failed to reload item: %v", err)
	}
	if refreshed.ProjectID != source.ID {
		t.Errorf("expected item to stay in project %d, got %d", source.ID, refreshed.ProjectID)
	}
}

// TestTransferItem 正常转移
func TestTransferItem(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewTodoService(db)

	owner := testutils.CreateTestUser(db)
	source := testutils.CreateTestProject(db, owner.ID)
	dest := testutils.CreateTestProject(db, owner.ID)
	item := testutils.CreateTestItem(db, source.ID, owner.ID)

	moved, bizErr := service.TransferItem(item.ID, owner.ID, dest.ID)
	if bizErr != nil {
		t.Fatalf("expected transfer to succeed, got %v", bizErr.Msg)
	}
	if moved.ProjectID != dest.ID {
		t.Errorf("expected item in project %d, got %d", dest.ID, moved.ProjectID)
	}
}

// TestOwnerGuard 非所有者的项目与事项操作被拒绝
func TestOwnerGuard(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewTodoService(db)

	owner := testutils.CreateTestUser(db)
	intruder := testutils.CreateTestUser(db)
	project := testutils.CreateTestProject(db, owner.ID)
	item := testutils.CreateTestItem(db, project.ID, owner.ID)

	t.Run("project access denied for other user", func(t *testing.T) {
		_, bizErr := service.GetProject(project.ID, intruder.ID)
		if bizErr == nil || bizErr.Code != response.Forbidden {
			t.Errorf("expected forbidden, got %v", bizErr)
		}
	})

	t.Run("project access denied for anonymous", func(t *testing.T) {
		_, bizErr := service.GetProject(project.ID, 0)
		if bizErr == nil || bizErr.Code != response.Forbidden {
			t.Errorf("expected forbidden, got %v", bizErr)
		}
	})

	t.Run("item update denied for other user", func(t *testing.T) {
		title := "hijacked"
		_, bizErr := service.UpdateItem(item.ID, intruder.ID, UpdateItemRequest{Title: &title})
		if bizErr == nil || bizErr.Code != response.Forbidden {
			t.Errorf("expected forbidden, got %v", bizErr)
		}
	})

	t.Run("missing project is not found", func(t *testing.T) {
		_, bizErr := service.GetProject(99999999, owner.ID)
		if bizErr == nil || bizErr.Code != response.NotFound {
			t.Errorf("expected not found, got %v", bizErr)
		}
	})

	t.Run("owner allowed", func(t *testing.T) {
		detail, bizErr := service.GetProject(project.ID, owner.ID)
		if bizErr != nil {
			t.Fatalf("expected owner access to succeed, got %v", bizErr.Msg)
		}
		if len(detail.Items) != 1 {
			t.Errorf("expected 1 item, got %d", len(detail.Items))
		}
	})
}

// TestToggleItemStatus 状态在 0/1 之间翻转
func TestToggleItemStatus(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewTodoService(db)

	owner := testutils.CreateTestUser(db)
	project := testutils.CreateTestProject(db, owner.ID)
	item := testutils.CreateTestItem(db, project.ID, owner.ID)

	toggled, bizErr := service.ToggleItemStatus(item.ID, owner.ID)
	if bizErr != nil {
		t.Fatalf("toggle failed: %v", bizErr.Msg)
	}
	if toggled.Status != 1 {
		t.Errorf("expected status 1 after first toggle, got %d", toggled.Status)
	}

	toggled, bizErr = service.ToggleItemStatus(item.ID, owner.ID)
	if bizErr != nil {
		t.Fatalf("toggle failed: %v", bizErr.Msg)
	}
	if toggled.Status != 0 {
		t.Errorf("expected status 0 after second toggle, got %d", toggled.Status)
	}
}
