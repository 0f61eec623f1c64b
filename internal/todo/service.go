// Package todo 待办模块
// 项目与事项都按 owner 行级隔离，容量上限见 types.go
package todo

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"marginalia/blog-service/internal/permission"
	"marginalia/blog-service/pkg/response"

	model "marginalia/blog-service/internal/model/todo"
)

// 展示用日期格式，与博客模块一致
const displayDateLayout = "January 2, 2006"

// ProjectCapReached 项目容量判定：已持有数达到上限则拒绝新建
func ProjectCapReached(ownedCount int64) bool {
	return ownedCount >= MaxProjectsPerOwner
}

// ItemCapReached 事项容量判定：目标项目已满则拒绝转移
func ItemCapReached(itemCount int64) bool {
	return itemCount >= MaxItemsPerProject
}

type TodoService struct {
	db          *gorm.DB
	projectRepo *ProjectRepository
	itemRepo    *ItemRepository
	permSvc     *permission.Service
}

func NewTodoService(db *gorm.DB) *TodoService {
	return &TodoService{
		db:          db,
		projectRepo: NewProjectRepository(db),
		itemRepo:    NewItemRepository(db),
		permSvc:     permission.NewService(db),
	}
}

// ===== 项目 =====

// ListProjects 当前用户的全部项目
func (s *TodoService) ListProjects(userID uint) ([]model.Project, *response.BusinessError) {
	projects, err := s.projectRepo.ListByOwnerID(userID)
	if err != nil {
		return nil, dbError(err)
	}
	return projects, nil
}

// CreateProject 创建项目，先做容量校验
func (s *TodoService) CreateProject(userID uint, req CreateProjectRequest) (*model.Project, *response.BusinessError) {
	count, err := s.projectRepo.CountByOwnerID(userID)
	if err != nil {
		return nil, dbError(err)
	}
	if ProjectCapReached(count) {
		log.Warn().Uint("user_id", userID).Int64("owned", count).Msg("项目数已达上限，拒绝创建")
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("项目数量已达上限，请先清理旧项目"),
		)
	}

	project := &model.Project{
		Name:        req.Name,
		Description: req.Description,
		ImgURL:      req.ImgURL,
		OwnerID:     userID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := s.projectRepo.Create(project); err != nil {
		return nil, dbError(err)
	}
	return project, nil
}

// GetProject 项目详情及其待办事项，仅限所有者
func (s *TodoService) GetProject(projectID uint, userID uint) (*ProjectDetailResponse, *response.BusinessError) {
	project, bizErr := s.ownedProject(projectID, userID)
	if bizErr != nil {
		return nil, bizErr
	}

	items, err := s.itemRepo.ListByProjectID(projectID)
	if err != nil {
		return nil, dbError(err)
	}

	return &ProjectDetailResponse{
		Project: *project,
		Items:   items,
	}, nil
}

// UpdateProject 更新项目，仅限所有者
func (s *TodoService) UpdateProject(projectID uint, userID uint, req UpdateProjectRequest) (*model.Project, *response.BusinessError) {
	project, bizErr := s.ownedProject(projectID, userID)
	if bizErr != nil {
		return nil, bizErr
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.ImgURL != nil {
		project.ImgURL = req.ImgURL
	}
	project.UpdatedAt = time.Now()

	if err := s.projectRepo.Update(project); err != nil {
		return nil, dbError(err)
	}
	return project, nil
}

// DeleteProject 删除项目及其全部待办事项，仅限所有者
func (s *TodoService) DeleteProject(projectID uint, userID uint) *response.BusinessError {
	if _, bizErr := s.ownedProject(projectID, userID); bizErr != nil {
		return bizErr
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := NewItemRepository(tx).DeleteByProjectID(projectID); err != nil {
			return err
		}
		return NewProjectRepository(tx).Delete(projectID)
	})
	if err != nil {
		return dbError(err)
	}
	return nil
}

// ===== 待办事项 =====

// CreateItem 在项目下新建待办事项，仅限项目所有者
func (s *TodoService) CreateItem(projectID uint, userID uint, req CreateItemRequest) (*model.Item, *response.BusinessError) {
	if _, bizErr := s.ownedProject(projectID, userID); bizErr != nil {
		return nil, bizErr
	}

	item := &model.Item{
		Title:       req.Title,
		Description: req.Description,
		Body:        req.Body,
		Priority:    req.Priority,
		Status:      0,
		Date:        time.Now().Format(displayDateLayout),
		ProjectID:   projectID,
		AuthorID:    userID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := s.itemRepo.Create(item); err != nil {
		return nil, dbError(err)
	}
	return item, nil
}

// UpdateItem 更新待办事项，仅限所在项目的所有者
func (s *TodoService) UpdateItem(itemID uint, userID uint, req UpdateItemRequest) (*model.Item, *response.BusinessError) {
	item, bizErr := s.ownedItem(itemID, userID)
	if bizErr != nil {
		return nil, bizErr
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.Body != nil {
		item.Body = req.Body
	}
	if req.Priority != nil {
		item.Priority = *req.Priority
	}
	item.UpdatedAt = time.Now()

	if err := s.itemRepo.Update(item); err != nil {
		return nil, dbError(err)
	}
	return item, nil
}

// ToggleItemStatus 翻转完成状态（0/1），仅限所在项目的所有者
func (s *TodoService) ToggleItemStatus(itemID uint, userID uint) (*model.Item, *response.BusinessError) {
	item, bizErr := s.ownedItem(itemID, userID)
	if bizErr != nil {
		return nil, bizErr
	}

	item.Status = 1 - item.Status
	item.UpdatedAt = time.Now()

	if err := s.itemRepo.Update(item); err != nil {
		return nil, dbError(err)
	}
	return item, nil
}

// TransferItem 把待办事项转移到另一个项目
// 两端项目都必须属于当前用户，目标项目满员时拒绝且不产生任何变更
func (s *TodoService) TransferItem(itemID uint, userID uint, destProjectID uint) (*model.Item, *response.BusinessError) {
	item, bizErr := s.ownedItem(itemID, userID)
	if bizErr != nil {
		return nil, bizErr
	}

	if _, bizErr := s.ownedProject(destProjectID, userID); bizErr != nil {
		return nil, bizErr
	}

	count, err := s.itemRepo.CountByProjectID(destProjectID)
	if err != nil {
		return nil, dbError(err)
	}
	if ItemCapReached(count) {
		log.Warn().Uint("item_id", itemID).Uint("dest_project_id", destProjectID).
			Int64("items", count).Msg("目标项目已满，拒绝转移")
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("目标项目待办数量已达上限"),
		)
	}

	item.ProjectID = destProjectID
	item.UpdatedAt = time.Now()

	if err := s.itemRepo.Update(item); err != nil {
		return nil, dbError(err)
	}
	return item, nil
}

// DeleteItem 删除待办事项，仅限所在项目的所有者
func (s *TodoService) DeleteItem(itemID uint, userID uint) *response.BusinessError {
	if _, bizErr := s.ownedItem(itemID, userID); bizErr != nil {
		return bizErr
	}
	if err := s.itemRepo.Delete(itemID); err != nil {
		return dbError(err)
	}
	return nil
}

// ===== 辅助 =====

// ownedProject 取项目并校验归属
// 项目不存在返回 404；存在但不属于当前用户返回 403
func (s *TodoService) ownedProject(projectID uint, userID uint) (*model.Project, *response.BusinessError) {
	project, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		return nil, notFoundOrDBError(err, "项目不存在")
	}

	result := s.permSvc.CheckProjectOwner(projectID, userID)
	if !result.HasPermission {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("无权访问该项目"),
		)
	}
	return project, nil
}

// ownedItem 取事项并校验其所在项目的归属
func (s *TodoService) ownedItem(itemID uint, userID uint) (*model.Item, *response.BusinessError) {
	item, err := s.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, notFoundOrDBError(err, "待办事项不存在")
	}

	result := s.permSvc.CheckItemOwner(itemID, userID)
	if !result.HasPermission {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("无权访问该待办事项"),
		)
	}
	return item, nil
}

func dbError(err error) *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.Fail),
		response.WithErrorMessage("数据库操作失败"),
		response.WithError(err),
	)
}

func notFoundOrDBError(err error, msg string) *response.BusinessError {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage(msg),
		)
	}
	return dbError(err)
}
