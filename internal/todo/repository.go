package todo

import (
	"gorm.io/gorm"

	"marginalia/blog-service/internal/model/todo"
)

// ProjectRepository 待办项目仓储层
type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) GetByID(id uint) (*todo.Project, error) {
	var project todo.Project
	err := r.db.First(&project, id).Error
	return &project, err
}

func (r *ProjectRepository) Create(project *todo.Project) error {
	return r.db.Create(project).Error
}

func (r *ProjectRepository) Update(project *todo.Project) error {
	return r.db.Save(project).Error
}

func (r *ProjectRepository) Delete(id uint) error {
	return r.db.Delete(&todo.Project{}, id).Error
}

// ListByOwnerID 获取用户的全部项目，按创建顺序
func (r *ProjectRepository) ListByOwnerID(ownerID uint) ([]todo.Project, error) {
	var projects []todo.Project
	err := r.db.Where("owner_id = ?", ownerID).Order("id ASC").Find(&projects).Error
	return projects, err
}

// CountByOwnerID 统计用户持有的项目数，创建时做容量校验用
func (r *ProjectRepository) CountByOwnerID(ownerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&todo.Project{}).Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}

// ItemRepository 待办事项仓储层
type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) GetByID(id uint) (*todo.Item, error) {
	var item todo.Item
	err := r.db.First(&item, id).Error
	return &item, err
}

func (r *ItemRepository) Create(item *todo.Item) error {
	return r.db.Create(item).Error
}

func (r *ItemRepository) Update(item *todo.Item) error {
	return r.db.Save(item).Error
}

func (r *ItemRepository) Delete(id uint) error {
	return r.db.Delete(&todo.Item{}, id).Error
}

// ListByProjectID 获取项目下的待办事项，优先级高的在前
func (r *ItemRepository) ListByProjectID(projectID uint) ([]todo.Item, error) {
	var items []todo.Item
	err := r.db.Where("project_id = ?", projectID).
		Order("priority DESC, id ASC").
		Find(&items).Error
	return items, err
}

// CountByProjectID 统计项目下的待办事项数，转移时做容量校验用
func (r *ItemRepository) CountByProjectID(projectID uint) (int64, error) {
	var count int64
	err := r.db.Model(&todo.Item{}).Where("project_id = ?", projectID).Count(&count).Error
	return count, err
}

// DeleteByProjectID 删除项目下的全部待办事项
func (r *ItemRepository) DeleteByProjectID(projectID uint) error {
	return r.db.Where("project_id = ?", projectID).Delete(&todo.Item{}).Error
}
