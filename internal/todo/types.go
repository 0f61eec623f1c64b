package todo

import model "marginalia/blog-service/internal/model/todo"

// 容量上限
const (
	// MaxProjectsPerOwner 单个用户可持有的项目上限
	MaxProjectsPerOwner = 10
	// MaxItemsPerProject 单个项目可容纳的待办事项上限，转移时校验
	MaxItemsPerProject = 100
)

type CreateProjectRequest struct {
	Name        string  `json:"name" binding:"required,max=250"`
	Description string  `json:"description" binding:"required,max=250"`
	ImgURL      *string `json:"img_url" binding:"omitempty,max=500"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=250"`
	Description *string `json:"description" binding:"omitempty,max=250"`
	ImgURL      *string `json:"img_url" binding:"omitempty,max=500"`
}

type CreateItemRequest struct {
	Title       string  `json:"title" binding:"required,max=250"`
	Description *string `json:"description" binding:"omitempty,max=250"`
	Body        *string `json:"body"`
	Priority    int     `json:"priority" binding:"min=0,max=2"`
}

type UpdateItemRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=250"`
	Description *string `json:"description" binding:"omitempty,max=250"`
	Body        *string `json:"body"`
	Priority    *int    `json:"priority" binding:"omitempty,min=0,max=2"`
}

type TransferItemRequest struct {
	ProjectID uint `json:"project_id" binding:"required"`
}

// ProjectDetailResponse 项目及其待办事项
type ProjectDetailResponse struct {
	Project model.Project `json:"project"`
	Items   []model.Item  `json:"items"`
}
