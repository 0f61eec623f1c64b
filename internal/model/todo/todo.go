// Package todo 待办事项相关模型
package todo

import "time"

// 待办优先级
const (
	PriorityNormal    = 0
	PriorityImportant = 1
	PriorityCritical  = 2
)

// Project 待办项目表
// 每个用户最多持有10个项目，创建时校验
type Project struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(250);not null" json:"name"`
	Description string    `gorm:"type:varchar(250);not null" json:"description"`
	ImgURL      *string   `gorm:"type:varchar(500)" json:"img_url,omitempty"`
	OwnerID     uint      `gorm:"not null;index" json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Project) TableName() string {
	return "todo_projects"
}

// Item 待办事项表
// status 为 0/1 的翻转标记；priority 见上方常量
type Item struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"type:varchar(250);not null" json:"title"`
	Description *string `gorm:"type:varchar(250)" json:"description,omitempty"`
	Body        *string `gorm:"type:text" json:"body,omitempty"`
	Priority    int     `gorm:"not null;default:0" json:"priority"`
	Status      int     `gorm:"not null;default:0" json:"status"`
	// 展示用日期字符串，沿用原数据格式
	Date      string    `gorm:"type:varchar(250);not null" json:"date"`
	ProjectID uint      `gorm:"not null;index" json:"project_id"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Item) TableName() string {
	return "todo_list"
}
