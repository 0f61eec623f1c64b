package blog

import "time"

// 分类的标题排序策略
const (
	// SortInsertion 按插入顺序展示
	SortInsertion = "insertion"
	// SortNumericSuffix 按 "标题§编号" 的数字后缀排序展示
	SortNumericSuffix = "numeric-suffix"
)

// Category 分类表
// sort_strategy 取代了旧版按分类名硬编码判断的特殊排序
type Category struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	Description  string    `gorm:"type:varchar(500)" json:"description"`
	ImgURL       string    `gorm:"type:varchar(500)" json:"img_url"`
	SortStrategy string    `gorm:"type:varchar(20);not null;default:'insertion'" json:"sort_strategy"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
