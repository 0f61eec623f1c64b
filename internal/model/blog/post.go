// Package blog 博客相关模型
package blog

import (
	"time"
)

// Post 博客文章表
type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"type:varchar(255);not null;uniqueIndex" json:"title"`
	Subtitle string `gorm:"type:varchar(255);not null" json:"subtitle"`
	// 正文为 CKEditor 风格的富文本 HTML
	Body   string `gorm:"type:text;not null" json:"body"`
	ImgURL string `gorm:"type:varchar(500)" json:"img_url"`
	// 展示用日期字符串（如 "November 9, 2022"），沿用原数据格式，不参与排序
	Date string `gorm:"type:varchar(250);not null" json:"date"`
	// 是否进入首页头图轮播
	Header   bool `gorm:"default:false" json:"header"`
	AuthorID uint `gorm:"not null;index" json:"author_id"`
	// 分类外键，可为空；删除分类时置空而不是留下悬空引用
	CategoryID *uint     `gorm:"index" json:"category_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Comment 评论表
type Comment struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Text     string `gorm:"type:varchar(250);not null" json:"text"`
	Date     string `gorm:"type:varchar(250);not null" json:"date"`
	AuthorID uint   `gorm:"not null;index" json:"author_id"`
	// 删除文章时级联删除评论
	PostID    uint      `gorm:"not null;index;constraint:OnDelete:CASCADE" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
