package blog

import "time"

// Tag 标签表
// 标签名唯一约束保证并发创建同名标签时只会留下一行
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// PostTag 文章-标签关联表
type PostTag struct {
	PostID    uint      `gorm:"primaryKey;index" json:"post_id"`
	TagID     uint      `gorm:"primaryKey;index" json:"tag_id"`
	CreatedAt time.Time `json:"created_at"`
}
