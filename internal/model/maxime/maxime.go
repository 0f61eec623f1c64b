package maxime

import "time"

// Maxime 格言表
// 每个页面请求随机挑选一条作为装饰
type Maxime struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:varchar(500);not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
