package post

import "time"

// Tag 标签表
// name 统一存小写去空格后的形式；孤儿标签不删除
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Slug      string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

// PostTag 文章-标签关联表
type PostTag struct {
	PostID    uint      `gorm:"primaryKey;index" json:"post_id"`
	TagID     uint      `gorm:"primaryKey;index" json:"tag_id"`
	CreatedAt time.Time `json:"created_at"`
}
