// Package post 文章相关模型
package post

import "time"

// Post 博客文章表
type Post struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `gorm:"type:varchar(200);not null" json:"title"`
	// slug 创建时生成一次，之后编辑标题也不会重算（保持旧链接有效）
	Slug       string `gorm:"type:varchar(200);uniqueIndex;not null" json:"slug"`
	Excerpt    string `gorm:"type:varchar(500)" json:"excerpt"`
	Content    string `gorm:"type:text;not null" json:"content"`
	CoverImage string `gorm:"type:varchar(500)" json:"cover_image"`
	// 是否已发布（草稿对外不可见）
	IsPublished bool `gorm:"default:false;index" json:"is_published"`
	// 首页推荐位（取最新发布的一篇）
	IsFeatured bool `gorm:"default:false" json:"is_featured"`
	// 阅读量统计
	Views     uint      `gorm:"default:0" json:"views"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	// 首次发布时间，只写一次，取消发布也不清空
	PublishedAt *time.Time `gorm:"index" json:"published_at,omitempty"`
	AuthorID    uint       `gorm:"not null;index" json:"author_id"`
}
