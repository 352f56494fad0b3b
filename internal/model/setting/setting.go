// Package setting 站点设置模型
package setting

import "time"

// SiteSetting 站点设置（关于页内容、社交链接等），按 key 访问的通用存储
type SiteSetting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// 关于页使用的设置键
const (
	KeyAboutTitle   = "about_title"
	KeyAboutIntro   = "about_intro"
	KeyAboutContent = "about_content"
	KeyTwitterURL   = "twitter_url"
	KeyGithubURL    = "github_url"
	KeyLinkedinURL  = "linkedin_url"
)
