package model

import (
	"gorm.io/gorm"

	"terminal-terrace/blog/internal/model/post"
	"terminal-terrace/blog/internal/model/setting"
	"terminal-terrace/blog/internal/model/user"
)

func InitTable(db *gorm.DB) error {
	// 自动迁移数据库表结构
	err := db.AutoMigrate(
		// 用户模型
		&user.User{},
		// 文章相关模型
		&post.Post{},
		&post.Tag{},
		&post.PostTag{},
		// 站点设置
		&setting.SiteSetting{},
	)
	if err != nil {
		return err
	}
	return nil
}
