package settings

import (
	"errors"

	"gorm.io/gorm"

	"terminal-terrace/blog/internal/model/setting"
)

// SettingRepository 站点设置的 key/value 存取
type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// Get 读取单个设置，缺省时返回 fallback
func (r *SettingRepository) Get(key, fallback string) (string, error) {
	var row setting.SiteSetting
	err := r.db.Where("key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fallback, nil
	}
	if err != nil {
		return "", err
	}
	return row.Value, nil
}

// Set 写入单个设置，不存在时创建
func (r *SettingRepository) Set(key, value string) error {
	result := r.db.Model(&setting.SiteSetting{}).
		Where("key = ?", key).
		Update("value", value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.db.Create(&setting.SiteSetting{Key: key, Value: value}).Error
	}
	return nil
}
