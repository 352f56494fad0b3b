package settings

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"terminal-terrace/blog/internal/middleware"
)

// SetupSettingRoutes 设置站点设置相关路由
func SetupSettingRoutes(r *gin.Engine, db *gorm.DB) {
	service := NewSettingService(NewSettingRepository(db))
	handler := NewSettingHandler(service)

	r.GET("/about", handler.About)

	admin := r.Group("/admin")
	admin.Use(middleware.JWTAuth(), middleware.AdminOnly())
	{
		admin.GET("/about", handler.AdminAbout)
		admin.PUT("/about", handler.UpdateAbout)
	}
}
