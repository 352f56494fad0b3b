package post

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"terminal-terrace/blog/internal/middleware"
	"terminal-terrace/blog/internal/upload"
)

// SetupPostRoutes 设置文章相关路由（公开浏览 + 后台管理）
func SetupPostRoutes(r *gin.Engine, db *gorm.DB, store *upload.Store, pageSize int) {
	service := NewPostService(db, store, pageSize)
	handler := NewPostHandler(service)

	r.GET("/", handler.Home)
	r.GET("/post/:slug", handler.View)
	r.GET("/tag/:slug", handler.ByTag)
	r.GET("/search", handler.Search)

	// 后台接口需要管理员身份
	admin := r.Group("/admin")
	admin.Use(middleware.JWTAuth(), middleware.AdminOnly())
	{
		admin.GET("/dashboard", handler.Dashboard)
		admin.GET("/posts", handler.List)
		admin.POST("/posts", handler.Create)
		admin.GET("/posts/:id", handler.Detail)
		admin.PUT("/posts/:id", handler.Update)
		admin.DELETE("/posts/:id", handler.Delete)
		admin.POST("/posts/:id/toggle-publish", handler.TogglePublish)
	}
}
