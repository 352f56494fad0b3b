package auth

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"terminal-terrace/blog/internal/database"
	"terminal-terrace/blog/internal/middleware"
)

// SetupAuthRoutes 设置认证相关路由
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, rdb *database.RedisClient) {
	refreshRepo := NewRefreshTokenRepository(rdb)
	service := NewAuthService(db, refreshRepo)
	handler := NewAuthHandler(service)

	r.POST("/login", handler.Login)
	r.POST("/refresh", handler.Refresh)
	r.GET("/logout", handler.Logout)

	// 修改密码需要登录
	authed := r.Group("")
	authed.Use(middleware.JWTAuth())
	{
		authed.POST("/change-password", handler.ChangePassword)
	}
}
