package generate

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/blog/config"
	"terminal-terrace/blog/internal/middleware"
)

// SetupGenerateRoutes 设置 AI 草稿生成路由
func SetupGenerateRoutes(r *gin.Engine) {
	service := NewGenerateService(config.Conf.AI.GeminiAPIKey, config.Conf.AI.Model)
	handler := NewGenerateHandler(service)

	admin := r.Group("/admin")
	admin.Use(middleware.JWTAuth(), middleware.AdminOnly())
	{
		admin.POST("/generate", handler.Draft)
	}
}
