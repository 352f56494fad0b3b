package route

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"terminal-terrace/blog/config"
	"terminal-terrace/blog/internal/auth"
	"terminal-terrace/blog/internal/database"
	"terminal-terrace/blog/internal/generate"
	"terminal-terrace/blog/internal/post"
	"terminal-terrace/blog/internal/settings"
	"terminal-terrace/blog/internal/upload"
)

// SetupRouter 组装 gin 引擎并注册全部路由
// 依赖（数据库、上传目录等）从入口显式传入，路由层不碰全局状态
func SetupRouter(db *gorm.DB, rdb *database.RedisClient, store *upload.Store) *gin.Engine {
	gin.SetMode(config.Conf.Server.Mode)
	r := gin.Default()
	r.MaxMultipartMemory = int64(config.Conf.Upload.MaxSize) << 20

	origin := os.Getenv("FRONTEND_URL")
	if origin == "" {
		origin = "http://localhost:5173" // 默认值
	}

	// 设置跨域请求，cookie 认证需要 AllowCredentials
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	auth.SetupAuthRoutes(r, db, rdb)
	post.SetupPostRoutes(r, db, store, config.Conf.Site.PageSize)
	settings.SetupSettingRoutes(r, db)
	generate.SetupGenerateRoutes(r)
	upload.RegisterRoutes(r, store)

	return r
}
