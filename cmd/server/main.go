package main

import (
	"fmt"
	"log"

	"terminal-terrace/blog/config"
	"terminal-terrace/blog/internal/database"
	"terminal-terrace/blog/internal/route"
	"terminal-terrace/blog/internal/upload"
)

func main() {
	// 1. 加载配置
	config.MustLoad("config.yaml")

	// 2. 初始化数据库（postgres + redis），建表并引导管理员账号
	database.InitDatabase()

	// 3. 初始化封面图存储
	store, err := upload.NewStore(config.Conf.Upload.Dir, config.Conf.Upload.AllowedExts)
	if err != nil {
		log.Fatalf("初始化上传目录失败: %v", err)
	}

	// 4. 设置路由
	r := route.SetupRouter(database.PostgresDB, database.RedisDB, store)

	// 5. 启动服务
	addr := fmt.Sprintf("%s:%d", config.Conf.Server.Host, config.Conf.Server.Port)
	if err := r.Run(addr); err != nil {
		log.Fatalf("服务启动失败: %v", err)
	}
}
