package database

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"terminal-terrace/blog/config"
	"terminal-terrace/blog/internal/model"
	"terminal-terrace/blog/internal/model/user"
)

var (
	PostgresDB *gorm.DB
	RedisDB    *RedisClient
)

func InitDatabase() {
	initPostgres()
	initRedis()
}

func initPostgres() {
	databaseConf := config.Conf.Database

	// 设置默认日志级别
	logLevel := databaseConf.LogLevel
	if logLevel == "" {
		logLevel = "info"
	}

	var err error
	PostgresDB, err = InitPostgres(
		&PostgresConfig{
			ServiceName:     "blog",
			Username:        databaseConf.Username,
			Password:        databaseConf.Password,
			Host:            databaseConf.Host,
			Port:            databaseConf.Port,
			Database:        databaseConf.Database,
			SSLMode:         databaseConf.SSLMode,
			LogLevel:        logLevel,
			MaxIdleConns:    databaseConf.MaxIdleConns,
			MaxOpenConns:    databaseConf.MaxOpenConns,
			ConnMaxLifetime: time.Duration(databaseConf.MaxLifetime) * time.Second,
		},
	)

	if err != nil {
		panic(err)
	}

	// 初始化数据库表
	err = model.InitTable(PostgresDB)
	if err != nil {
		panic(err)
	}

	// 引导管理员账号
	if err := SeedAdmin(PostgresDB); err != nil {
		panic(err)
	}
}

func initRedis() {
	redisConf := config.Conf.Redis

	var err error
	RedisDB, err = InitRedis(&RedisConfig{
		ServiceName: "blog",
		Host:        redisConf.Host,
		Port:        redisConf.Port,
		Password:    redisConf.Password,
		DB:          redisConf.DB,
		PoolSize:    redisConf.PoolSize,
	})

	if err != nil {
		panic(err)
	}
}

// SeedAdmin 进程启动时若管理员不存在则创建（无自助注册流程）
func SeedAdmin(db *gorm.DB) error {
	siteConf := config.Conf.Site

	var existing user.User
	err := db.Where("username = ?", siteConf.AdminUsername).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	password := siteConf.AdminPassword
	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := user.User{
		Username:     siteConf.AdminUsername,
		Email:        siteConf.AdminEmail,
		PasswordHash: string(hash),
		IsAdmin:      true,
		CreatedAt:    time.Now(),
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("[blog] 已创建引导管理员账号 %s，请尽快修改默认密码", admin.Username)
	return nil
}
