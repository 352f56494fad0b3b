// config/config.go - 配置管理文件
package config

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var (
	Conf *AppConfig
	once sync.Once
	k    *koanf.Koanf
)

// AppConfig 应用配置结构
type AppConfig struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Redis    RedisConfig    `koanf:"redis"`
	JWT      JWTConfig      `koanf:"jwt"`
	Upload   UploadConfig   `koanf:"upload"`
	Site     SiteConfig     `koanf:"site"`
	AI       AIConfig       `koanf:"ai"`
}

type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	Mode         string        `koanf:"mode"` // debug, release
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

type DatabaseConfig struct {
	Host         string `koanf:"host"`
	Port         int    `koanf:"port"`
	Username     string `koanf:"username"`
	Password     string `koanf:"password"`
	Database     string `koanf:"database"`
	SSLMode      bool   `koanf:"sslmode"`
	LogLevel     string `koanf:"log_level"` // 数据库日志级别
	MaxOpenConns int    `koanf:"max_open_conns"`
	MaxIdleConns int    `koanf:"max_idle_conns"`
	MaxLifetime  int    `koanf:"max_lifetime"` // 秒
}

type RedisConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
	PoolSize int    `koanf:"pool_size"`
}

type JWTConfig struct {
	Secret     string `koanf:"secret"`
	ExpireTime int    `koanf:"expire_time"` // access token 有效期（小时）
	RefreshTTL int    `koanf:"refresh_ttl"` // refresh token 有效期（小时）
}

// UploadConfig 封面图上传配置
type UploadConfig struct {
	Dir         string   `koanf:"dir"`          // 存储目录
	MaxSize     int64    `koanf:"max_size"`     // 请求体上限（MB）
	AllowedExts []string `koanf:"allowed_exts"` // 允许的扩展名（小写，不带点）
}

// SiteConfig 站点与管理员引导配置
type SiteConfig struct {
	Title         string `koanf:"title"`
	Subtitle      string `koanf:"subtitle"`
	Author        string `koanf:"author"`
	PageSize      int    `koanf:"page_size"` // 公开列表每页数量
	AdminUsername string `koanf:"admin_username"`
	AdminEmail    string `koanf:"admin_email"`
	AdminPassword string `koanf:"admin_password"` // 仅用于首次引导，应尽快修改
}

// AIConfig AI 草稿生成配置
type AIConfig struct {
	GeminiAPIKey string `koanf:"gemini_api_key"`
	Model        string `koanf:"model"`
}

// Load 加载配置文件
func Load(configPath string) error {
	var err error
	once.Do(func() {
		// 首先加载 .env 文件到环境变量
		if envErr := godotenv.Load(); envErr != nil {
			log.Printf("警告: 无法加载 .env 文件: %v", envErr)
		}

		k = koanf.New(".")

		// 加载配置文件
		if err = k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			err = fmt.Errorf("加载配置文件失败: %w", err)
			return
		}

		// 加载环境变量（会覆盖配置文件）
		if envErr := k.Load(env.Provider("", ".", func(s string) string {
			return strings.Replace(strings.ToLower(s), "_", ".", -1)
		}), nil); envErr != nil {
			log.Printf("加载环境变量失败: %v", envErr)
		}

		// 解析到结构体
		Conf = &AppConfig{}
		if err = k.Unmarshal("", Conf); err != nil {
			err = fmt.Errorf("解析配置失败: %w", err)
			return
		}

		// 转换时间单位
		Conf.Server.ReadTimeout = Conf.Server.ReadTimeout * time.Second
		Conf.Server.WriteTimeout = Conf.Server.WriteTimeout * time.Second

		setDefaults(Conf)
	})

	return err
}

// MustLoad 加载配置，失败则 panic
func MustLoad(configPath string) {
	if err := Load(configPath); err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}
}

// setDefaults 填充未配置项的默认值
func setDefaults(c *AppConfig) {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.JWT.ExpireTime == 0 {
		c.JWT.ExpireTime = 24
	}
	if c.JWT.RefreshTTL == 0 {
		c.JWT.RefreshTTL = 24 * 7
	}
	if c.Upload.Dir == "" {
		c.Upload.Dir = "uploads"
	}
	if c.Upload.MaxSize == 0 {
		c.Upload.MaxSize = 16
	}
	if len(c.Upload.AllowedExts) == 0 {
		c.Upload.AllowedExts = []string{"png", "jpg", "jpeg", "gif", "webp"}
	}
	if c.Site.Title == "" {
		c.Site.Title = "AGIBLOG"
	}
	if c.Site.Subtitle == "" {
		c.Site.Subtitle = "Thoughts, stories and ideas"
	}
	if c.Site.PageSize == 0 {
		c.Site.PageSize = 10
	}
	if c.Site.AdminUsername == "" {
		c.Site.AdminUsername = "admin"
	}
	if c.Site.AdminEmail == "" {
		c.Site.AdminEmail = "admin@example.com"
	}
	if c.AI.Model == "" {
		c.AI.Model = "gemini-2.0-flash"
	}
}

// GetString 获取字符串配置
func GetString(key string) string {
	if k == nil {
		log.Fatal("配置未初始化")
	}
	return k.String(key)
}

// GetInt 获取整数配置
func GetInt(key string) int {
	if k == nil {
		log.Fatal("配置未初始化")
	}
	return k.Int(key)
}

// GetBool 获取布尔配置
func GetBool(key string) bool {
	if k == nil {
		log.Fatal("配置未初始化")
	}
	return k.Bool(key)
}
