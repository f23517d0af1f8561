package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultUserAgents 默认浏览器 UA 池（每次请求随机取一个）
var DefaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Safari/605.1.15",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:123.0) Gecko/20100101 Firefox/123.0",
}

// MaxPlayersBatch 单次球员抓取窗口上限
const MaxPlayersBatch = 100

// Config 全局配置结构体（完全匹配config.yaml）
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`   // 服务器配置
	Database DatabaseConfig `mapstructure:"database"` // 数据库配置
	Scraper  ScraperConfig  `mapstructure:"scraper"`  // 抓取配置
	Sync     SyncConfig     `mapstructure:"sync"`     // 定时调度配置
	Log      LogConfig      `mapstructure:"log"`      // 日志配置
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port           int      `mapstructure:"port"`            // 服务端口
	Mode           string   `mapstructure:"mode"`            // Gin运行模式：debug/release/test
	AllowedOrigins []string `mapstructure:"allowed_origins"` // CORS 允许的来源
}

// DatabaseConfig PostgreSQL 配置
type DatabaseConfig struct {
	DSN              string        `mapstructure:"dsn"`                // 连接DSN（URL 形式）
	MaxOpenConns     int           `mapstructure:"max_open_conns"`     // 最大打开连接数
	MaxIdleConns     int           `mapstructure:"max_idle_conns"`     // 最大空闲连接数
	ConnMaxLifetime  time.Duration `mapstructure:"conn_max_lifetime"`  // 连接最大存活时间
	ConnectAttempts  int           `mapstructure:"connect_attempts"`   // 启动时最多连接尝试次数
	ConnectBaseDelay time.Duration `mapstructure:"connect_base_delay"` // 首次重试等待
	ConnectMaxDelay  time.Duration `mapstructure:"connect_max_delay"`  // 单次重试等待上限
}

// ScraperConfig 数据源抓取配置
type ScraperConfig struct {
	Source           string        `mapstructure:"source"`            // 数据源适配器名称
	BaseURL          string        `mapstructure:"base_url"`          // 站点根地址，用于补全相对链接
	MinDelay         time.Duration `mapstructure:"min_delay"`         // 请求前随机等待下限
	MaxDelay         time.Duration `mapstructure:"max_delay"`         // 请求前随机等待上限
	Timeout          time.Duration `mapstructure:"timeout"`           // 单次请求超时
	Proxy            string        `mapstructure:"proxy"`             // 代理地址
	UserAgents       []string      `mapstructure:"user_agents"`       // UA 池
	CloudflareBypass bool          `mapstructure:"cloudflare_bypass"` // 是否包装 cloudflare 绕过传输层
}

// SyncConfig 定时调度配置，cron 表达式为空则不注册
type SyncConfig struct {
	LeaguesCron  string `mapstructure:"leagues_cron"`
	TeamsCron    string `mapstructure:"teams_cron"`
	PlayersCron  string `mapstructure:"players_cron"`
	PlayersBatch int    `mapstructure:"players_batch"` // 定时球员抓取每次处理的球队数
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// LoadConfig 加载配置文件（config/config.yaml），部署相关项从 .env / 环境变量覆盖
func LoadConfig() (*Config, error) {
	return LoadConfigFrom("./config")
}

// LoadConfigFrom 从指定目录加载 config.yaml
func LoadConfigFrom(dir string) (*Config, error) {
	// 1. 加载 .env（若存在）
	_ = godotenv.Load()

	// 2. 读取 config.yaml
	v := viper.New()
	setDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	v.SetTypeByDefaultValue(true)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	// 3. 环境变量覆盖（优先级 env > yaml）
	overrideFromEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.mode", "release")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", time.Hour)
	v.SetDefault("database.connect_attempts", 8)
	v.SetDefault("database.connect_base_delay", 1500*time.Millisecond)
	v.SetDefault("database.connect_max_delay", 30*time.Second)
	v.SetDefault("scraper.source", "transfermarkt")
	v.SetDefault("scraper.base_url", "https://www.transfermarkt.com")
	v.SetDefault("scraper.min_delay", 5*time.Second)
	v.SetDefault("scraper.max_delay", 60*time.Second)
	v.SetDefault("scraper.timeout", 30*time.Second)
	v.SetDefault("scraper.user_agents", DefaultUserAgents)
	v.SetDefault("sync.players_batch", MaxPlayersBatch)
	v.SetDefault("log.level", "info")
}

// overrideFromEnv 用环境变量覆盖部署相关配置
func overrideFromEnv(cfg *Config) {
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("SCRAPER_PROXY"); v != "" {
		cfg.Scraper.Proxy = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	// 前端与内网机器的来源追加到 CORS 白名单
	if v := os.Getenv("FUBOLXD_URL"); v != "" {
		cfg.Server.AllowedOrigins = appendUnique(cfg.Server.AllowedOrigins, v)
	}
	if v := os.Getenv("MOYA_IP"); v != "" {
		cfg.Server.AllowedOrigins = appendUnique(cfg.Server.AllowedOrigins, "http://"+v)
	}
}

func appendUnique(list []string, v string) []string {
	for _, s := range list {
		if s == v {
			return list
		}
	}
	return append(list, v)
}

// Validate 校验配置取值
func (c *Config) Validate() error {
	if c.Scraper.MinDelay < 0 || c.Scraper.MaxDelay < c.Scraper.MinDelay {
		return fmt.Errorf("scraper 延迟区间非法: min=%s max=%s", c.Scraper.MinDelay, c.Scraper.MaxDelay)
	}
	if c.Sync.PlayersBatch <= 0 || c.Sync.PlayersBatch > MaxPlayersBatch {
		return fmt.Errorf("sync.players_batch 必须在 1..%d 之间: %d", MaxPlayersBatch, c.Sync.PlayersBatch)
	}
	if len(c.Scraper.UserAgents) == 0 {
		c.Scraper.UserAgents = DefaultUserAgents
	}
	return nil
}
