// Package config 提供应用程序的配置加载和管理功能
// 使用 TOML 格式的配置文件，支持多路径查找
package config

import (
	"fmt"
	"time"

	"kama_community_server/pkg/constants"

	"github.com/BurntSushi/toml" // TOML 配置文件解析库
)

// MainConfig 主配置，包含应用基本信息
type MainConfig struct {
	AppName     string `toml:"appName"`     // 应用名称，用于日志标识等
	Host        string `toml:"host"`        // 服务器监听地址，如 "0.0.0.0"
	Port        int    `toml:"port"`        // 服务器监听端口，如 8000
	Mode        string `toml:"mode"`        // 运行模式：dev / release
	TLSRedirect bool   `toml:"tlsRedirect"` // 是否将 HTTP 请求重定向到 HTTPS
}

// MysqlConfig MySQL 数据库连接配置
type MysqlConfig struct {
	Host         string `toml:"host"`         // MySQL 服务器地址
	Port         int    `toml:"port"`         // MySQL 端口，默认 3306
	User         string `toml:"user"`         // 数据库用户名
	Password     string `toml:"password"`     // 数据库密码
	DatabaseName string `toml:"databaseName"` // 数据库名称
}

// RedisConfig Redis 连接配置
type RedisConfig struct {
	Host     string `toml:"host"`     // Redis 服务器地址
	Port     int    `toml:"port"`     // Redis 端口，默认 6379
	Password string `toml:"password"` // Redis 密码，无密码留空
	Db       int    `toml:"db"`       // Redis 数据库编号，默认 0
}

// LogConfig 日志配置，使用 lumberjack 进行日志轮转
type LogConfig struct {
	LogPath    string `toml:"logPath"`    // 日志文件存储目录
	FileName   string `toml:"fileName"`   // 日志文件名
	MaxSize    int    `toml:"maxSize"`    // 单个日志文件最大大小（MB）
	MaxBackups int    `toml:"maxBackups"` // 保留旧日志文件的最大个数
	MaxAge     int    `toml:"maxAge"`     // 保留旧日志文件的最大天数
	Level      string `toml:"level"`      // 日志级别：debug, info, warn, error
}

// KafkaConfig 聊天事件传输配置
type KafkaConfig struct {
	MessageMode string        `toml:"messageMode"` // 事件模式："channel"（进程内）或 "kafka"
	HostPort    string        `toml:"hostPort"`    // Kafka 服务器地址，如 "localhost:9092"
	EventTopic  string        `toml:"eventTopic"`  // 聊天事件主题
	GroupID     string        `toml:"groupId"`     // 消费者组
	Partition   int           `toml:"partition"`   // 分区数
	Timeout     time.Duration `toml:"timeout"`     // 超时时间（秒）
}

// JWTConfig JWT 认证配置
type JWTConfig struct {
	Secret            string `toml:"secret"`            // JWT 签名密钥，建议 32 字符以上
	AccessTokenExpiry int    `toml:"accessTokenExpiry"` // Access Token 有效期（分钟）
}

// ChatConfig 社区聊天业务配置
type ChatConfig struct {
	APIPrefix           string `toml:"apiPrefix"`           // 路由前缀，默认 /api/chat
	BotTimeout          int    `toml:"botTimeout"`          // 单个机器人处理超时（秒）
	SanitizeContent     bool   `toml:"sanitizeContent"`     // 是否清洗消息中的 HTML，默认关闭，内容原样保存
	BuiltinBots         bool   `toml:"builtinBots"`         // 是否注册内置 system 机器人
	CacheTTL            int    `toml:"cacheTTL"`            // 社区缓存有效期（分钟）
	DefaultMessageLimit int    `toml:"defaultMessageLimit"` // 消息列表默认条数
	MaxMessageLimit     int    `toml:"maxMessageLimit"`     // 消息列表最大条数
}

// Config 应用程序总配置，聚合所有子配置
type Config struct {
	MainConfig  `toml:"mainConfig"`  // 主配置
	MysqlConfig `toml:"mysqlConfig"` // MySQL 配置
	RedisConfig `toml:"redisConfig"` // Redis 配置
	LogConfig   `toml:"logConfig"`   // 日志配置
	KafkaConfig `toml:"kafkaConfig"` // 事件传输配置
	JWTConfig   `toml:"jwtConfig"`   // JWT 配置
	ChatConfig  `toml:"chatConfig"`  // 社区聊天配置
}

// config 全局配置单例，延迟加载
var config *Config

// LoadConfig 从多个候选路径加载配置文件
// 按顺序尝试加载，找到第一个可用的配置文件即停止
func LoadConfig() error {
	paths := []string{
		"configs/config_local.toml",       // 本地开发配置（优先）
		"configs/config.toml",             // 默认配置
		"../../configs/config_local.toml", // 从子目录运行时的路径
		"../../configs/config.toml",
	}

	for _, path := range paths {
		if _, err := toml.DecodeFile(path, config); err == nil {
			return nil
		}
	}

	return fmt.Errorf("could not find configuration file in any of the search paths")
}

// GetConfig 获取全局配置实例（单例模式）
// 首次调用时会自动加载配置文件，缺省字段使用默认值
func GetConfig() *Config {
	if config == nil {
		config = new(Config)
		_ = LoadConfig() // 忽略加载错误，使用默认值
		config.ApplyDefaults()
	}
	return config
}

// ApplyDefaults 为零值字段填充默认值
func (c *Config) ApplyDefaults() {
	if c.AppName == "" {
		c.AppName = "kama_community"
	}
	if c.MainConfig.Host == "" {
		c.MainConfig.Host = "0.0.0.0"
	}
	if c.MainConfig.Port == 0 {
		c.MainConfig.Port = 8000
	}
	if c.Mode == "" {
		c.Mode = "dev"
	}
	if c.MessageMode == "" {
		c.MessageMode = "channel"
	}
	if c.EventTopic == "" {
		c.EventTopic = "community_events"
	}
	if c.GroupID == "" {
		c.GroupID = "community_bots"
	}
	if c.KafkaConfig.Timeout == 0 {
		c.KafkaConfig.Timeout = 1
	}
	if c.AccessTokenExpiry == 0 {
		c.AccessTokenExpiry = 60
	}
	if c.APIPrefix == "" {
		c.APIPrefix = "/api/chat"
	}
	if c.BotTimeout <= 0 {
		c.BotTimeout = constants.BOT_TIMEOUT_SECONDS
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = constants.CACHE_TTL_MINUTES
	}
	if c.DefaultMessageLimit <= 0 {
		c.DefaultMessageLimit = constants.DEFAULT_MESSAGE_LIMIT
	}
	if c.MaxMessageLimit <= 0 {
		c.MaxMessageLimit = constants.MAX_MESSAGE_LIMIT
	}
}
