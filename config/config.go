// config/config.go - 配置管理文件
package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/labstack/gommon/log"
)

// EnvPrefix 环境变量前缀，BLOG_SERVER_PORT 覆盖 server.port
const EnvPrefix = "BLOG_"

var (
	Conf *AppConfig
	once sync.Once
	k    *koanf.Koanf
	mu   sync.RWMutex
)

// AppConfig 应用配置结构
type AppConfig struct {
	Server   ServerConfig   `koanf:"server"`
	GRPC     GRPCConfig     `koanf:"grpc"`
	Database DatabaseConfig `koanf:"database"`
	Redis    RedisConfig    `koanf:"redis"`
	Cache    CacheConfig    `koanf:"cache"`
	Log      LogConfig      `koanf:"log"`
	JWT      JWTConfig      `koanf:"jwt"`
	Site     SiteConfig     `koanf:"site"`
}

type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Mode            string        `koanf:"mode"` // debug, release, test
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	AllowOrigins    []string      `koanf:"allow_origins"`
}

// Addr 监听地址
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type GRPCConfig struct {
	Enabled bool   `koanf:"enabled"`
	Host    string `koanf:"host"`
	Port    int    `koanf:"port"`
}

type DatabaseConfig struct {
	Driver       string `koanf:"driver"` // postgres, sqlite
	Host         string `koanf:"host"`
	Port         int    `koanf:"port"`
	Username     string `koanf:"username"`
	Password     string `koanf:"password"`
	Database     string `koanf:"database"` // sqlite 时为文件路径
	SSLMode      bool   `koanf:"sslmode"`
	TimeZone     string `koanf:"timezone"`
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

// CacheConfig 缓存配置，TTL 使用 "6h" 形式的时长
type CacheConfig struct {
	Driver     string   `koanf:"driver"` // redis, memory, none
	Prefix     string   `koanf:"prefix"`
	Articles   CacheTTL `koanf:"articles"`
	Admin      CacheTTL `koanf:"admin_articles"`
	Tags       CacheTTL `koanf:"tags"`
	Categories CacheTTL `koanf:"categories"`
}

type CacheTTL struct {
	List   time.Duration `koanf:"list"`
	Detail time.Duration `koanf:"detail"`
}

type LogConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn, error, off
	Format string `koanf:"format"` // json, text
	Output string `koanf:"output"` // stdout, file
	Path   string `koanf:"path"`   // 日志文件路径
}

type JWTConfig struct {
	Secret     string `koanf:"secret"`
	ExpireTime int    `koanf:"expire_time"` // 小时
}

// TTL 令牌有效期
func (j JWTConfig) TTL() time.Duration {
	return time.Duration(j.ExpireTime) * time.Hour
}

// SiteConfig 页面渲染使用的站点信息
type SiteConfig struct {
	Name        string `koanf:"name"`
	URL         string `koanf:"url"`
	Description string `koanf:"description"`
	Author      string `koanf:"author"`
	PerPage     int    `koanf:"per_page"`
}

// Load 加载配置文件
func Load(configPath string) error {
	var err error
	once.Do(func() {
		// 首先加载 .env 文件到环境变量
		if envErr := godotenv.Load(".env"); envErr != nil {
			log.Debugf("未加载 .env 文件: %v", envErr)
		}

		var conf *AppConfig
		k, conf, err = parse(configPath)
		if err != nil {
			return
		}
		set(conf)
	})

	return err
}

// MustLoad 加载配置，失败则退出
func MustLoad(configPath string) {
	if err := Load(configPath); err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}
}

// LoadFile 读取配置文件并返回新的配置，不修改全局状态
func LoadFile(configPath string) (*AppConfig, error) {
	_, conf, err := parse(configPath)
	return conf, err
}

// Get 返回当前配置
func Get() *AppConfig {
	mu.RLock()
	defer mu.RUnlock()
	return Conf
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

// Reload 重新加载配置
func Reload(configPath string) error {
	if k == nil {
		return fmt.Errorf("配置未初始化")
	}

	nk, conf, err := parse(configPath)
	if err != nil {
		return err
	}
	k = nk
	set(conf)
	return nil
}

// Watch 监听配置文件变化并热加载，onChange 在每次成功重载后调用
func Watch(configPath string, onChange func(*AppConfig)) error {
	f := file.Provider(configPath)
	return f.Watch(func(event interface{}, err error) {
		if err != nil {
			log.Warnf("监听配置文件失败: %v", err)
			return
		}
		if err := Reload(configPath); err != nil {
			log.Warnf("重新加载配置失败: %v", err)
			return
		}
		log.Infof("配置已重新加载: %s", configPath)
		if onChange != nil {
			onChange(Get())
		}
	})
}

func parse(configPath string) (*koanf.Koanf, *AppConfig, error) {
	nk := koanf.New(".")

	// 加载配置文件
	if err := nk.Load(file.Provider(configPath), yaml.Parser()); err != nil {
		return nil, nil, fmt.Errorf("加载配置文件失败: %w", err)
	}

	// 加载环境变量（会覆盖配置文件）
	if err := nk.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		log.Warnf("加载环境变量失败: %v", err)
	}

	// 解析到结构体
	conf := &AppConfig{}
	if err := nk.Unmarshal("", conf); err != nil {
		return nil, nil, fmt.Errorf("解析配置失败: %w", err)
	}

	// 转换时间单位
	conf.Server.ReadTimeout = conf.Server.ReadTimeout * time.Second
	conf.Server.WriteTimeout = conf.Server.WriteTimeout * time.Second
	conf.Server.ShutdownTimeout = conf.Server.ShutdownTimeout * time.Second

	applyDefaults(conf)
	return nk, conf, nil
}

// envKey 只拆分第一个下划线，更深层的键只能在配置文件中设置
// BLOG_SERVER_READ_TIMEOUT -> server.read_timeout
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(s, "_", ".", 1)
}

func set(conf *AppConfig) {
	mu.Lock()
	defer mu.Unlock()
	Conf = conf
}

func applyDefaults(c *AppConfig) {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Mode == "" {
		c.Server.Mode = "release"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.GRPC.Port == 0 {
		c.GRPC.Port = 9090
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.Cache.Driver == "" {
		c.Cache.Driver = "redis"
	}
	if c.Cache.Prefix == "" {
		c.Cache.Prefix = "blog"
	}
	defaultTTL(&c.Cache.Articles, 6*time.Hour, 24*time.Hour)
	defaultTTL(&c.Cache.Admin, time.Hour, 2*time.Hour)
	defaultTTL(&c.Cache.Tags, 24*time.Hour, 72*time.Hour)
	defaultTTL(&c.Cache.Categories, 7*24*time.Hour, 14*24*time.Hour)
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.JWT.ExpireTime == 0 {
		c.JWT.ExpireTime = 24
	}
	if c.Site.Name == "" {
		c.Site.Name = "Blog"
	}
	if c.Site.PerPage == 0 {
		c.Site.PerPage = 10
	}
}

func defaultTTL(t *CacheTTL, list, detail time.Duration) {
	if t.List == 0 {
		t.List = list
	}
	if t.Detail == 0 {
		t.Detail = detail
	}
}
