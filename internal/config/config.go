package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Storage   StorageConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Fixture   FixtureConfig
	Latency   LatencyConfig   `mapstructure:"latency"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port string
	Mode string
	// 请求未指定用户时使用的演示账号
	DefaultUserID string `mapstructure:"default_user_id"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

// StorageConfig 学习进度存储驱动：memory / mysql / redis
type StorageConfig struct {
	Driver string `mapstructure:"driver"`
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	Prefix   string `mapstructure:"prefix"`
}

// FixtureConfig 课程目录与演示用户数据来源：embed / file / minio
type FixtureConfig struct {
	Source         string `mapstructure:"source"`
	Path           string `mapstructure:"path"`
	MinioEndpoint  string `mapstructure:"minio_endpoint"`
	MinioAccessKey string `mapstructure:"minio_access_key"`
	MinioSecretKey string `mapstructure:"minio_secret_key"`
	MinioBucket    string `mapstructure:"minio_bucket"`
	MinioObject    string `mapstructure:"minio_object"`
	MinioUseSSL    bool   `mapstructure:"minio_use_ssl"`
}

// LatencyConfig 模拟网络延迟，只作用于接口层的异步加载
type LatencyConfig struct {
	Catalog time.Duration `mapstructure:"catalog"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	ServiceName       string `mapstructure:"service_name"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func (r RateLimitConfig) Window() time.Duration {
	return time.Duration(r.WindowMinutes) * time.Minute
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.default_user_id", "u1")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "logs/app.log")
	v.SetDefault("log.max_size", 100)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age", 30)

	v.SetDefault("storage.driver", "memory")

	v.SetDefault("database.charset", "utf8mb4")
	v.SetDefault("database.parsetime", true)

	v.SetDefault("redis.prefix", "educanvas")

	v.SetDefault("fixture.source", "embed")
	v.SetDefault("fixture.minio_object", "fixture.json")

	v.SetDefault("latency.catalog", "0s")

	v.SetDefault("tracing.service_name", "educanvas")

	v.SetDefault("rate_limit.max_requests", 6000)
	v.SetDefault("rate_limit.window_minutes", 1)
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("EDUCANVAS")
	v.AutomaticEnv()
	setDefaults(v)

	// Server
	v.BindEnv("server.port", "SERVER_PORT")
	v.BindEnv("server.mode", "SERVER_MODE")

	// Storage
	v.BindEnv("storage.driver", "STORAGE_DRIVER")

	// Database
	v.BindEnv("database.host", "DATABASE_HOST")
	v.BindEnv("database.port", "DATABASE_PORT")
	v.BindEnv("database.user", "DATABASE_USER")
	v.BindEnv("database.password", "DATABASE_PASSWORD")
	v.BindEnv("database.dbname", "DATABASE_NAME")

	// Redis
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.port", "REDIS_PORT")
	v.BindEnv("redis.password", "REDIS_PASSWORD")

	// Fixture / MinIO
	v.BindEnv("fixture.source", "FIXTURE_SOURCE")
	v.BindEnv("fixture.path", "FIXTURE_PATH")
	v.BindEnv("fixture.minio_endpoint", "MINIO_ENDPOINT")
	v.BindEnv("fixture.minio_access_key", "MINIO_ACCESS_KEY")
	v.BindEnv("fixture.minio_secret_key", "MINIO_SECRET_KEY")
	v.BindEnv("fixture.minio_bucket", "MINIO_BUCKET")

	// Latency
	v.BindEnv("latency.catalog", "LATENCY_CATALOG")

	// Tracing
	v.BindEnv("tracing.enabled", "TRACING_ENABLED")
	v.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 校验取值范围，未知驱动或数据来源直接拒绝启动
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "memory", "mysql", "redis":
	default:
		return fmt.Errorf("unsupported storage driver %q", c.Storage.Driver)
	}

	switch c.Fixture.Source {
	case "embed", "file", "minio":
	default:
		return fmt.Errorf("unsupported fixture source %q", c.Fixture.Source)
	}
	if c.Fixture.Source == "file" && c.Fixture.Path == "" {
		return fmt.Errorf("fixture.path is required when fixture.source is file")
	}

	if c.Latency.Catalog < 0 {
		return fmt.Errorf("latency.catalog must not be negative, got %s", c.Latency.Catalog)
	}

	if c.RateLimit.MaxRequests <= 0 || c.RateLimit.WindowMinutes <= 0 {
		return fmt.Errorf("rate_limit.max_requests and rate_limit.window_minutes must be positive")
	}

	return nil
}
