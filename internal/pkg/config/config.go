package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	App       AppConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Migration MigrationConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// AppConfig holds business settings. TimeZone decides what "now" means when
// rejecting reservations in the past.
type AppConfig struct {
	TimeZone string `envconfig:"APP_TIMEZONE" default:"Asia/Seoul"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Seoul"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Seoul"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
	File           LogFileConfig
}

// LogFileConfig enables rotated file output next to stdout when Path is set.
type LogFileConfig struct {
	Path       string `envconfig:"LOG_FILE_PATH"`
	MaxSizeMB  int    `envconfig:"LOG_FILE_MAX_SIZE_MB" default:"100"`
	MaxBackups int    `envconfig:"LOG_FILE_MAX_BACKUPS" default:"5"`
	MaxAgeDays int    `envconfig:"LOG_FILE_MAX_AGE_DAYS" default:"14"`
	Compress   bool   `envconfig:"LOG_FILE_COMPRESS" default:"true"`
}

// RedisConfig is optional; an empty Addr disables the ranking cache.
type RedisConfig struct {
	Addr       string        `envconfig:"REDIS_ADDR"`
	Password   string        `envconfig:"REDIS_PASSWORD"`
	DB         int           `envconfig:"REDIS_DB" default:"0"`
	RankingTTL time.Duration `envconfig:"CACHE_RANKING_TTL" default:"1m"`
	KeyPrefix  string        `envconfig:"CACHE_KEY_PREFIX" default:"roomescape"`
}

type RateLimitConfig struct {
	Enabled bool    `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RPS     float64 `envconfig:"RATE_LIMIT_RPS" default:"20"`
	Burst   int     `envconfig:"RATE_LIMIT_BURST" default:"40"`
}

type MigrationConfig struct {
	Dir       string `envconfig:"MIGRATIONS_DIR" default:"migrations"`
	AtlasPath string `envconfig:"ATLAS_BIN" default:"atlas"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *AppConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			ShutdownTimeout: 5 * time.Second,
		},
		App: AppConfig{
			TimeZone: "Asia/Seoul",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Seoul",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Seoul",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		Redis: RedisConfig{
			RankingTTL: time.Minute,
			KeyPrefix:  "roomescape-test",
		},
		RateLimit: RateLimitConfig{
			Enabled: false,
		},
		Migration: MigrationConfig{
			Dir:       "migrations",
			AtlasPath: "atlas",
		},
	}
}
