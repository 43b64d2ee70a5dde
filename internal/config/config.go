package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/kapu/trending-insights-go/internal/constants"
	"github.com/kapu/trending-insights-go/internal/util"
)

// Config: 트렌딩 분석 서비스의 전체 동작에 필요한 설정을 담는 구조체
type Config struct {
	Server   ServerConfig
	YouTube  YouTubeConfig
	Valkey   ValkeyConfig
	Trending TrendingConfig
	Logging  LoggingConfig
	Version  string
}

// ServerConfig: HTTP API 서버 설정
type ServerConfig struct {
	Port           int
	AllowedOrigins []string
}

// YouTubeConfig: YouTube Data API 연동 설정
type YouTubeConfig struct {
	APIKey string
}

// ValkeyConfig: Valkey(Redis) 연결 설정
type ValkeyConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// TrendingConfig: 기본 region/limit 등 대시보드 기본값 설정
type TrendingConfig struct {
	DefaultRegion string
	DefaultLimit  int
}

// LoggingConfig: 로그 레벨 및 파일 로테이션 설정
type LoggingConfig struct {
	Level      string
	Dir        string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Load: 환경 변수(.env 포함)로부터 설정을 읽어 Config를 구성한다.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvInt("SERVER_PORT", 8080),
			AllowedOrigins: parseCommaSeparated(getEnv("CORS_ALLOWED_ORIGINS", "")),
		},
		YouTube: YouTubeConfig{
			APIKey: getEnv("YOUTUBE_API_KEY", ""),
		},
		Valkey: ValkeyConfig{
			Host:     getEnv("CACHE_HOST", "localhost"),
			Port:     getEnvInt("CACHE_PORT", 6379),
			Password: getEnv("CACHE_PASSWORD", ""),
			DB:       getEnvInt("CACHE_DB", 0),
		},
		Trending: TrendingConfig{
			DefaultRegion: strings.ToUpper(getEnv("TRENDING_DEFAULT_REGION", constants.TrendingDefaults.Region)),
			DefaultLimit:  getEnvInt("TRENDING_DEFAULT_LIMIT", constants.TrendingDefaults.Limit),
		},
		Logging: LoggingConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Dir:        getEnv("LOG_DIR", ""),
			MaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 100),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
			MaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 30),
			Compress:   getEnvBool("LOG_COMPRESS", true),
		},
		Version: util.TrimSpace(getEnv("APP_VERSION", "0.1.0-go")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate: 설정 값의 유효성을 검증한다.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.YouTube.APIKey == "" {
		return fmt.Errorf("YOUTUBE_API_KEY is required")
	}
	if c.Trending.DefaultLimit < constants.TrendingDefaults.MinLimit ||
		c.Trending.DefaultLimit > constants.TrendingDefaults.MaxLimit {
		return fmt.Errorf("invalid default limit: %d (must be %d..%d)",
			c.Trending.DefaultLimit, constants.TrendingDefaults.MinLimit, constants.TrendingDefaults.MaxLimit)
	}
	if len(c.Trending.DefaultRegion) != 2 {
		return fmt.Errorf("invalid default region: %q", c.Trending.DefaultRegion)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func parseCommaSeparated(value string) []string {
	if util.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := util.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
