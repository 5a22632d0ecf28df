// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

// DefaultIndexName 為未指定 index_name 時使用的索引
const DefaultIndexName = "1762885457669_uat_contracts"

// Config 為整個服務的設定，由環境變數載入
type Config struct {
	TokenURL       string        `env:"TOKEN_URL" validate:"required,url"`
	ClientID       string        `env:"CLIENT_ID" validate:"required"`
	ClientSecret   string        `env:"CLIENT_SECRET" validate:"required"`
	TokenScopes    []string      `env:"TOKEN_SCOPES"`
	RefreshTimeout time.Duration `env:"TOKEN_REFRESH_TIMEOUT" validate:"gt=0"`

	ExternalAPIURL    string        `env:"EXTERNAL_API_URL" validate:"required,url"`
	HTTPTimeout       time.Duration `env:"HTTP_TIMEOUT" validate:"gt=0"`
	DefaultIndexNames []string      `env:"DEFAULT_INDEX_NAMES" validate:"min=1"`

	ListenAddr       string   `env:"LISTEN_ADDR" validate:"required"`
	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" validate:"min=1"`

	RedisAddr      string        `env:"REDIS_ADDR"`
	RedisPassword  string        `env:"REDIS_PASSWORD"`
	RedisDB        int           `env:"REDIS_DB" validate:"gte=0"`
	AnswerCacheTTL time.Duration `env:"ANSWER_CACHE_TTL" validate:"gte=0"`

	DatabaseURL string `env:"DATABASE_URL"`
	WorkerCount int    `env:"WORKER_COUNT" validate:"gt=0"`

	LogLevel string `env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	LogFile  string `env:"LOG_FILE"`
}

// ConfigError 表示必要設定缺漏或格式錯誤，服務不得啟動
type ConfigError struct {
	Problems []string
}

func (e *ConfigError) Error() string {
	return "invalid configuration: " + strings.Join(e.Problems, "; ")
}

// Load 先讀取 envFile（存在時），再從環境變數組出 Config 並驗證。
// 已存在的環境變數不會被 envFile 覆蓋。
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, &ConfigError{Problems: []string{fmt.Sprintf("%s: %v", envFile, err)}}
		}
	}

	var problems []string
	r := reader{problems: &problems}
	cfg := &Config{
		TokenURL:       os.Getenv("TOKEN_URL"),
		ClientID:       os.Getenv("CLIENT_ID"),
		ClientSecret:   os.Getenv("CLIENT_SECRET"),
		TokenScopes:    splitList(os.Getenv("TOKEN_SCOPES")),
		RefreshTimeout: r.duration("TOKEN_REFRESH_TIMEOUT", 10*time.Second),

		ExternalAPIURL:    os.Getenv("EXTERNAL_API_URL"),
		HTTPTimeout:       r.duration("HTTP_TIMEOUT", 60*time.Second),
		DefaultIndexNames: r.list("DEFAULT_INDEX_NAMES", []string{DefaultIndexName}),

		ListenAddr:       r.str("LISTEN_ADDR", ":8080"),
		CORSAllowOrigins: r.list("CORS_ALLOW_ORIGINS", []string{"*"}),

		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        r.integer("REDIS_DB", 0),
		AnswerCacheTTL: r.duration("ANSWER_CACHE_TTL", 10*time.Minute),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		WorkerCount: r.integer("WORKER_COUNT", 1),

		LogLevel: strings.ToLower(r.str("LOG_LEVEL", "info")),
		LogFile:  os.Getenv("LOG_FILE"),
	}
	if len(problems) > 0 {
		return nil, &ConfigError{Problems: problems}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 以 go-playground/validator 檢查欄位，錯誤以環境變數名稱回報
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ConfigError{Problems: []string{err.Error()}}
	}
	problems := lo.Map(verrs, func(fe validator.FieldError, _ int) string {
		return fmt.Sprintf("%s: failed %q", envName(fe.StructField()), fe.Tag())
	})
	return &ConfigError{Problems: problems}
}

// RedisEnabled 設定 REDIS_ADDR 時啟用答案快取
func (c *Config) RedisEnabled() bool { return c.RedisAddr != "" }

// HistoryEnabled 設定 DATABASE_URL 時記錄查詢歷史
func (c *Config) HistoryEnabled() bool { return c.DatabaseURL != "" }

func envName(field string) string {
	if f, ok := reflect.TypeOf(Config{}).FieldByName(field); ok {
		if name := f.Tag.Get("env"); name != "" {
			return name
		}
	}
	return field
}

type reader struct {
	problems *[]string
}

func (r reader) str(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (r reader) integer(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*r.problems = append(*r.problems, fmt.Sprintf("%s: 無效的整數 %q", key, v))
		return def
	}
	return n
}

func (r reader) duration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		*r.problems = append(*r.problems, fmt.Sprintf("%s: 無效的時間長度 %q", key, v))
		return def
	}
	return d
}

func (r reader) list(key string, def []string) []string {
	if v := splitList(os.Getenv(key)); len(v) > 0 {
		return v
	}
	return def
}

// splitList 以逗號分隔並去除空白與空項目
func splitList(v string) []string {
	return lo.Compact(lo.Map(strings.Split(v, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	}))
}
