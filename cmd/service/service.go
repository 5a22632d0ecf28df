// @title        Genpact Relay API
// @version      1.0
// @description  合約產生與問答轉送服務，代為取得並快取上游 OAuth2 token
// @host         localhost:8080
// @BasePath     /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"reflect"
	"strings"
	"syscall"
	"time"

	"genpact-relay/internal/answer"
	"genpact-relay/internal/cache"
	"genpact-relay/internal/config"
	"genpact-relay/internal/database"
	"genpact-relay/internal/handler"
	"genpact-relay/internal/logging"
	"genpact-relay/internal/metrics"
	"genpact-relay/internal/middleware"
	"genpact-relay/internal/router"
	"genpact-relay/internal/store"
	"genpact-relay/internal/tokenprovider"
	"genpact-relay/internal/worker"

	"github.com/alecthomas/kong"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	_ "genpact-relay/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// version 於建置時以 -ldflags "-X main.version=..." 設定
var version = "dev"

const (
	historyQueueSize = 256
	shutdownTimeout  = 10 * time.Second
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// NewCustomValidator 驗證錯誤以 json 欄位名稱回報
func NewCustomValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{validator: v}
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

type cli struct {
	EnvFile string           `name:"env-file" help:"Optional .env file loaded before reading the environment." default:".env"`
	Version kong.VersionFlag `help:"Print version and exit."`
}

var (
	loadConfig      = config.Load
	newLogger       = logging.New
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = serve
	newWorkerPool   = worker.NewPool
	exitFunc        = os.Exit
)

// serve 啟動 HTTP 服務，收到 SIGINT/SIGTERM 時優雅關閉
func serve(e *echo.Echo, addr string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- e.Start(addr) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func run(args []string) error {
	var flags cli
	parser, err := kong.New(&flags,
		kong.Name("genpact-relay"),
		kong.Description("Contract generation and question relay."),
		kong.Vars{"version": version},
		kong.Exit(func(code int) { exitFunc(code) }),
	)
	if err != nil {
		return err
	}
	if _, err := parser.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(flags.EnvFile)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	tokens := tokenprovider.New(tokenprovider.Config{
		TokenURL:       cfg.TokenURL,
		ClientID:       cfg.ClientID,
		ClientSecret:   cfg.ClientSecret,
		Scopes:         cfg.TokenScopes,
		RefreshTimeout: cfg.RefreshTimeout,
	},
		tokenprovider.WithLogger(logger.Named("token")),
		tokenprovider.WithMetrics(m),
	)

	answerOpts := []answer.Option{
		answer.WithLogger(logger.Named("answer")),
		answer.WithMetrics(m),
	}

	// 未設定時保持 nil interface，路由與健康檢查據此略過
	var cch cache.Cache
	if cfg.RedisEnabled() {
		cch, err = newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return fmt.Errorf("Redis 連線失敗: %w", err)
		}
		defer cch.Close()
		answerOpts = append(answerOpts, answer.WithCache(cch))
	}

	var db database.DB
	var recorder store.Recorder
	if cfg.HistoryEnabled() {
		if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("Migration 執行失敗: %w", err)
		}
		db, err = newPgxPool(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("DB 連線失敗: %w", err)
		}
		defer db.Close()

		wp := newWorkerPool(cfg.WorkerCount, historyQueueSize)
		defer wp.Stop()
		recorder = store.NewAsyncRecorder(db, wp, logger.Named("history"), m)
	}

	asker := answer.New(answer.Config{
		URL:      cfg.ExternalAPIURL,
		Timeout:  cfg.HTTPTimeout,
		CacheTTL: cfg.AnswerCacheTTL,
	}, tokens, answerOpts...)

	e := echo.New()
	e.HideBanner = true
	e.Validator = NewCustomValidator()
	e.Use(echomw.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(logger.Named("http")))
	e.Use(middleware.CORS(cfg.CORSAllowOrigins))

	router.Setup(e, router.Deps{
		Relay: handler.RelayDeps{
			Asker:             asker,
			Recorder:          recorder,
			DefaultIndexNames: cfg.DefaultIndexNames,
			Logger:            logger.Named("relay"),
		},
		Tokens:  tokens,
		DB:      db,
		Cache:   cch,
		Metrics: m.Handler(),
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	logger.Info("starting relay",
		zap.String("version", version),
		zap.String("addr", cfg.ListenAddr),
		zap.Bool("answer_cache", cfg.RedisEnabled()),
		zap.Bool("history", cfg.HistoryEnabled()),
	)
	return startServer(e, cfg.ListenAddr)
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		logger, _ := zap.NewProduction()
		logger.Error("service exited", zap.Error(err))
		_ = logger.Sync()
		exitFunc(1)
	}
}
