package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"genpact-relay/internal/cache"
	"genpact-relay/internal/config"
	"genpact-relay/internal/database"
	"genpact-relay/internal/logging"
	"genpact-relay/internal/worker"
)

func restoreGlobals() {
	loadConfig = config.Load
	newLogger = logging.New
	newPgxPool = database.NewPgxPool
	newRedisClient = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer = serve
	newWorkerPool = worker.NewPool
	exitFunc = func(code int) {}
}

// noEnvFile 指向不存在的 .env，避免讀到工作目錄下的檔案
func noEnvFile(t *testing.T) []string {
	return []string{"--env-file", filepath.Join(t.TempDir(), "absent.env")}
}

func setEnv(t *testing.T, kv map[string]string) {
	for _, k := range []string{"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "DATABASE_URL", "LOG_FILE", "LOG_LEVEL"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	t.Setenv("TOKEN_URL", "https://kc.example.com/token")
	t.Setenv("CLIENT_ID", "relay")
	t.Setenv("CLIENT_SECRET", "s3cret")
	t.Setenv("EXTERNAL_API_URL", "https://search.example.com/api/sessions/texts")
	for k, v := range kv {
		t.Setenv(k, v)
	}
}

func TestCustomValidator(t *testing.T) {
	cv := NewCustomValidator()
	type s struct {
		Name string `json:"supplier_name" validate:"required"`
	}
	require.NoError(t, cv.Validate(&s{Name: "ok"}))
	err := cv.Validate(&s{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "supplier_name")
}

func TestRunSuccess(t *testing.T) {
	t.Cleanup(restoreGlobals)
	called := make(map[string]bool)
	newPgxPool = func(ctx context.Context, url string) (database.DB, error) {
		called["pgx"] = true
		require.Equal(t, "postgres://db/relay", url)
		return &database.FakeDB{
			PingFn:  func(context.Context) error { return nil },
			CloseFn: func() { called["dbClose"] = true },
		}, nil
	}
	newRedisClient = func(addr, pwd string, db int) (cache.Cache, error) {
		called["redis"] = true
		require.Equal(t, "127.0.0.1:6379", addr)
		require.Equal(t, "pw", pwd)
		require.Equal(t, 1, db)
		return &cache.FakeCache{CloseFn: func() error { called["redisClose"] = true; return nil }}, nil
	}
	runMigrationsFn = func(url string) error { called["migrate"] = true; return nil }

	var routes []string
	startServer = func(e *echo.Echo, addr string) error {
		called["start"] = true
		require.Equal(t, ":9090", addr)
		for _, r := range e.Routes() {
			routes = append(routes, r.Method+" "+r.Path)
		}

		// 整個中介層鏈與路由可以正常服務
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		require.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

		rec = httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "go_goroutines")
		return nil
	}

	setEnv(t, map[string]string{
		"LISTEN_ADDR":    ":9090",
		"REDIS_ADDR":     "127.0.0.1:6379",
		"REDIS_DB":       "1",
		"REDIS_PASSWORD": "pw",
		"DATABASE_URL":   "postgres://db/relay",
	})

	require.NoError(t, run(noEnvFile(t)))
	for _, k := range []string{"pgx", "redis", "migrate", "start", "dbClose", "redisClose"} {
		require.True(t, called[k], k)
	}
	require.Contains(t, routes, "GET /history")
	require.Contains(t, routes, "GET /swagger/*")
	require.Contains(t, routes, "POST /generate-contract")
}

func TestRunWithoutOptionalBackends(t *testing.T) {
	t.Cleanup(restoreGlobals)
	newPgxPool = func(context.Context, string) (database.DB, error) {
		t.Fatal("database should not be opened")
		return nil, nil
	}
	newRedisClient = func(string, string, int) (cache.Cache, error) {
		t.Fatal("redis should not be opened")
		return nil, nil
	}
	startServer = func(e *echo.Echo, addr string) error {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"database":"disabled"`)

		rec = httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/history", nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
		return nil
	}
	setEnv(t, nil)
	require.NoError(t, run(noEnvFile(t)))
}

func TestRunErrors(t *testing.T) {
	t.Cleanup(restoreGlobals)
	startServer = func(*echo.Echo, string) error { return nil }

	// 缺少必要設定
	setEnv(t, nil)
	t.Setenv("CLIENT_SECRET", "")
	var cfgErr *config.ConfigError
	require.ErrorAs(t, run(noEnvFile(t)), &cfgErr)

	setEnv(t, map[string]string{"REDIS_ADDR": "addr", "DATABASE_URL": "postgres://db"})
	newLogger = func(string, string) (*zap.Logger, error) { return nil, errors.New("log") }
	require.ErrorContains(t, run(noEnvFile(t)), "logger")
	newLogger = logging.New

	newRedisClient = func(string, string, int) (cache.Cache, error) { return nil, errors.New("redis") }
	require.ErrorContains(t, run(noEnvFile(t)), "Redis")

	newRedisClient = func(string, string, int) (cache.Cache, error) { return &cache.FakeCache{}, nil }
	runMigrationsFn = func(string) error { return errors.New("migrate") }
	require.ErrorContains(t, run(noEnvFile(t)), "Migration")

	runMigrationsFn = func(string) error { return nil }
	newPgxPool = func(context.Context, string) (database.DB, error) { return nil, errors.New("db") }
	require.ErrorContains(t, run(noEnvFile(t)), "DB")

	newPgxPool = func(context.Context, string) (database.DB, error) { return &database.FakeDB{}, nil }
	startServer = func(*echo.Echo, string) error { return errors.New("start") }
	require.EqualError(t, run(noEnvFile(t)), "start")

	require.Error(t, run([]string{"--unknown-flag"}))
}

func TestVersionFlag(t *testing.T) {
	t.Cleanup(restoreGlobals)
	code := -1
	exitFunc = func(c int) { code = c; panic("exit") }
	require.PanicsWithValue(t, "exit", func() { _ = run([]string{"--version"}) })
	require.Equal(t, 0, code)
}

func keepArgs(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
}

func TestMainFunction(t *testing.T) {
	t.Cleanup(restoreGlobals)
	keepArgs(t)
	startServer = func(*echo.Echo, string) error { return nil }
	setEnv(t, nil)
	os.Args = []string{"genpact-relay", "--env-file", filepath.Join(t.TempDir(), "absent.env")}
	main()
}

func TestMainExit(t *testing.T) {
	t.Cleanup(restoreGlobals)
	keepArgs(t)
	exitCode := 0
	exitFunc = func(code int) { exitCode = code }
	setEnv(t, nil)
	t.Setenv("TOKEN_URL", "")
	os.Args = []string{"genpact-relay", "--env-file", filepath.Join(t.TempDir(), "absent.env")}
	main()
	require.Equal(t, 1, exitCode)
}

func TestServeReturnsStartError(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	err := serve(e, "not-an-address")
	require.Error(t, err)
	require.False(t, strings.Contains(err.Error(), "shutdown"))
}
