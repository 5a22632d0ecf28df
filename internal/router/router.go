// File: internal/router/router.go
package router

import (
	"net/http"

	"genpact-relay/internal/cache"
	"genpact-relay/internal/database"
	"genpact-relay/internal/handler"

	"github.com/labstack/echo/v4"
)

// Deps 為註冊路由所需的依賴；DB、Cache 未設定時為 nil
type Deps struct {
	Relay   handler.RelayDeps
	Tokens  handler.TokenState
	DB      database.DB
	Cache   cache.Cache
	Metrics http.Handler
}

// Setup 註冊所有路由
func Setup(e *echo.Echo, d Deps) {
	e.GET("/", handler.RootHandler())
	e.GET("/ping", handler.PingHandler(d.Tokens, d.DB, d.Cache))

	e.POST("/generate-contract", handler.GenerateContractHandler(d.Relay))
	e.POST("/query", handler.QueryHandler(d.Relay))

	// 查詢歷史僅在設定資料庫時提供
	if d.DB != nil {
		e.GET("/history", handler.HistoryHandler(d.DB))
	}
	if d.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(d.Metrics))
	}
}
