// File: internal/handler/ping.go
package handler

import (
	"net/http"
	"time"

	"genpact-relay/internal/cache"
	"genpact-relay/internal/database"
	"genpact-relay/internal/dto"

	"github.com/labstack/echo/v4"
)

// TokenState 回報快取中 token 的到期時間
type TokenState interface {
	CachedUntil() (time.Time, bool)
}

// PingResponse 健康檢查回應模型
// swagger:model PingResponse
type PingResponse struct {
	// 回應訊息
	Message string `json:"message" example:"pong"`
	// 是否已有快取的上游 token
	TokenCached bool `json:"token_cached" example:"true"`
	// 快取 token 的到期時間
	TokenExpiresAt *time.Time `json:"token_expires_at,omitempty"`
	// ok 或 disabled
	Database string `json:"database" example:"ok"`
	// ok 或 disabled
	Cache string `json:"cache" example:"disabled"`
}

const (
	statusOK       = "ok"
	statusDisabled = "disabled"
)

// PingHandler 健康檢查
// @Summary     Health Check
// @Description 回傳 pong 與上游 token 快取狀態，並檢查已設定的資料庫與 Redis 連線
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} dto.HTTPError
// @Router      /ping [get]
func PingHandler(tokens TokenState, db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		resp := PingResponse{Message: "pong", Database: statusDisabled, Cache: statusDisabled}

		if db != nil {
			if err := db.Ping(ctx); err != nil {
				return c.JSON(http.StatusInternalServerError, dto.HTTPError{Detail: "database unhealthy"})
			}
			resp.Database = statusOK
		}
		if cch != nil {
			if err := cch.Ping(ctx).Err(); err != nil {
				return c.JSON(http.StatusInternalServerError, dto.HTTPError{Detail: "cache unhealthy"})
			}
			resp.Cache = statusOK
		}
		if exp, ok := tokens.CachedUntil(); ok {
			resp.TokenCached = true
			resp.TokenExpiresAt = &exp
		}
		return c.JSON(http.StatusOK, resp)
	}
}
