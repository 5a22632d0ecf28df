// File: internal/handler/relay.go
package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"genpact-relay/internal/answer"
	"genpact-relay/internal/dto"
	"genpact-relay/internal/model"
	"genpact-relay/internal/store"
	"genpact-relay/internal/tokenprovider"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Asker 將問題轉送至答案服務
type Asker interface {
	Ask(ctx context.Context, question string, indexNames []string) (string, error)
}

// RelayDeps 為 /generate-contract 與 /query 共用的依賴
type RelayDeps struct {
	Asker Asker
	// Recorder 為 nil 時不記錄查詢歷史
	Recorder          store.Recorder
	DefaultIndexNames []string
	Logger            *zap.Logger
}

func (d RelayDeps) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

// indexNames 未提供 index_name 時使用預設值；明確給空陣列則原樣保留
func (d RelayDeps) indexNames(requested []string) []string {
	if requested == nil {
		return append([]string(nil), d.DefaultIndexNames...)
	}
	return requested
}

// relay 送出問題、記錄歷史並回傳 LLMResponse
func (d RelayDeps) relay(c echo.Context, kind, question string, requested []string) error {
	indexNames := d.indexNames(requested)
	ans, err := d.Asker.Ask(c.Request().Context(), question, indexNames)
	if err != nil {
		d.logger().Warn("relay failed", zap.String("kind", kind), zap.Error(err))
		return writeAskError(c, err)
	}
	if d.Recorder != nil {
		d.Recorder.Record(model.QueryRecord{
			Kind:       kind,
			Question:   question,
			IndexNames: indexNames,
			Answer:     ans,
		})
	}
	return c.JSON(http.StatusOK, dto.LLMResponse{LLMResponse: ans})
}

// writeAskError 依錯誤種類組出 500 回應的 detail
func writeAskError(c echo.Context, err error) error {
	var authErr *tokenprovider.AuthError
	var upErr *answer.UpstreamError
	var detail string
	switch {
	case errors.As(err, &authErr):
		detail = "Authentication error: " + authErr.Error()
	case errors.As(err, &upErr):
		detail = "External API error: " + upErr.Error()
	default:
		detail = "Internal server error: " + err.Error()
	}
	return c.JSON(http.StatusInternalServerError, dto.HTTPError{Detail: detail})
}

// bindAndValidate 綁定 JSON 並驗證，失敗時已寫出 422 並回傳 false
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusUnprocessableEntity, dto.HTTPError{Detail: bindDetail(err)})
	}
	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusUnprocessableEntity, dto.HTTPError{Detail: validationDetail(err)})
	}
	return true, nil
}

func bindDetail(err error) string {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return fmt.Sprintf("invalid request body: %v", he.Message)
	}
	return "invalid request body: " + err.Error()
}

func validationDetail(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Field(), fe.Tag()))
	}
	return strings.Join(msgs, "; ")
}
