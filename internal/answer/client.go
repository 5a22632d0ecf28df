// Package answer forwards questions to the upstream answer service and extracts
// the answer text from its response envelope.
package answer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"genpact-relay/internal/cache"
	"genpact-relay/internal/metrics"

	"github.com/redis/go-redis/v9"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const (
	answerPath = "data.answer_body"
	// 錯誤訊息中保留的上游回應長度
	maxErrorBody = 512
)

// TokenSource 提供 Authorization header 的值
type TokenSource interface {
	BearerToken(ctx context.Context) (string, error)
}

type Config struct {
	URL     string
	Timeout time.Duration
	// CacheTTL 答案快取保存時間，0 表示不過期
	CacheTTL time.Duration
}

type Option func(*Client)

// WithCache 啟用答案快取
func WithCache(c cache.Cache) Option {
	return func(cl *Client) { cl.cache = c }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(cl *Client) { cl.http = hc }
}

func WithLogger(l *zap.Logger) Option {
	return func(cl *Client) { cl.logger = l }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(cl *Client) { cl.metrics = m }
}

type Client struct {
	url      string
	tokens   TokenSource
	http     *http.Client
	cache    cache.Cache
	cacheTTL time.Duration
	logger   *zap.Logger
	metrics  *metrics.Metrics
}

func New(cfg Config, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		url:      cfg.URL,
		tokens:   tokens,
		http:     &http.Client{Timeout: cfg.Timeout},
		cacheTTL: cfg.CacheTTL,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type questionPayload struct {
	QuestionBody string   `json:"question_body"`
	IndexName    []string `json:"index_name"`
}

// Ask 將問題送往答案服務並回傳 answer_body。
// 取 token 失敗時原樣回傳 token 錯誤；上游失敗回傳 *UpstreamError。
func (c *Client) Ask(ctx context.Context, question string, indexNames []string) (string, error) {
	key := cache.AnswerKey(question, indexNames)
	if ans, ok := c.cached(ctx, key); ok {
		c.metrics.AnswerCacheHit()
		return ans, nil
	}

	bearer, err := c.tokens.BearerToken(ctx)
	if err != nil {
		return "", err
	}

	start := time.Now()
	ans, err := c.post(ctx, bearer, questionPayload{QuestionBody: question, IndexName: indexNames})
	c.metrics.AnswerRequest(start, err)
	if err != nil {
		c.logger.Warn("answer request failed",
			zap.Strings("index_name", indexNames),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return "", err
	}

	c.store(ctx, key, ans)
	return ans, nil
}

func (c *Client) post(ctx context.Context, bearer string, payload questionPayload) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode question: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", &UpstreamError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Authorization", bearer)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Err: errors.New(snippet(data))}
	}

	res := gjson.GetBytes(data, answerPath)
	if !res.Exists() {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Err: ErrMalformedAnswer}
	}
	return res.String(), nil
}

func (c *Client) cached(ctx context.Context, key string) (string, bool) {
	if c.cache == nil {
		return "", false
	}
	ans, err := c.cache.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("answer cache get failed", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return ans, true
}

func (c *Client) store(ctx context.Context, key, ans string) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Set(ctx, key, ans, c.cacheTTL).Err(); err != nil {
		c.logger.Warn("answer cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func snippet(b []byte) string {
	s := strings.TrimSpace(string(b))
	if s == "" {
		return "empty response body"
	}
	if len(s) > maxErrorBody {
		return s[:maxErrorBody] + "..."
	}
	return s
}
