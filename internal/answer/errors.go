package answer

import (
	"errors"
	"fmt"
)

// ErrMalformedAnswer 上游回應缺少 data.answer_body
var ErrMalformedAnswer = errors.New("malformed answer response: missing data.answer_body")

// UpstreamError 表示呼叫答案服務失敗：連線錯誤、非 2xx 或回應格式錯誤。
// StatusCode 為 0 代表沒有取得 HTTP 回應。
type UpstreamError struct {
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("answer service returned status %d: %v", e.StatusCode, e.Err)
	}
	return e.Err.Error()
}

func (e *UpstreamError) Unwrap() error { return e.Err }
