package cache

import (
	"fmt"
	"strings"

	"github.com/zeebo/xxh3"
)

// AnswerKey 依索引名稱與問題內容產生答案快取的 key
// 索引順序不同視為不同的查詢
func AnswerKey(question string, indexNames []string) string {
	h := xxh3.HashString128(strings.Join(indexNames, "\x1f") + "\x00" + question)
	return fmt.Sprintf("answer:%016x%016x", h.Hi, h.Lo)
}
