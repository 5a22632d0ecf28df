// File: internal/model/query_record.go
package model

import "time"

// 查詢種類
const (
	KindContract = "contract"
	KindQuery    = "query"
)

// QueryRecord 為一筆已成功回答的查詢
type QueryRecord struct {
	ID         int64     `db:"id" json:"id"`
	Kind       string    `db:"kind" json:"kind"`
	Question   string    `db:"question" json:"question"`
	IndexNames []string  `db:"index_names" json:"index_names"`
	Answer     string    `db:"answer" json:"answer"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
