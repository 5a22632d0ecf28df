package store

import (
	"context"
	"fmt"

	"genpact-relay/internal/database"
	"genpact-relay/internal/model"
)

// MaxHistoryLimit 為 ListRecentQueries 單次回傳上限
const MaxHistoryLimit = 100

// RecordQuery 寫入一筆查詢紀錄，回填 ID 與 CreatedAt
func RecordQuery(ctx context.Context, db database.DB, r *model.QueryRecord) error {
	indexNames := r.IndexNames
	if indexNames == nil {
		indexNames = []string{}
	}
	row := db.QueryRow(ctx,
		`INSERT INTO query_history (kind, question, index_names, answer)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		r.Kind,
		r.Question,
		indexNames,
		r.Answer,
	)
	if err := row.Scan(&r.ID, &r.CreatedAt); err != nil {
		return fmt.Errorf("RecordQuery: %w", err)
	}
	return nil
}

// ListRecentQueries 依建立時間新到舊列出紀錄，limit 會被限制在 1..MaxHistoryLimit
func ListRecentQueries(ctx context.Context, db database.DB, limit int) ([]model.QueryRecord, error) {
	limit = min(max(limit, 1), MaxHistoryLimit)

	rows, err := db.Query(ctx,
		`SELECT id, kind, question, index_names, answer, created_at
		 FROM query_history
		 ORDER BY created_at DESC, id DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("ListRecentQueries: %w", err)
	}
	defer rows.Close()

	var list []model.QueryRecord
	for rows.Next() {
		var r model.QueryRecord
		if err := rows.Scan(
			&r.ID,
			&r.Kind,
			&r.Question,
			&r.IndexNames,
			&r.Answer,
			&r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListRecentQueries scan: %w", err)
		}
		list = append(list, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListRecentQueries rows: %w", err)
	}
	return list, nil
}
