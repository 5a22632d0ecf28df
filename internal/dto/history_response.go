// File: internal/dto/history_response.go
package dto

import "time"

// swagger:model dto.HistoryEntry
type HistoryEntry struct {
	ID         int64     `json:"id" example:"42"`
	Kind       string    `json:"kind" example:"contract"`
	Question   string    `json:"question" example:"I need a Supply Agreement Contract..."`
	IndexNames []string  `json:"index_name" example:"1762885457669_uat_contracts"`
	Answer     string    `json:"answer" example:"SUPPLY AGREEMENT ..."`
	CreatedAt  time.Time `json:"created_at"`
}

// swagger:model dto.HistoryResponse
type HistoryResponse struct {
	Items []HistoryEntry `json:"items"`
}
