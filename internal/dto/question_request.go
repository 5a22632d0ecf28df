// File: internal/dto/question_request.go
package dto

// swagger:model dto.QuestionRequest
type QuestionRequest struct {
	QuestionBody string   `json:"question_body" validate:"required" example:"Summarize the termination clauses."`
	IndexName    []string `json:"index_name" example:"1762885457669_uat_contracts"`
}
