// File: internal/dto/llm_response.go
package dto

// swagger:model dto.LLMResponse
type LLMResponse struct {
	LLMResponse string `json:"llm_response" example:"SUPPLY AGREEMENT ..."`
}
