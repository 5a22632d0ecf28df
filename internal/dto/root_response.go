// File: internal/dto/root_response.go
package dto

// swagger:model dto.RootResponse
type RootResponse struct {
	Message string `json:"message" example:"Backend relay for contract generation and question queries"`
}
