// File: internal/dto/supply_agreement_request.go
package dto

// SupplyAgreementRequest 產生供應合約所需的條款內容
// swagger:model dto.SupplyAgreementRequest
type SupplyAgreementRequest struct {
	SupplierName      string `json:"supplier_name" validate:"required" example:"Acme Components Ltd."`
	Product           string `json:"product" validate:"required" example:"Lithium battery cells"`
	AnnualVolume      string `json:"annual_volume" validate:"required" example:"120,000 units"`
	Delivery          string `json:"delivery" validate:"required" example:"DAP Rotterdam, monthly call-offs"`
	Pricing           string `json:"pricing" validate:"required" example:"EUR 4.20 per unit, fixed for 12 months"`
	PaymentTerms      string `json:"payment_terms" validate:"required" example:"Net 60"`
	ContractDuration  string `json:"contract_duration" validate:"required" example:"3 years"`
	QualityStandards  string `json:"quality_standards" validate:"required" example:"ISO 9001, IATF 16949"`
	Warranty          string `json:"warranty" validate:"required" example:"24 months from delivery"`
	Compliance        string `json:"compliance" validate:"required" example:"REACH, RoHS"`
	RiskRequirements  string `json:"risk_requirements" validate:"required" example:"Dual sourcing for critical parts"`
	AdditionalClauses string `json:"additional_clauses" validate:"required" example:"Annual price review"`
	// 未提供時使用預設索引；空陣列照原樣轉送
	IndexName []string `json:"index_name" example:"1762885457669_uat_contracts"`
}
