// Package prompt renders the natural-language prompts sent to the answer service.
package prompt

import (
	"strings"
	"text/template"

	"genpact-relay/internal/dto"
)

var contractTmpl = template.Must(template.New("contract").Parse(
	`I need a Supply Agreement Contract. Here are the details:

Supplier Name: {{.SupplierName}}

Product: {{.Product}}

Annual Volume: {{.AnnualVolume}}

Delivery: {{.Delivery}}

Pricing: {{.Pricing}}

Payment Terms: {{.PaymentTerms}}

Contract Duration: {{.ContractDuration}}

Quality Standards: {{.QualityStandards}}

Warranty: {{.Warranty}}

Compliance: {{.Compliance}}

Risk Requirements: {{.RiskRequirements}}

Additional Clauses: {{.AdditionalClauses}}

Please generate the full Supply Agreement Contract and then provide a compliance check summary.`))

// Contract 將合約條款組成供應合約的提示文字，欄位值原樣帶入
func Contract(req dto.SupplyAgreementRequest) string {
	var b strings.Builder
	// 模板欄位皆為字串，Execute 只會在寫入失敗時出錯
	_ = contractTmpl.Execute(&b, req)
	return b.String()
}
