// File: internal/handler/generate_contract.go
package handler

import (
	"genpact-relay/internal/dto"
	"genpact-relay/internal/model"
	"genpact-relay/internal/prompt"

	"github.com/labstack/echo/v4"
)

// GenerateContractHandler 依合約條款產生供應合約
// @Summary     Generate a Supply Agreement Contract
// @Description 將合約條款組成提示文字後轉送至答案服務，回傳合約全文與合規檢查摘要
// @Tags        relay
// @Accept      json
// @Produce     json
// @Param       body body     dto.SupplyAgreementRequest true "合約條款"
// @Success     200  {object} dto.LLMResponse
// @Failure     422  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /generate-contract [post]
func GenerateContractHandler(deps RelayDeps) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.SupplyAgreementRequest
		if ok, err := bindAndValidate(c, &req); !ok {
			return err
		}
		return deps.relay(c, model.KindContract, prompt.Contract(req), req.IndexName)
	}
}
