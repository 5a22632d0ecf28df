// File: internal/handler/query.go
package handler

import (
	"genpact-relay/internal/dto"
	"genpact-relay/internal/model"

	"github.com/labstack/echo/v4"
)

// QueryHandler 將問題原樣轉送至答案服務
// @Summary     Ask a question
// @Tags        relay
// @Accept      json
// @Produce     json
// @Param       body body     dto.QuestionRequest true "問題內容"
// @Success     200  {object} dto.LLMResponse
// @Failure     422  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /query [post]
func QueryHandler(deps RelayDeps) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.QuestionRequest
		if ok, err := bindAndValidate(c, &req); !ok {
			return err
		}
		return deps.relay(c, model.KindQuery, req.QuestionBody, req.IndexName)
	}
}
