// File: internal/handler/root.go
package handler

import (
	"net/http"

	"genpact-relay/internal/dto"

	"github.com/labstack/echo/v4"
)

const rootMessage = "Backend relay for contract generation and question queries"

// RootHandler 服務說明
// @Summary     Service banner
// @Tags        health
// @Produce     json
// @Success     200 {object} dto.RootResponse
// @Router      / [get]
func RootHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, dto.RootResponse{Message: rootMessage})
	}
}
