// File: internal/handler/history.go
package handler

import (
	"net/http"
	"strconv"

	"genpact-relay/internal/database"
	"genpact-relay/internal/dto"
	"genpact-relay/internal/store"

	"github.com/labstack/echo/v4"
)

const defaultHistoryLimit = 20

// HistoryHandler 列出最近的查詢紀錄
// @Summary     Recent queries
// @Tags        history
// @Produce     json
// @Param       limit query    int false "筆數 (1-100，預設 20)"
// @Success     200   {object} dto.HistoryResponse
// @Failure     422   {object} dto.HTTPError
// @Failure     500   {object} dto.HTTPError
// @Router      /history [get]
func HistoryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		limit := defaultHistoryLimit
		if v := c.QueryParam("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				return c.JSON(http.StatusUnprocessableEntity, dto.HTTPError{Detail: "limit must be a positive integer"})
			}
			limit = n
		}

		records, err := store.ListRecentQueries(c.Request().Context(), db, limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Detail: "Internal server error: " + err.Error()})
		}

		resp := dto.HistoryResponse{Items: make([]dto.HistoryEntry, 0, len(records))}
		for _, r := range records {
			resp.Items = append(resp.Items, dto.HistoryEntry{
				ID:         r.ID,
				Kind:       r.Kind,
				Question:   r.Question,
				IndexNames: r.IndexNames,
				Answer:     r.Answer,
				CreatedAt:  r.CreatedAt,
			})
		}
		return c.JSON(http.StatusOK, resp)
	}
}
