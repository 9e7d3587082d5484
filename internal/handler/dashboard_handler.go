package handler

import (
	"net/http"

	"github.com/Rugged007/Finance-App/internal/domain"
	"github.com/Rugged007/Finance-App/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// DashboardHandler handles dashboard summary requests
type DashboardHandler struct {
	feed *service.FeedService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(feed *service.FeedService) *DashboardHandler {
	return &DashboardHandler{feed: feed}
}

// CategorySpendingResponse represents one slice of the expense breakdown
type CategorySpendingResponse struct {
	Category   string `json:"category"`
	Amount     string `json:"amount"`
	Percentage int64  `json:"percentage"`
}

// SummaryResponse represents the dashboard summary in API responses
type SummaryResponse struct {
	Balance    string                     `json:"balance"`
	Income     string                     `json:"income"`
	Expenses   string                     `json:"expenses"`
	Categories []CategorySpendingResponse `json:"categories"`
}

// GetSummary godoc
// @Summary Get dashboard summary
// @Description Balance, income, expenses and the per-category expense breakdown
// @Tags dashboard
// @Produce json
// @Success 200 {object} SummaryResponse
// @Failure 500 {object} ProblemDetails
// @Router /summary [get]
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	summary, err := h.feed.Summary(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to compute summary")
		return NewInternalError(c, "Failed to compute summary")
	}

	return c.JSON(http.StatusOK, toSummaryResponse(summary))
}

func toSummaryResponse(summary *domain.Summary) SummaryResponse {
	response := SummaryResponse{
		Balance:    summary.Balance.StringFixed(2),
		Income:     summary.Income.StringFixed(2),
		Expenses:   summary.Expenses.StringFixed(2),
		Categories: make([]CategorySpendingResponse, len(summary.Categories)),
	}
	for i, cs := range summary.Categories {
		response.Categories[i] = CategorySpendingResponse{
			Category:   string(cs.Category),
			Amount:     cs.Amount.StringFixed(2),
			Percentage: cs.Percentage,
		}
	}
	return response
}
