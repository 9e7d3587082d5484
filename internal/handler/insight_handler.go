package handler

import (
	"net/http"

	"github.com/Rugged007/Finance-App/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// InsightHandler serves the generated insights panel content
type InsightHandler struct {
	feed     *service.FeedService
	insights *service.InsightService
}

// NewInsightHandler creates a new InsightHandler
func NewInsightHandler(feed *service.FeedService, insights *service.InsightService) *InsightHandler {
	return &InsightHandler{feed: feed, insights: insights}
}

// GetInsights godoc
// @Summary Get spending insights
// @Description Textual insights derived from the current summary
// @Tags insights
// @Produce json
// @Success 200 {array} domain.Insight
// @Failure 500 {object} ProblemDetails
// @Router /insights [get]
func (h *InsightHandler) GetInsights(c echo.Context) error {
	summary, err := h.feed.Summary(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to compute summary for insights")
		return NewInternalError(c, "Failed to generate insights")
	}

	return c.JSON(http.StatusOK, h.insights.Generate(summary))
}
