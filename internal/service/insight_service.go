package service

import (
	"fmt"

	"github.com/Rugged007/Finance-App/internal/domain"
	"github.com/shopspring/decimal"
)

// InsightService turns the current summary into short textual observations
// for the insights panel.
type InsightService struct{}

// NewInsightService creates a new InsightService
func NewInsightService() *InsightService {
	return &InsightService{}
}

var (
	concentrationThreshold = int64(40)
	savingsRateThreshold   = decimal.NewFromFloat(0.2)
)

// Generate derives insights from the summary. Rules fire independently and
// the result is ordered by importance as produced.
func (s *InsightService) Generate(summary *domain.Summary) []*domain.Insight {
	var insights []*domain.Insight

	if summary.Income.IsZero() && summary.Expenses.IsZero() {
		return []*domain.Insight{{
			ID:          "1",
			Title:       "Not Enough Data",
			Description: "Add a few transactions and insights about your spending will appear here.",
			Type:        domain.InsightTypePattern,
			Importance:  domain.ImportanceLow,
		}}
	}

	if summary.Balance.IsNegative() {
		insights = append(insights, &domain.Insight{
			Title: "Spending Exceeds Income",
			Description: fmt.Sprintf(
				"Your expenses are %s higher than your income for this period. Review your largest categories to get back on track.",
				summary.Balance.Abs().StringFixed(2)),
			Type:       domain.InsightTypeAlert,
			Importance: domain.ImportanceHigh,
		})
	}

	if len(summary.Categories) > 0 {
		top := summary.Categories[0]
		if top.Percentage >= concentrationThreshold {
			insights = append(insights, &domain.Insight{
				Title: "Unusual Spending Pattern",
				Description: fmt.Sprintf(
					"%s accounts for %d%% of your spending this period, which is higher than a balanced budget would suggest.",
					top.Category, top.Percentage),
				Type:       domain.InsightTypePattern,
				Importance: domain.ImportanceMedium,
			})
		}
	}

	if summary.Income.IsPositive() && summary.Balance.IsPositive() {
		rate := summary.Balance.Div(summary.Income)
		if rate.GreaterThanOrEqual(savingsRateThreshold) {
			insights = append(insights, &domain.Insight{
				Title: "Saving Opportunity",
				Description: fmt.Sprintf(
					"You kept %s of your income this period. Moving it to a savings account would put it to work.",
					summary.Balance.StringFixed(2)),
				Type:       domain.InsightTypeOpportunity,
				Importance: domain.ImportanceMedium,
			})
		}
	}

	for i, insight := range insights {
		insight.ID = fmt.Sprintf("%d", i+1)
	}

	return insights
}
