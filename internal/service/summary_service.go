package service

import (
	"sort"

	"github.com/Rugged007/Finance-App/internal/domain"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Summarize reduces the transaction collection into the dashboard figures:
// total income, total expenses, net balance, and the per-category expense
// breakdown. Income-labeled records never contribute to the breakdown.
//
// Percentages are rounded half-up independently per category and are not
// renormalized, so they may not sum to exactly 100. The category amounts,
// however, always sum exactly to total expenses.
func Summarize(records []*domain.Transaction) *domain.Summary {
	income := decimal.Zero
	expenses := decimal.Zero

	byCategory := make(map[domain.Category]decimal.Decimal)
	var order []domain.Category

	for _, t := range records {
		switch t.Amount.Sign() {
		case 1:
			income = income.Add(t.Amount)
		case -1:
			abs := t.Amount.Abs()
			expenses = expenses.Add(abs)
			if _, seen := byCategory[t.Category]; !seen {
				order = append(order, t.Category)
			}
			byCategory[t.Category] = byCategory[t.Category].Add(abs)
		}
	}

	categories := make([]domain.CategorySpending, 0, len(order))
	for _, c := range order {
		amount := byCategory[c]
		var percentage int64
		if expenses.IsPositive() {
			// decimal.Round is half away from zero, which is half-up for
			// the non-negative amounts here.
			percentage = amount.Div(expenses).Mul(oneHundred).Round(0).IntPart()
		}
		categories = append(categories, domain.CategorySpending{
			Category:   c,
			Amount:     amount,
			Percentage: percentage,
		})
	}

	// Highest spend first; equal amounts keep first-encountered order.
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Amount.GreaterThan(categories[j].Amount)
	})

	return &domain.Summary{
		Balance:    income.Sub(expenses),
		Income:     income,
		Expenses:   expenses,
		Categories: categories,
	}
}
