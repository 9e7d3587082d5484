package service

import (
	"testing"

	"github.com/Rugged007/Finance-App/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_EmptyCollection(t *testing.T) {
	summary := Summarize(nil)

	assert.True(t, summary.Balance.IsZero())
	assert.True(t, summary.Income.IsZero())
	assert.True(t, summary.Expenses.IsZero())
	assert.Empty(t, summary.Categories)
}

func TestSummarize_IncomeExpensesAndBreakdown(t *testing.T) {
	records := []*domain.Transaction{
		feedTx("Salary", "3200.00", "2025-03-01", domain.CategoryIncome),
		feedTx("Rent", "-850.00", "2025-03-02", domain.CategoryBillsUtilities),
		feedTx("Grocer", "-425.00", "2025-03-03", domain.CategoryFoodDining),
	}

	summary := Summarize(records)

	assert.Equal(t, "1925.00", summary.Balance.StringFixed(2))
	assert.Equal(t, "3200.00", summary.Income.StringFixed(2))
	assert.Equal(t, "1275.00", summary.Expenses.StringFixed(2))

	require.Len(t, summary.Categories, 2)
	assert.Equal(t, domain.CategoryBillsUtilities, summary.Categories[0].Category)
	assert.Equal(t, "850.00", summary.Categories[0].Amount.StringFixed(2))
	assert.Equal(t, int64(67), summary.Categories[0].Percentage)
	assert.Equal(t, domain.CategoryFoodDining, summary.Categories[1].Category)
	assert.Equal(t, "425.00", summary.Categories[1].Amount.StringFixed(2))
	assert.Equal(t, int64(33), summary.Categories[1].Percentage)
}

func TestSummarize_BalanceEqualsIncomeMinusExpenses(t *testing.T) {
	records := []*domain.Transaction{
		feedTx("Salary", "2500.00", "2025-03-01", domain.CategoryIncome),
		feedTx("Refund", "35.40", "2025-03-02", domain.CategoryShopping),
		feedTx("Rent", "-900.00", "2025-03-03", domain.CategoryBillsUtilities),
		feedTx("Grocer", "-212.75", "2025-03-04", domain.CategoryFoodDining),
		feedTx("Flight", "-330.10", "2025-03-05", domain.CategoryTravel),
	}

	summary := Summarize(records)

	assert.True(t, summary.Balance.Equal(summary.Income.Sub(summary.Expenses)))
}

func TestSummarize_CategoryAmountsSumToExpensesExactly(t *testing.T) {
	records := []*domain.Transaction{
		feedTx("Rent", "-850.00", "2025-03-01", domain.CategoryBillsUtilities),
		feedTx("Grocer", "-425.33", "2025-03-02", domain.CategoryFoodDining),
		feedTx("Metro", "-17.67", "2025-03-03", domain.CategoryTransportation),
	}

	summary := Summarize(records)

	total := decimal.Zero
	for _, cs := range summary.Categories {
		total = total.Add(cs.Amount)
	}
	assert.True(t, total.Equal(summary.Expenses))
}

func TestSummarize_PercentagesRoundHalfUpAndAreNotRenormalized(t *testing.T) {
	// 5/8 = 62.5% and 3/8 = 37.5%: both round up, summing to 101.
	records := []*domain.Transaction{
		feedTx("Rent", "-5.00", "2025-03-01", domain.CategoryBillsUtilities),
		feedTx("Grocer", "-3.00", "2025-03-02", domain.CategoryFoodDining),
	}

	summary := Summarize(records)

	require.Len(t, summary.Categories, 2)
	assert.Equal(t, int64(63), summary.Categories[0].Percentage)
	assert.Equal(t, int64(38), summary.Categories[1].Percentage)
}

func TestSummarize_EqualCategoryAmountsKeepEncounterOrder(t *testing.T) {
	records := []*domain.Transaction{
		feedTx("Metro", "-100.00", "2025-03-01", domain.CategoryTransportation),
		feedTx("Cinema", "-100.00", "2025-03-02", domain.CategoryEntertainment),
		feedTx("Grocer", "-100.00", "2025-03-03", domain.CategoryFoodDining),
	}

	summary := Summarize(records)

	require.Len(t, summary.Categories, 3)
	assert.Equal(t, domain.CategoryTransportation, summary.Categories[0].Category)
	assert.Equal(t, domain.CategoryEntertainment, summary.Categories[1].Category)
	assert.Equal(t, domain.CategoryFoodDining, summary.Categories[2].Category)
	for _, cs := range summary.Categories {
		assert.Equal(t, int64(33), cs.Percentage)
	}
}

func TestSummarize_IncomeRecordsNeverEnterBreakdown(t *testing.T) {
	records := []*domain.Transaction{
		feedTx("Salary", "3200.00", "2025-03-01", domain.CategoryIncome),
		feedTx("Gift", "50.00", "2025-03-02", domain.CategoryOther),
	}

	summary := Summarize(records)

	assert.Empty(t, summary.Categories)
	assert.True(t, summary.Expenses.IsZero())
	assert.Equal(t, "3250.00", summary.Income.StringFixed(2))
}
