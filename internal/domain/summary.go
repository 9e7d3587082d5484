package domain

import "github.com/shopspring/decimal"

// CategorySpending is one slice of the expense breakdown. Percentage is
// rounded half-up independently per category; the percentages are not
// renormalized, so they may not sum to exactly 100.
type CategorySpending struct {
	Category   Category        `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage int64           `json:"percentage"`
}

// Summary is the derived balance/income/expenses snapshot shown on the
// dashboard. Categories covers expense records only, ordered by amount
// descending.
type Summary struct {
	Balance    decimal.Decimal    `json:"balance"`
	Income     decimal.Decimal    `json:"income"`
	Expenses   decimal.Decimal    `json:"expenses"`
	Categories []CategorySpending `json:"categories"`
}
