package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is a single signed monetary event. Amount sign encodes
// direction: positive is income, negative is expense. IsIncome is
// denormalized from the sign and is only ever written by the mutation
// workflow, which keeps the two consistent.
type Transaction struct {
	ID           uuid.UUID       `json:"id"`
	MerchantName string          `json:"merchantName"`
	Amount       decimal.Decimal `json:"amount"`
	Date         time.Time       `json:"date"`
	Category     Category        `json:"category"`
	Description  *string         `json:"description,omitempty"`
	Notes        *string         `json:"notes,omitempty"`
	IsIncome     bool            `json:"isIncome"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// TransactionDraft is a fully validated transaction without an id. The store
// assigns the id on create.
type TransactionDraft struct {
	MerchantName string
	Amount       decimal.Decimal
	Date         time.Time
	Category     Category
	Description  *string
	Notes        *string
	IsIncome     bool
}

// SortKey selects the field the feed is ordered by.
type SortKey string

const (
	SortKeyNone     SortKey = ""
	SortKeyDate     SortKey = "date"
	SortKeyAmount   SortKey = "amount"
	SortKeyCategory SortKey = "category"
)

// SortDirection is the order applied to the active sort key.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ViewParams is the user-controlled tuple that selects and orders the
// displayed transaction list.
type ViewParams struct {
	SearchText string
	SortBy     SortKey
	SortDir    SortDirection
}

// WithSort returns the params after the user activates a sort key: clicking
// the active key flips the direction, selecting a new key resets to
// descending.
func (p ViewParams) WithSort(key SortKey) ViewParams {
	if p.SortBy == key {
		if p.SortDir == SortAsc {
			p.SortDir = SortDesc
		} else {
			p.SortDir = SortAsc
		}
		return p
	}
	p.SortBy = key
	p.SortDir = SortDesc
	return p
}

const (
	MaxMerchantNameLength = 255
	MaxNotesLength        = 1000
)

// TransactionStore is the remote table-store the dashboard persists to.
// List returns all transactions ordered by date descending.
type TransactionStore interface {
	List(ctx context.Context) ([]*Transaction, error)
	Create(ctx context.Context, draft *TransactionDraft) (*Transaction, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Update(ctx context.Context, id uuid.UUID, draft *TransactionDraft) (*Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
