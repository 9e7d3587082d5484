package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/Rugged007/Finance-App/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// TransactionStore implements domain.TransactionStore using PostgreSQL
type TransactionStore struct {
	pool *pgxpool.Pool
}

// NewTransactionStore creates a new TransactionStore
func NewTransactionStore(pool *pgxpool.Pool) *TransactionStore {
	return &TransactionStore{pool: pool}
}

const transactionColumns = `id, merchant_name, amount::text, "date", category, description, notes, is_income, created_at, updated_at`

// List returns all transactions ordered by date descending, newest entries
// first within a day.
func (s *TransactionStore) List(ctx context.Context) ([]*domain.Transaction, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+transactionColumns+`
		   FROM transactions
		  ORDER BY "date" DESC, created_at DESC`)
	if err != nil {
		return nil, domain.NewPersistenceError("list", err)
	}
	defer rows.Close()

	var out []*domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, domain.NewPersistenceError("list", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewPersistenceError("list", err)
	}
	return out, nil
}

// Create inserts a new transaction and assigns its id.
func (s *TransactionStore) Create(ctx context.Context, draft *domain.TransactionDraft) (*domain.Transaction, error) {
	id := uuid.New()
	row := s.pool.QueryRow(ctx,
		`INSERT INTO transactions (id, merchant_name, amount, "date", category, description, notes, is_income, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
		 RETURNING `+transactionColumns,
		id, draft.MerchantName, draft.Amount.StringFixed(2), draft.Date,
		string(draft.Category), textOrNil(draft.Description), textOrNil(draft.Notes), draft.IsIncome)

	t, err := scanTransaction(row)
	if err != nil {
		return nil, domain.NewPersistenceError("create", err)
	}
	return t, nil
}

// GetByID retrieves a transaction by its id.
func (s *TransactionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id)

	t, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, domain.NewPersistenceError("get", err)
	}
	return t, nil
}

// Update replaces all mutable fields of a transaction.
func (s *TransactionStore) Update(ctx context.Context, id uuid.UUID, draft *domain.TransactionDraft) (*domain.Transaction, error) {
	row := s.pool.QueryRow(
		ctx,
		`UPDATE transactions
		    SET merchant_name = $2, amount = $3, "date" = $4, category = $5,
		        description = $6, notes = $7, is_income = $8, updated_at = now()
		  WHERE id = $1
		  RETURNING `+transactionColumns,
		id, draft.MerchantName, draft.Amount.StringFixed(2), draft.Date,
		string(draft.Category), textOrNil(draft.Description), textOrNil(draft.Notes), draft.IsIncome)

	t, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, domain.NewPersistenceError("update", err)
	}
	return t, nil
}

// Delete removes a transaction by id.
func (s *TransactionStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return domain.NewPersistenceError("delete", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

// Helper functions

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		t           domain.Transaction
		amount      string
		date        time.Time
		category    string
		description pgtype.Text
		notes       pgtype.Text
	)

	err := row.Scan(&t.ID, &t.MerchantName, &amount, &date, &category,
		&description, &notes, &t.IsIncome, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}

	t.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, err
	}
	t.Date = date.UTC()
	t.Category = domain.Category(category)
	if description.Valid {
		t.Description = &description.String
	}
	if notes.Valid {
		t.Notes = &notes.String
	}
	return &t, nil
}

func textOrNil(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
