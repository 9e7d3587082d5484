package service

import (
	"context"
	"strings"
	"sync"

	"github.com/Rugged007/Finance-App/internal/domain"
	"github.com/Rugged007/Finance-App/internal/util"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionService is the mutation workflow: it validates and normalizes
// form payloads into canonical records before handing them to the store.
type TransactionService struct {
	store domain.TransactionStore
	guard submitGuard
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(store domain.TransactionStore) *TransactionService {
	return &TransactionService{
		store: store,
		guard: submitGuard{inflight: make(map[string]struct{})},
	}
}

// TransactionForm is the raw create/update payload as entered by the user.
// Amount is the magnitude only; the sign is derived from IsIncome during
// normalization, never entered directly.
type TransactionForm struct {
	MerchantName string
	Amount       string
	Date         string
	Category     string
	Description  string
	Notes        string
	IsIncome     bool
}

// NormalizeForm validates a form payload and produces a canonical draft.
// The stored amount is signed (income positive, expense negative) and
// IsIncome always agrees with that sign.
func NormalizeForm(form TransactionForm) (*domain.TransactionDraft, error) {
	merchant := strings.TrimSpace(form.MerchantName)
	if merchant == "" {
		return nil, domain.ErrMerchantRequired
	}
	if len(merchant) > domain.MaxMerchantNameLength {
		return nil, domain.ErrMerchantTooLong
	}

	magnitude, err := decimal.NewFromString(strings.TrimSpace(form.Amount))
	if err != nil || !magnitude.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}

	category, err := domain.ParseCategory(form.Category)
	if err != nil {
		return nil, err
	}

	date, err := util.ParseDay(form.Date)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	if util.IsFutureDay(date) {
		return nil, domain.ErrFutureDate
	}

	var description *string
	if trimmed := strings.TrimSpace(form.Description); trimmed != "" {
		description = &trimmed
	}

	var notes *string
	if trimmed := strings.TrimSpace(form.Notes); trimmed != "" {
		if len(trimmed) > domain.MaxNotesLength {
			return nil, domain.ErrNotesTooLong
		}
		notes = &trimmed
	}

	amount := magnitude
	if !form.IsIncome {
		amount = magnitude.Neg()
	}

	return &domain.TransactionDraft{
		MerchantName: merchant,
		Amount:       amount,
		Date:         date,
		Category:     category,
		Description:  description,
		Notes:        notes,
		IsIncome:     form.IsIncome,
	}, nil
}

// Create validates the form and persists a new transaction. submissionID
// identifies the originating form instance: while a create with a given id
// is in flight, a second create with the same id is rejected without
// reaching the store. An empty submissionID disables the guard.
func (s *TransactionService) Create(ctx context.Context, submissionID string, form TransactionForm) (*domain.Transaction, error) {
	if submissionID != "" {
		if !s.guard.tryAcquire(submissionID) {
			return nil, domain.ErrDuplicateSubmission
		}
		defer s.guard.release(submissionID)
	}

	draft, err := NormalizeForm(form)
	if err != nil {
		return nil, err
	}

	return s.store.Create(ctx, draft)
}

// Update validates the form and persists a full-record update.
func (s *TransactionService) Update(ctx context.Context, id uuid.UUID, form TransactionForm) (*domain.Transaction, error) {
	draft, err := NormalizeForm(form)
	if err != nil {
		return nil, err
	}

	return s.store.Update(ctx, id, draft)
}

// Get retrieves a single transaction by id.
func (s *TransactionService) Get(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	return s.store.GetByID(ctx, id)
}

// Delete removes a transaction by id. On failure the caller leaves its
// local collection untouched.
func (s *TransactionService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Delete(ctx, id)
}

// submitGuard tracks in-flight form submissions so a double-click cannot
// commit the same create twice.
type submitGuard struct {
	mu       sync.Mutex
	inflight map[string]struct{}
}

func (g *submitGuard) tryAcquire(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inflight[id]; busy {
		return false
	}
	g.inflight[id] = struct{}{}
	return true
}

func (g *submitGuard) release(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inflight, id)
}
