package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/Rugged007/Finance-App/internal/domain"
	"github.com/google/uuid"
)

// MockTransactionStore is an in-memory implementation of
// domain.TransactionStore. Per-operation function overrides let tests
// inject failures or block an operation mid-flight.
type MockTransactionStore struct {
	mu           sync.Mutex
	Transactions map[uuid.UUID]*domain.Transaction
	order        []uuid.UUID

	ListCalls   int
	CreateCalls int
	UpdateCalls int
	DeleteCalls int

	ListFn   func(ctx context.Context) ([]*domain.Transaction, error)
	CreateFn func(ctx context.Context, draft *domain.TransactionDraft) (*domain.Transaction, error)
	UpdateFn func(ctx context.Context, id uuid.UUID, draft *domain.TransactionDraft) (*domain.Transaction, error)
	DeleteFn func(ctx context.Context, id uuid.UUID) error
}

// NewMockTransactionStore creates a new MockTransactionStore
func NewMockTransactionStore() *MockTransactionStore {
	return &MockTransactionStore{
		Transactions: make(map[uuid.UUID]*domain.Transaction),
	}
}

// AddTransaction seeds the store with a transaction (helper for tests)
func (m *MockTransactionStore) AddTransaction(t *domain.Transaction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if _, exists := m.Transactions[t.ID]; !exists {
		m.order = append(m.order, t.ID)
	}
	m.Transactions[t.ID] = t
}

// List returns all transactions ordered by date descending.
func (m *MockTransactionStore) List(ctx context.Context) ([]*domain.Transaction, error) {
	m.mu.Lock()
	m.ListCalls++
	fn := m.ListFn
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Transaction, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.Transactions[id])
	}
	// Insertion order within a day is preserved; newer dates first.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Date.After(out[j-1].Date); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out, nil
}

// Create assigns an id and stores the draft.
func (m *MockTransactionStore) Create(ctx context.Context, draft *domain.TransactionDraft) (*domain.Transaction, error) {
	m.mu.Lock()
	m.CreateCalls++
	fn := m.CreateFn
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, draft)
	}

	now := time.Now().UTC()
	t := &domain.Transaction{
		ID:           uuid.New(),
		MerchantName: draft.MerchantName,
		Amount:       draft.Amount,
		Date:         draft.Date,
		Category:     draft.Category,
		Description:  draft.Description,
		Notes:        draft.Notes,
		IsIncome:     draft.IsIncome,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	m.mu.Lock()
	m.Transactions[t.ID] = t
	m.order = append(m.order, t.ID)
	m.mu.Unlock()
	return t, nil
}

// GetByID retrieves a transaction by id.
func (m *MockTransactionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.Transactions[id]; ok {
		return t, nil
	}
	return nil, domain.ErrTransactionNotFound
}

// Update replaces the stored transaction's fields.
func (m *MockTransactionStore) Update(ctx context.Context, id uuid.UUID, draft *domain.TransactionDraft) (*domain.Transaction, error) {
	m.mu.Lock()
	m.UpdateCalls++
	fn := m.UpdateFn
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, id, draft)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.Transactions[id]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}

	updated := &domain.Transaction{
		ID:           id,
		MerchantName: draft.MerchantName,
		Amount:       draft.Amount,
		Date:         draft.Date,
		Category:     draft.Category,
		Description:  draft.Description,
		Notes:        draft.Notes,
		IsIncome:     draft.IsIncome,
		CreatedAt:    existing.CreatedAt,
		UpdatedAt:    time.Now().UTC(),
	}
	m.Transactions[id] = updated
	return updated, nil
}

// Delete removes a transaction by id.
func (m *MockTransactionStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	m.DeleteCalls++
	fn := m.DeleteFn
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Transactions[id]; !ok {
		return domain.ErrTransactionNotFound
	}
	delete(m.Transactions, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}
