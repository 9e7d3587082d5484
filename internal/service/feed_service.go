package service

import (
	"context"
	"sync"

	"github.com/Rugged007/Finance-App/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// FeedService owns the in-memory transaction collection backing the
// dashboard. The collection is loaded wholesale from the store and patched
// locally after each confirmed mutation; it is never re-fetched per
// interaction. It is correct as long as this process is the sole writer.
type FeedService struct {
	store        domain.TransactionStore
	transactions *TransactionService

	mu      sync.Mutex
	records []*domain.Transaction
	loaded  bool
}

// NewFeedService creates a new FeedService
func NewFeedService(store domain.TransactionStore, transactions *TransactionService) *FeedService {
	return &FeedService{
		store:        store,
		transactions: transactions,
	}
}

// Load replaces the in-memory collection with the store's current state.
// Overlapping loads are not deduplicated: whichever reply lands last wins.
func (s *FeedService) Load(ctx context.Context) error {
	records, err := s.store.List(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.records = records
	s.loaded = true
	s.mu.Unlock()

	log.Debug().Int("count", len(records)).Msg("Transaction collection loaded")
	return nil
}

func (s *FeedService) ensureLoaded(ctx context.Context) error {
	s.mu.Lock()
	loaded := s.loaded
	s.mu.Unlock()
	if loaded {
		return nil
	}
	return s.Load(ctx)
}

// snapshot returns the current collection. The slice is a copy so callers
// can reorder it freely; the records themselves are shared and treated as
// immutable.
func (s *FeedService) snapshot() []*domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Transaction, len(s.records))
	copy(out, s.records)
	return out
}

// View derives the ordered feed for the given parameters from the in-memory
// collection. It returns the derived list and the total collection size.
func (s *FeedService) View(ctx context.Context, params domain.ViewParams) ([]*domain.Transaction, int, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, 0, err
	}
	records := s.snapshot()
	return DeriveView(records, params), len(records), nil
}

// Summary recomputes the dashboard figures from the in-memory collection.
func (s *FeedService) Summary(ctx context.Context) (*domain.Summary, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return Summarize(s.snapshot()), nil
}

// Get returns a single transaction through the store.
func (s *FeedService) Get(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	return s.transactions.Get(ctx, id)
}

// Create runs the mutation workflow and, only after the store confirms,
// merges the new record into the in-memory collection.
func (s *FeedService) Create(ctx context.Context, submissionID string, form TransactionForm) (*domain.Transaction, error) {
	created, err := s.transactions.Create(ctx, submissionID, form)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.records = append([]*domain.Transaction{created}, s.records...)
	s.mu.Unlock()

	return created, nil
}

// Update runs the mutation workflow and replaces the matching record in the
// in-memory collection once the store confirms.
func (s *FeedService) Update(ctx context.Context, id uuid.UUID, form TransactionForm) (*domain.Transaction, error) {
	updated, err := s.transactions.Update(ctx, id, form)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	for i, t := range s.records {
		if t.ID == id {
			s.records[i] = updated
			break
		}
	}
	s.mu.Unlock()

	return updated, nil
}

// Delete removes the transaction from the store, then from the in-memory
// collection. On store failure the collection is left untouched.
func (s *FeedService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.transactions.Delete(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	for i, t := range s.records {
		if t.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	return nil
}
