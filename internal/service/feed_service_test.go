package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/Rugged007/Finance-App/internal/domain"
	"github.com/Rugged007/Finance-App/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFeed(store *testutil.MockTransactionStore) *FeedService {
	return NewFeedService(store, NewTransactionService(store))
}

func TestFeedService_ViewDoesNotRefetch(t *testing.T) {
	store := testutil.NewMockTransactionStore()
	store.AddTransaction(feedTx("Grocer", "-25.00", "2025-03-01", domain.CategoryFoodDining))
	store.AddTransaction(feedTx("Salary", "3200.00", "2025-03-15", domain.CategoryIncome))
	feed := newFeed(store)

	require.NoError(t, feed.Load(context.Background()))

	for i := 0; i < 5; i++ {
		view, total, err := feed.View(context.Background(), domain.ViewParams{})
		require.NoError(t, err)
		assert.Len(t, view, 2)
		assert.Equal(t, 2, total)
	}

	assert.Equal(t, 1, store.ListCalls)
}

func TestFeedService_ViewLoadsLazilyOnFirstUse(t *testing.T) {
	store := testutil.NewMockTransactionStore()
	store.AddTransaction(feedTx("Grocer", "-25.00", "2025-03-01", domain.CategoryFoodDining))
	feed := newFeed(store)

	view, total, err := feed.View(context.Background(), domain.ViewParams{})

	require.NoError(t, err)
	assert.Len(t, view, 1)
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, store.ListCalls)
}

func TestFeedService_ViewReportsFilteredCountAndTotal(t *testing.T) {
	store := testutil.NewMockTransactionStore()
	store.AddTransaction(feedTx("Corner Cafe", "-4.95", "2025-03-01", domain.CategoryFoodDining))
	store.AddTransaction(feedTx("Metro", "-2.50", "2025-03-02", domain.CategoryTransportation))
	store.AddTransaction(feedTx("Cafe Dos", "-5.00", "2025-03-03", domain.CategoryFoodDining))
	feed := newFeed(store)

	view, total, err := feed.View(context.Background(), domain.ViewParams{SearchText: "cafe"})

	require.NoError(t, err)
	assert.Len(t, view, 2)
	assert.Equal(t, 3, total)
}

func TestFeedService_CreateMergesAfterStoreConfirms(t *testing.T) {
	store := testutil.NewMockTransactionStore()
	feed := newFeed(store)
	require.NoError(t, feed.Load(context.Background()))

	created, err := feed.Create(context.Background(), "", validForm())
	require.NoError(t, err)

	view, total, err := feed.View(context.Background(), domain.ViewParams{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, view, 1)
	assert.Equal(t, created.ID, view[0].ID)
	// Merged locally, not re-fetched.
	assert.Equal(t, 1, store.ListCalls)
}

func TestFeedService_CreateFailureLeavesCollectionUntouched(t *testing.T) {
	store := testutil.NewMockTransactionStore()
	store.AddTransaction(feedTx("Grocer", "-25.00", "2025-03-01", domain.CategoryFoodDining))
	feed := newFeed(store)
	require.NoError(t, feed.Load(context.Background()))

	store.CreateFn = func(ctx context.Context, draft *domain.TransactionDraft) (*domain.Transaction, error) {
		return nil, domain.NewPersistenceError("create", errors.New("boom"))
	}

	_, err := feed.Create(context.Background(), "", validForm())
	require.Error(t, err)

	_, total, err := feed.View(context.Background(), domain.ViewParams{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestFeedService_UpdateReplacesRecordInPlace(t *testing.T) {
	store := testutil.NewMockTransactionStore()
	existing := feedTx("Grocer", "-25.00", "2025-03-01", domain.CategoryFoodDining)
	store.AddTransaction(existing)
	feed := newFeed(store)
	require.NoError(t, feed.Load(context.Background()))

	form := validForm()
	form.MerchantName = "Organic Grocer"
	form.Amount = "30.00"

	updated, err := feed.Update(context.Background(), existing.ID, form)
	require.NoError(t, err)
	assert.Equal(t, "Organic Grocer", updated.MerchantName)

	view, total, err := feed.View(context.Background(), domain.ViewParams{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "Organic Grocer", view[0].MerchantName)
	assert.Equal(t, "-30.00", view[0].Amount.StringFixed(2))
}

func TestFeedService_DeleteRemovesRecord(t *testing.T) {
	store := testutil.NewMockTransactionStore()
	existing := feedTx("Grocer", "-25.00", "2025-03-01", domain.CategoryFoodDining)
	store.AddTransaction(existing)
	feed := newFeed(store)
	require.NoError(t, feed.Load(context.Background()))

	require.NoError(t, feed.Delete(context.Background(), existing.ID))

	_, total, err := feed.View(context.Background(), domain.ViewParams{})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestFeedService_DeleteFailureLeavesCollectionUntouched(t *testing.T) {
	store := testutil.NewMockTransactionStore()
	existing := feedTx("Grocer", "-25.00", "2025-03-01", domain.CategoryFoodDining)
	store.AddTransaction(existing)
	feed := newFeed(store)
	require.NoError(t, feed.Load(context.Background()))

	store.DeleteFn = func(ctx context.Context, id uuid.UUID) error {
		return domain.NewPersistenceError("delete", errors.New("boom"))
	}

	err := feed.Delete(context.Background(), existing.ID)
	require.Error(t, err)

	_, total, viewErr := feed.View(context.Background(), domain.ViewParams{})
	require.NoError(t, viewErr)
	assert.Equal(t, 1, total)
}

func TestFeedService_SummaryRecomputesAfterMutation(t *testing.T) {
	store := testutil.NewMockTransactionStore()
	store.AddTransaction(feedTx("Salary", "3200.00", "2025-03-01", domain.CategoryIncome))
	feed := newFeed(store)
	require.NoError(t, feed.Load(context.Background()))

	summary, err := feed.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "3200.00", summary.Balance.StringFixed(2))

	_, err = feed.Create(context.Background(), "", validForm())
	require.NoError(t, err)

	summary, err = feed.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "3195.05", summary.Balance.StringFixed(2))
	assert.Equal(t, "4.95", summary.Expenses.StringFixed(2))
}

func TestFeedService_OverlappingLoadsLastWriteWins(t *testing.T) {
	store := testutil.NewMockTransactionStore()
	feed := newFeed(store)

	first := []*domain.Transaction{feedTx("Stale", "-1.00", "2025-03-01", domain.CategoryOther)}
	second := []*domain.Transaction{
		feedTx("Fresh A", "-2.00", "2025-03-02", domain.CategoryOther),
		feedTx("Fresh B", "-3.00", "2025-03-03", domain.CategoryOther),
	}

	started := make(chan struct{})
	release := make(chan struct{})
	var calls int32
	store.ListFn = func(ctx context.Context) ([]*domain.Transaction, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(started)
			<-release
			return first, nil
		}
		return second, nil
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, feed.Load(context.Background()))
	}()

	// A second load completes while the first is still outstanding.
	<-started
	require.NoError(t, feed.Load(context.Background()))

	// The slow first reply lands last and wins.
	close(release)
	wg.Wait()

	view, total, err := feed.View(context.Background(), domain.ViewParams{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, view, 1)
	assert.Equal(t, "Stale", view[0].MerchantName)
}
