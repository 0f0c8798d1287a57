package watchlist

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/notnotrachit/GrowwwStocks/model"
	apperrors "github.com/notnotrachit/GrowwwStocks/pkg/errors"
	"github.com/notnotrachit/GrowwwStocks/storage"
)

func newTestService(t *testing.T) (*Service, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	return NewService(store, zap.NewNop()), store
}

// advance the injected clock so ids and updatedAt values are distinct
func tick(s *Service) {
	base := time.Now()
	offset := time.Duration(0)
	s.now = func() time.Time {
		offset += time.Second
		return base.Add(offset)
	}
}

func TestListEmptyStore(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)

	lists, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, lists)
}

func TestListCorruptDocumentTreatedAsEmpty(t *testing.T) {
	ctx := context.Background()
	s, store := newTestService(t)
	require.NoError(t, store.Set(ctx, StorageKey, "{not json"))

	lists, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, lists)
}

func TestCreateNameConflictCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)
	tick(s)

	_, err := s.Create(ctx, "Tech")
	require.NoError(t, err)

	_, err = s.Create(ctx, "tech")
	require.Error(t, err)
	assert.True(t, apperrors.IsNameConflict(err))
}

func TestCreateRejectsInvalidNames(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)

	for _, name := range []string{"", " ", "x", "bad/name"} {
		_, err := s.Create(ctx, name)
		assert.Error(t, err, "name %q", name)
	}
}

func TestCreateEnforcesMaxWatchlists(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)
	tick(s)

	for i := 0; i < MaxWatchlists; i++ {
		_, err := s.Create(ctx, "List "+string(rune('A'+i)))
		require.NoError(t, err)
	}
	_, err := s.Create(ctx, "One Too Many")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeValidation, apperrors.CodeOf(err))
}

func TestAddStockDuplicate(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)
	tick(s)

	created, err := s.Create(ctx, "Tech")
	require.NoError(t, err)

	stock := model.Stock{Symbol: "AAPL", Name: "Apple Inc", Price: "150"}
	require.NoError(t, s.AddStock(ctx, created.ID, stock))

	err = s.AddStock(ctx, created.ID, stock)
	require.Error(t, err)
	assert.True(t, apperrors.IsDuplicateStock(err))

	lists, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Len(t, lists[0].Stocks, 1, "duplicate add must not append a second AAPL")
}

func TestAddStockUnknownWatchlist(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)

	err := s.AddStock(ctx, "12345", model.Stock{Symbol: "AAPL"})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestRemoveStockAbsentSymbolIsNoOp(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)
	tick(s)

	created, err := s.Create(ctx, "Tech")
	require.NoError(t, err)
	require.NoError(t, s.AddStock(ctx, created.ID, model.Stock{Symbol: "MSFT"}))

	require.NoError(t, s.RemoveStock(ctx, created.ID, "AAPL"))

	lists, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Len(t, lists[0].Stocks, 1)
	assert.Equal(t, "MSFT", lists[0].Stocks[0].Symbol)
}

func TestRemoveStockUnknownWatchlist(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)

	err := s.RemoveStock(ctx, "12345", "AAPL")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestAddStockToManyPartialFailure(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)
	tick(s)

	withStock, err := s.Create(ctx, "Has It")
	require.NoError(t, err)
	without, err := s.Create(ctx, "Wants It")
	require.NoError(t, err)

	stock := model.Stock{Symbol: "AAPL", Name: "Apple Inc"}
	require.NoError(t, s.AddStock(ctx, withStock.ID, stock))

	err = s.AddStockToMany(ctx, []string{withStock.ID, without.ID}, stock)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodePartialFailure, apperrors.CodeOf(err))
	assert.Contains(t, err.Error(), withStock.Name)

	// the successful addition persisted despite the reported error
	lists, err := s.List(ctx)
	require.NoError(t, err)
	for _, w := range lists {
		assert.True(t, w.HasStock("AAPL"), "watchlist %s should contain AAPL", w.Name)
	}
}

func TestAddStockToManyUnknownID(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)
	tick(s)

	created, err := s.Create(ctx, "Tech")
	require.NoError(t, err)

	err = s.AddStockToMany(ctx, []string{created.ID, "missing"}, model.Stock{Symbol: "AAPL"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")

	has, err := s.IsStockInAny(ctx, "AAPL")
	require.NoError(t, err)
	assert.True(t, has)
}

func TestWatchlistLifecycle(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)
	tick(s)

	created, err := s.Create(ctx, "Watchlist1")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Empty(t, created.Stocks)
	assert.True(t, created.CreatedAt.Equal(created.UpdatedAt))

	require.NoError(t, s.AddStock(ctx, created.ID, model.Stock{Symbol: "MSFT", Price: "300"}))

	lists, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	require.Len(t, lists[0].Stocks, 1)
	assert.Equal(t, "MSFT", lists[0].Stocks[0].Symbol)
	assert.True(t, lists[0].UpdatedAt.After(lists[0].CreatedAt))

	require.NoError(t, s.Delete(ctx, created.ID))
	lists, err = s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, lists)
}

func TestDeleteUnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)
	tick(s)

	_, err := s.Create(ctx, "Keep Me")
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "does-not-exist"))

	lists, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, lists, 1)
}

func TestSymbolScans(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)
	tick(s)

	first, err := s.Create(ctx, "First")
	require.NoError(t, err)
	second, err := s.Create(ctx, "Second")
	require.NoError(t, err)

	require.NoError(t, s.AddStock(ctx, first.ID, model.Stock{Symbol: "AAPL"}))
	require.NoError(t, s.AddStock(ctx, second.ID, model.Stock{Symbol: "AAPL"}))
	require.NoError(t, s.AddStock(ctx, second.ID, model.Stock{Symbol: "MSFT"}))

	has, err := s.IsStockInAny(ctx, "AAPL")
	require.NoError(t, err)
	assert.True(t, has)

	has, err = s.IsStockInAny(ctx, "TSLA")
	require.NoError(t, err)
	assert.False(t, has)

	containing, err := s.ListContaining(ctx, "MSFT")
	require.NoError(t, err)
	require.Len(t, containing, 1)
	assert.Equal(t, "Second", containing[0].Name)
}

func TestStorageFailurePropagates(t *testing.T) {
	ctx := context.Background()
	s := NewService(failingStore{}, zap.NewNop())

	_, err := s.List(ctx)
	require.Error(t, err)
	assert.True(t, apperrors.IsStorage(err))
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, assert.AnError
}
func (failingStore) Set(context.Context, string, string) error   { return assert.AnError }
func (failingStore) Remove(context.Context, string) error        { return assert.AnError }
func (failingStore) MultiRemove(context.Context, []string) error { return assert.AnError }
func (failingStore) Keys(context.Context) ([]string, error)      { return nil, assert.AnError }
func (failingStore) Close() error                                { return nil }
