package watchlist

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/notnotrachit/GrowwwStocks/model"
	apperrors "github.com/notnotrachit/GrowwwStocks/pkg/errors"
	"github.com/notnotrachit/GrowwwStocks/storage"
)

// StorageKey holds the single serialized watchlist collection.
const StorageKey = "watchlists"

// MaxWatchlists caps how many watchlists one user may keep.
const MaxWatchlists = 10

// Service owns the persisted watchlist collection. Every mutation is a full
// read-modify-write of the collection under one storage key; the mutex
// keeps writers within this process from losing updates.
type Service struct {
	store  storage.KVStore
	logger *zap.Logger

	mu  sync.Mutex
	now func() time.Time
}

// NewService creates a watchlist Service over the given store.
func NewService(store storage.KVStore, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// List returns all watchlists. A missing document or one that fails to
// deserialize is treated as "no data", not an error.
func (s *Service) List(ctx context.Context) ([]model.Watchlist, error) {
	raw, ok, err := s.store.Get(ctx, StorageKey)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeStorage, "failed to load watchlists")
	}
	if !ok {
		return []model.Watchlist{}, nil
	}
	var watchlists []model.Watchlist
	if err := json.Unmarshal([]byte(raw), &watchlists); err != nil {
		s.logger.Warn("Discarding unreadable watchlist document", zap.Error(err))
		return []model.Watchlist{}, nil
	}
	if watchlists == nil {
		watchlists = []model.Watchlist{}
	}
	return watchlists, nil
}

func (s *Service) save(ctx context.Context, watchlists []model.Watchlist) error {
	raw, err := json.Marshal(watchlists)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeStorage, "failed to save watchlists")
	}
	if err := s.store.Set(ctx, StorageKey, string(raw)); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeStorage, "failed to save watchlists")
	}
	return nil
}

// Create adds a new, empty watchlist. Names are unique case-insensitively.
func (s *Service) Create(ctx context.Context, name string) (*model.Watchlist, error) {
	if err := model.ValidateWatchlistName(name); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	watchlists, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, w := range watchlists {
		if strings.EqualFold(w.Name, name) {
			return nil, apperrors.New(apperrors.ErrCodeNameConflict, "Watchlist with this name already exists")
		}
	}
	if len(watchlists) >= MaxWatchlists {
		return nil, apperrors.Newf(apperrors.ErrCodeValidation, "Cannot keep more than %d watchlists", MaxWatchlists)
	}

	now := s.now().UTC()
	created := model.Watchlist{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Name:      name,
		Stocks:    []model.Stock{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	watchlists = append(watchlists, created)
	if err := s.save(ctx, watchlists); err != nil {
		return nil, err
	}

	s.logger.Info("Created watchlist", zap.String("id", created.ID), zap.String("name", created.Name))
	return &created, nil
}

// AddStock appends a stock to one watchlist. Adding a symbol that is
// already present fails with DuplicateStock.
func (s *Service) AddStock(ctx context.Context, watchlistID string, stock model.Stock) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	watchlists, err := s.List(ctx)
	if err != nil {
		return err
	}
	idx := indexOf(watchlists, watchlistID)
	if idx < 0 {
		return apperrors.New(apperrors.ErrCodeNotFound, "Watchlist not found")
	}
	if watchlists[idx].HasStock(stock.Symbol) {
		return apperrors.New(apperrors.ErrCodeDuplicateStock, "Stock already exists in this watchlist")
	}

	watchlists[idx].Stocks = append(watchlists[idx].Stocks, stock)
	watchlists[idx].UpdatedAt = s.now().UTC()
	return s.save(ctx, watchlists)
}

// AddStockToMany applies the add-stock rule per id, best effort: every
// successful addition is persisted even when some ids fail, and the per-id
// failures come back as one aggregate error.
func (s *Service) AddStockToMany(ctx context.Context, watchlistIDs []string, stock model.Stock) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	watchlists, err := s.List(ctx)
	if err != nil {
		return err
	}

	var failures []string
	changed := false
	for _, id := range watchlistIDs {
		idx := indexOf(watchlists, id)
		if idx < 0 {
			failures = append(failures, "Watchlist with ID "+id+" not found")
			continue
		}
		if watchlists[idx].HasStock(stock.Symbol) {
			failures = append(failures, "Stock already exists in watchlist \""+watchlists[idx].Name+"\"")
			continue
		}
		watchlists[idx].Stocks = append(watchlists[idx].Stocks, stock)
		watchlists[idx].UpdatedAt = s.now().UTC()
		changed = true
	}

	if changed {
		if err := s.save(ctx, watchlists); err != nil {
			return err
		}
	}
	if len(failures) > 0 {
		return apperrors.New(apperrors.ErrCodePartialFailure, strings.Join(failures, "; "))
	}
	return nil
}

// RemoveStock filters out any stock with the given symbol. Removing an
// absent symbol is a no-op, not an error.
func (s *Service) RemoveStock(ctx context.Context, watchlistID, symbol string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	watchlists, err := s.List(ctx)
	if err != nil {
		return err
	}
	idx := indexOf(watchlists, watchlistID)
	if idx < 0 {
		return apperrors.New(apperrors.ErrCodeNotFound, "Watchlist not found")
	}

	kept := watchlists[idx].Stocks[:0]
	for _, stock := range watchlists[idx].Stocks {
		if stock.Symbol != symbol {
			kept = append(kept, stock)
		}
	}
	watchlists[idx].Stocks = kept
	watchlists[idx].UpdatedAt = s.now().UTC()
	return s.save(ctx, watchlists)
}

// Delete removes the watchlist if present; deleting an unknown id is a
// no-op.
func (s *Service) Delete(ctx context.Context, watchlistID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	watchlists, err := s.List(ctx)
	if err != nil {
		return err
	}
	kept := watchlists[:0]
	for _, w := range watchlists {
		if w.ID != watchlistID {
			kept = append(kept, w)
		}
	}
	return s.save(ctx, kept)
}

// IsStockInAny reports whether any watchlist contains the symbol.
func (s *Service) IsStockInAny(ctx context.Context, symbol string) (bool, error) {
	watchlists, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	for _, w := range watchlists {
		if w.HasStock(symbol) {
			return true, nil
		}
	}
	return false, nil
}

// ListContaining returns every watchlist holding the symbol.
func (s *Service) ListContaining(ctx context.Context, symbol string) ([]model.Watchlist, error) {
	watchlists, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	containing := []model.Watchlist{}
	for _, w := range watchlists {
		if w.HasStock(symbol) {
			containing = append(containing, w)
		}
	}
	return containing, nil
}

func indexOf(watchlists []model.Watchlist, id string) int {
	for i, w := range watchlists {
		if w.ID == id {
			return i
		}
	}
	return -1
}
