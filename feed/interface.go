package feed

import (
	"context"

	"github.com/notnotrachit/GrowwwStocks/model"
)

// QuoteFeed is the single point of contact with the external quote, search
// and company-data provider. Every operation consults the cache first; a
// hit suppresses the network call entirely. All failures surface as
// *errors.AppError with a display-ready message, and no operation retries.
type QuoteFeed interface {
	// TopMovers fetches the market's top gainers, losers and most actively
	// traded stocks.
	TopMovers(ctx context.Context) (*model.Movers, error)
	// CompanyOverview fetches one company's fundamentals by symbol.
	CompanyOverview(ctx context.Context, symbol string) (model.CompanyOverview, error)
	// TimeSeriesDaily fetches a compact daily price history for symbol.
	TimeSeriesDaily(ctx context.Context, symbol string) (*model.MarketData, error)
	// SymbolSearch fetches symbol matches for free-text keywords.
	SymbolSearch(ctx context.Context, keywords string) ([]model.SearchMatch, error)
}
