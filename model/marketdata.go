package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarketData is a daily price history for one symbol.
type MarketData struct {
	MetaData *MetaData     `json:"meta_data"`
	Series   []*DailyQuote `json:"series"`
}

// MetaData describes a downloaded time series.
type MetaData struct {
	Information   string    `json:"information"`
	Symbol        string    `json:"symbol"`
	LastRefreshed time.Time `json:"last_refreshed"`
	OutputSize    string    `json:"output_size"`
	TimeZone      string    `json:"time_zone"`
}

// DailyQuote is one trading day of OHLCV data.
type DailyQuote struct {
	Date   time.Time       `json:"date"`
	Open   decimal.Decimal `json:"open"`
	High   decimal.Decimal `json:"high"`
	Low    decimal.Decimal `json:"low"`
	Close  decimal.Decimal `json:"close"`
	Volume int64           `json:"volume"`
}

// Latest returns the most recent quote in the series, or nil when empty.
// Series is kept sorted by date ascending.
func (m *MarketData) Latest() *DailyQuote {
	if len(m.Series) == 0 {
		return nil
	}
	return m.Series[len(m.Series)-1]
}

// Window returns up to the last n quotes of the series.
func (m *MarketData) Window(n int) []*DailyQuote {
	if n <= 0 || len(m.Series) == 0 {
		return nil
	}
	if n > len(m.Series) {
		n = len(m.Series)
	}
	return m.Series[len(m.Series)-n:]
}
