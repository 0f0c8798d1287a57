package model

import "time"

// Watchlist is a named, ordered collection of stocks. The JSON shape is the
// persisted document format, one document holding every watchlist.
type Watchlist struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Stocks    []Stock   `json:"stocks"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasStock reports whether a stock with the given symbol is present.
func (w *Watchlist) HasStock(symbol string) bool {
	for _, s := range w.Stocks {
		if s.Symbol == symbol {
			return true
		}
	}
	return false
}
