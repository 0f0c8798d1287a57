package model

// Movers holds the market's top gainers, top losers and most actively
// traded stocks as returned by one provider call.
type Movers struct {
	TopGainers   []Stock `json:"top_gainers"`
	TopLosers    []Stock `json:"top_losers"`
	MostActive   []Stock `json:"most_actively_traded"`
	Information  string  `json:"information"`
	LastUpdated  string  `json:"last_updated"`
}

// SearchMatch is one result from a free-text symbol search.
type SearchMatch struct {
	Symbol     string `json:"symbol"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Region     string `json:"region"`
	Currency   string `json:"currency"`
	MatchScore string `json:"matchScore"`
}
