package feed

import (
	"sort"
	"time"

	"github.com/notnotrachit/GrowwwStocks/model"
	apperrors "github.com/notnotrachit/GrowwwStocks/pkg/errors"
)

// Numbered field names used across the provider's JSON payloads.
const (
	FIELD_META_INFORMATION    = "1. Information"
	FIELD_META_SYMBOL         = "2. Symbol"
	FIELD_META_LAST_REFRESHED = "3. Last Refreshed"
	FIELD_META_OUTPUT_SIZE    = "4. Output Size"
	FIELD_META_TIME_ZONE      = "5. Time Zone"

	FIELD_OPEN   = "1. open"
	FIELD_HIGH   = "2. high"
	FIELD_LOW    = "3. low"
	FIELD_CLOSE  = "4. close"
	FIELD_VOLUME = "5. volume"

	FIELD_MATCH_SYMBOL   = "1. symbol"
	FIELD_MATCH_NAME     = "2. name"
	FIELD_MATCH_TYPE     = "3. type"
	FIELD_MATCH_REGION   = "4. region"
	FIELD_MATCH_CURRENCY = "8. currency"
	FIELD_MATCH_SCORE    = "9. matchScore"

	DATE_LAYOUT = "2006-01-02"
)

// moverRecord is the provider's compact record on the movers endpoint.
type moverRecord struct {
	Ticker           string `json:"ticker"`
	Price            string `json:"price"`
	ChangeAmount     string `json:"change_amount"`
	ChangePercentage string `json:"change_percentage"`
	Volume           string `json:"volume"`
}

type moversResponse struct {
	Metadata    string        `json:"metadata"`
	LastUpdated string        `json:"last_updated"`
	TopGainers  []moverRecord `json:"top_gainers"`
	TopLosers   []moverRecord `json:"top_losers"`
	MostActive  []moverRecord `json:"most_actively_traded"`
}

type dailyResponse struct {
	MetaData   map[string]string            `json:"Meta Data"`
	TimeSeries map[string]map[string]string `json:"Time Series (Daily)"`
}

type searchResponse struct {
	BestMatches []map[string]string `json:"bestMatches"`
}

// transformMover converts the provider's compact record into the Stock
// shape. The movers endpoint carries no company names, so the name defaults
// to the ticker; absent numerics default to "0"/"0%".
func transformMover(record moverRecord) model.Stock {
	stock := model.Stock{
		Symbol:        record.Ticker,
		Name:          record.Ticker,
		Price:         record.Price,
		Change:        record.ChangeAmount,
		ChangePercent: record.ChangePercentage,
		Volume:        record.Volume,
	}
	if stock.Price == "" {
		stock.Price = "0"
	}
	if stock.Change == "" {
		stock.Change = "0"
	}
	if stock.ChangePercent == "" {
		stock.ChangePercent = "0%"
	}
	if stock.Volume == "" {
		stock.Volume = "0"
	}
	return stock
}

func transformMoverList(records []moverRecord) []model.Stock {
	stocks := make([]model.Stock, len(records))
	for i, record := range records {
		stocks[i] = transformMover(record)
	}
	return stocks
}

func transformMovers(response *moversResponse) *model.Movers {
	return &model.Movers{
		TopGainers:  transformMoverList(response.TopGainers),
		TopLosers:   transformMoverList(response.TopLosers),
		MostActive:  transformMoverList(response.MostActive),
		Information: response.Metadata,
		LastUpdated: response.LastUpdated,
	}
}

// parseDailySeries converts a daily time-series payload into MarketData
// with the series sorted by date ascending.
func parseDailySeries(response *dailyResponse) (*model.MarketData, error) {
	if response.MetaData == nil || response.TimeSeries == nil {
		return nil, apperrors.New(apperrors.ErrCodeProvider, "provider returned no time series data")
	}

	data := &model.MarketData{
		MetaData: &model.MetaData{
			Information: response.MetaData[FIELD_META_INFORMATION],
			Symbol:      response.MetaData[FIELD_META_SYMBOL],
			OutputSize:  response.MetaData[FIELD_META_OUTPUT_SIZE],
			TimeZone:    response.MetaData[FIELD_META_TIME_ZONE],
		},
	}
	if refreshed, err := time.Parse(DATE_LAYOUT, response.MetaData[FIELD_META_LAST_REFRESHED]); err == nil {
		data.MetaData.LastRefreshed = refreshed
	}

	for date, fields := range response.TimeSeries {
		day, err := time.Parse(DATE_LAYOUT, date)
		if err != nil {
			return nil, apperrors.Newf(apperrors.ErrCodeProvider, "failed to parse series date %q", date)
		}
		quote := &model.DailyQuote{
			Date:   day,
			Open:   model.ParseDecimal(fields[FIELD_OPEN]),
			High:   model.ParseDecimal(fields[FIELD_HIGH]),
			Low:    model.ParseDecimal(fields[FIELD_LOW]),
			Close:  model.ParseDecimal(fields[FIELD_CLOSE]),
			Volume: model.ParseDecimal(fields[FIELD_VOLUME]).IntPart(),
		}
		data.Series = append(data.Series, quote)
	}

	sort.Slice(data.Series, func(i, j int) bool {
		return data.Series[i].Date.Before(data.Series[j].Date)
	})
	return data, nil
}

func transformSearchMatches(response *searchResponse) []model.SearchMatch {
	matches := make([]model.SearchMatch, len(response.BestMatches))
	for i, record := range response.BestMatches {
		matches[i] = model.SearchMatch{
			Symbol:     record[FIELD_MATCH_SYMBOL],
			Name:       record[FIELD_MATCH_NAME],
			Type:       record[FIELD_MATCH_TYPE],
			Region:     record[FIELD_MATCH_REGION],
			Currency:   record[FIELD_MATCH_CURRENCY],
			MatchScore: record[FIELD_MATCH_SCORE],
		}
	}
	return matches
}
