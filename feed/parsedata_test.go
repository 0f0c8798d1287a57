package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformMoverDefaults(t *testing.T) {
	stock := transformMover(moverRecord{Ticker: "AAPL"})

	assert.Equal(t, "AAPL", stock.Symbol)
	assert.Equal(t, "AAPL", stock.Name, "movers endpoint has no names; symbol stands in")
	assert.Equal(t, "0", stock.Price)
	assert.Equal(t, "0", stock.Change)
	assert.Equal(t, "0%", stock.ChangePercent)
	assert.Equal(t, "0", stock.Volume)
}

func TestTransformMoverKeepsProviderStrings(t *testing.T) {
	stock := transformMover(moverRecord{
		Ticker:           "NVDA",
		Price:            "490.97",
		ChangeAmount:     "0.51",
		ChangePercentage: "0.104%",
		Volume:           "124101288",
	})

	assert.Equal(t, "490.97", stock.Price)
	assert.Equal(t, "0.104%", stock.ChangePercent)
	assert.True(t, stock.IsGaining())
}

func TestParseDailySeriesSortsAscending(t *testing.T) {
	response := &dailyResponse{
		MetaData: map[string]string{
			FIELD_META_SYMBOL:         "IBM",
			FIELD_META_LAST_REFRESHED: "2024-01-05",
			FIELD_META_OUTPUT_SIZE:    "Compact",
			FIELD_META_TIME_ZONE:      "US/Eastern",
		},
		TimeSeries: map[string]map[string]string{
			"2024-01-05": {FIELD_OPEN: "160.00", FIELD_HIGH: "162.50", FIELD_LOW: "159.10", FIELD_CLOSE: "161.25", FIELD_VOLUME: "3500000"},
			"2024-01-03": {FIELD_OPEN: "158.00", FIELD_HIGH: "159.00", FIELD_LOW: "157.20", FIELD_CLOSE: "158.90", FIELD_VOLUME: "2800000"},
			"2024-01-04": {FIELD_OPEN: "159.00", FIELD_HIGH: "160.10", FIELD_LOW: "158.50", FIELD_CLOSE: "159.80", FIELD_VOLUME: "3100000"},
		},
	}

	data, err := parseDailySeries(response)
	require.NoError(t, err)

	assert.Equal(t, "IBM", data.MetaData.Symbol)
	require.Len(t, data.Series, 3)
	assert.Equal(t, "2024-01-03", data.Series[0].Date.Format(DATE_LAYOUT))
	assert.Equal(t, "2024-01-05", data.Series[2].Date.Format(DATE_LAYOUT))

	latest := data.Latest()
	require.NotNil(t, latest)
	assert.Equal(t, "161.25", latest.Close.String())
	assert.Equal(t, int64(3500000), latest.Volume)

	window := data.Window(2)
	require.Len(t, window, 2)
	assert.Equal(t, "2024-01-04", window[0].Date.Format(DATE_LAYOUT))
}

func TestParseDailySeriesMissingSections(t *testing.T) {
	_, err := parseDailySeries(&dailyResponse{})
	require.Error(t, err)

	_, err = parseDailySeries(&dailyResponse{MetaData: map[string]string{}})
	require.Error(t, err)
}

func TestTransformSearchMatches(t *testing.T) {
	response := &searchResponse{BestMatches: []map[string]string{
		{
			FIELD_MATCH_SYMBOL:   "AAPL",
			FIELD_MATCH_NAME:     "Apple Inc",
			FIELD_MATCH_TYPE:     "Equity",
			FIELD_MATCH_REGION:   "United States",
			FIELD_MATCH_CURRENCY: "USD",
			FIELD_MATCH_SCORE:    "1.0000",
		},
	}}

	matches := transformSearchMatches(response)
	require.Len(t, matches, 1)
	assert.Equal(t, "AAPL", matches[0].Symbol)
	assert.Equal(t, "Apple Inc", matches[0].Name)
	assert.Equal(t, "USD", matches[0].Currency)
}

func TestFingerprintDeterministic(t *testing.T) {
	a := fingerprint(map[string]string{"function": "OVERVIEW", "symbol": "IBM"}, "alphavantage")
	b := fingerprint(map[string]string{"symbol": "IBM", "function": "OVERVIEW"}, "alphavantage")
	assert.Equal(t, a, b, "parameter order must not change the fingerprint")

	c := fingerprint(map[string]string{"function": "OVERVIEW", "symbol": "MSFT"}, "alphavantage")
	assert.NotEqual(t, a, c)
}
