package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasValueSentinels(t *testing.T) {
	for _, sentinel := range []string{"", "None", "-", "0", "0.0", "0.000"} {
		assert.False(t, HasValue(sentinel), "sentinel %q must read as no value", sentinel)
	}
	assert.True(t, HasValue("12.5"))
	assert.True(t, HasValue("Technology"))
}

func TestOverviewIsEmpty(t *testing.T) {
	sparse := CompanyOverview{
		OverviewSymbol: "XXXX",
		OverviewName:   "None",
		OverviewSector: "-",
	}
	assert.True(t, sparse.IsEmpty())
	assert.False(t, sparse.HasMinimalData())

	full := CompanyOverview{
		OverviewSymbol:    "AAPL",
		OverviewName:      "Apple Inc",
		OverviewSector:    "Technology",
		OverviewIndustry:  "Consumer Electronics",
		OverviewExchange:  "NASDAQ",
		OverviewMarketCap: "2800000000000",
	}
	assert.False(t, full.IsEmpty())
	assert.True(t, full.HasMinimalData())
}

func TestOverviewInfoSkipsMissingFields(t *testing.T) {
	overview := CompanyOverview{
		OverviewSector:   "Technology",
		OverviewIndustry: "None",
		OverviewExchange: "NASDAQ",
	}
	info := overview.Info()
	assert.Len(t, info, 2)
	assert.Equal(t, "Sector", info[0].Label)
	assert.Equal(t, "Exchange", info[1].Label)
}

func TestValidateWatchlistName(t *testing.T) {
	assert.NoError(t, ValidateWatchlistName("Tech Stocks"))
	assert.Error(t, ValidateWatchlistName(""))
	assert.Error(t, ValidateWatchlistName("a"))
	assert.Error(t, ValidateWatchlistName("bad<name>"))
	assert.Error(t, ValidateWatchlistName(string(make([]byte, 60))))
}

func TestValidateSymbol(t *testing.T) {
	assert.NoError(t, ValidateSymbol("AAPL"))
	assert.NoError(t, ValidateSymbol("BRK.B"))
	assert.NoError(t, ValidateSymbol("bf-b"))
	assert.Error(t, ValidateSymbol(""))
	assert.Error(t, ValidateSymbol("NOT A SYMBOL"))
	assert.Error(t, ValidateSymbol("WAYTOOLONGSYM"))
}

func TestValidateSearchQuery(t *testing.T) {
	assert.NoError(t, ValidateSearchQuery("apple"))
	assert.Error(t, ValidateSearchQuery("  "))
	assert.Error(t, ValidateSearchQuery(string(make([]byte, 120))))
}
