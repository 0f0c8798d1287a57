package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "150.25", "150.25"},
		{"negative", "-1.02", "-1.02"},
		{"thousands separators", "1,234,567", "1234567"},
		{"padded", " 42 ", "42"},
		{"empty", "", "0"},
		{"none sentinel", "None", "0"},
		{"dash sentinel", "-", "0"},
		{"garbage", "abc", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDecimal(tt.input).String())
		})
	}
}

func TestStockValueAccessors(t *testing.T) {
	stock := Stock{
		Symbol:        "AAPL",
		Price:         "185.64",
		Change:        "2.61",
		ChangePercent: "1.43%",
		Volume:        "47471982",
	}

	assert.True(t, stock.PriceValue().Equal(decimal.RequireFromString("185.64")))
	assert.True(t, stock.ChangePercentValue().Equal(decimal.RequireFromString("1.43")))
	assert.True(t, stock.IsGaining())

	loser := Stock{Change: "-1.02", ChangePercent: "-0.43%"}
	assert.False(t, loser.IsGaining())
	assert.True(t, loser.ChangePercentValue().IsNegative())
}

func TestWatchlistHasStock(t *testing.T) {
	w := Watchlist{Stocks: []Stock{{Symbol: "AAPL"}, {Symbol: "MSFT"}}}
	assert.True(t, w.HasStock("AAPL"))
	assert.False(t, w.HasStock("TSLA"))
}
