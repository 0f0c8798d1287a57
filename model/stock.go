package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Stock is a quote snapshot as carried through the application. Numeric
// fields keep the provider's string form; use the *Value accessors when a
// real number is needed.
type Stock struct {
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	Price         string `json:"price"`
	Change        string `json:"change"`
	ChangePercent string `json:"changePercent"`
	Volume        string `json:"volume"`
}

// PriceValue returns the price as a decimal, zero if malformed.
func (s Stock) PriceValue() decimal.Decimal {
	return ParseDecimal(s.Price)
}

// ChangeValue returns the absolute change as a decimal, zero if malformed.
func (s Stock) ChangeValue() decimal.Decimal {
	return ParseDecimal(s.Change)
}

// ChangePercentValue returns the percent change as a decimal. The provider
// carries it with a trailing "%" (e.g. "1.23%").
func (s Stock) ChangePercentValue() decimal.Decimal {
	return ParseDecimal(strings.TrimSuffix(s.ChangePercent, "%"))
}

// VolumeValue returns the trading volume as a decimal, zero if malformed.
func (s Stock) VolumeValue() decimal.Decimal {
	return ParseDecimal(s.Volume)
}

// IsGaining reports whether the snapshot shows a positive change.
func (s Stock) IsGaining() bool {
	return s.ChangeValue().IsPositive()
}

// ParseDecimal converts a provider numeric string into a decimal. Empty
// strings, sentinel values and malformed numbers all come back as zero, so
// malformed-numeric handling lives in one place.
func ParseDecimal(value string) decimal.Decimal {
	cleaned := strings.TrimSpace(value)
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" || cleaned == "None" || cleaned == "-" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}
