package utils

import (
	"fmt"
	"strconv"

	"github.com/notnotrachit/GrowwwStocks/model"
)

// FormatLargeNumber renders a provider numeric string as a compact dollar
// amount ($1.23T / $4.56B / $7.89M / $1.23K). Malformed input is returned
// unchanged.
func FormatLargeNumber(value string) string {
	num, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return value
	}
	switch {
	case num >= 1e12:
		return fmt.Sprintf("$%.2fT", num/1e12)
	case num >= 1e9:
		return fmt.Sprintf("$%.2fB", num/1e9)
	case num >= 1e6:
		return fmt.Sprintf("$%.2fM", num/1e6)
	case num >= 1e3:
		return fmt.Sprintf("$%.2fK", num/1e3)
	}
	return fmt.Sprintf("$%.2f", num)
}

// FormatPercentage renders a provider ratio string ("0.0234") as a percent
// ("2.34%"). Malformed input is returned unchanged.
func FormatPercentage(value string) string {
	num, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return value
	}
	return fmt.Sprintf("%.2f%%", num*100)
}

// AvailableMetrics extracts the fundamentals an overview actually carries,
// formatted for display, skipping absent or sentinel values.
func AvailableMetrics(overview model.CompanyOverview) []model.Metric {
	metrics := []model.Metric{}

	if overview.Has(model.OverviewMarketCap) {
		metrics = append(metrics, model.Metric{Label: "Market Cap", Value: FormatLargeNumber(overview.Get(model.OverviewMarketCap))})
	}
	if overview.Has(model.OverviewPERatio) {
		metrics = append(metrics, model.Metric{Label: "P/E Ratio", Value: overview.Get(model.OverviewPERatio)})
	}
	if overview.Has(model.OverviewEPS) {
		metrics = append(metrics, model.Metric{Label: "EPS", Value: "$" + overview.Get(model.OverviewEPS)})
	}
	if overview.Has(model.OverviewBeta) {
		metrics = append(metrics, model.Metric{Label: "Beta", Value: overview.Get(model.OverviewBeta)})
	}
	if overview.Has(model.OverviewWeekHigh52) {
		metrics = append(metrics, model.Metric{Label: "52W High", Value: "$" + overview.Get(model.OverviewWeekHigh52)})
	}
	if overview.Has(model.OverviewWeekLow52) {
		metrics = append(metrics, model.Metric{Label: "52W Low", Value: "$" + overview.Get(model.OverviewWeekLow52)})
	}
	if overview.Has(model.OverviewRevenueTTM) {
		metrics = append(metrics, model.Metric{Label: "Revenue TTM", Value: FormatLargeNumber(overview.Get(model.OverviewRevenueTTM))})
	}
	if overview.Has(model.OverviewProfitMargin) {
		metrics = append(metrics, model.Metric{Label: "Profit Margin", Value: FormatPercentage(overview.Get(model.OverviewProfitMargin))})
	}
	if overview.Has(model.OverviewBookValue) {
		metrics = append(metrics, model.Metric{Label: "Book Value", Value: "$" + overview.Get(model.OverviewBookValue)})
	}
	if overview.Has(model.OverviewEBITDA) {
		metrics = append(metrics, model.Metric{Label: "EBITDA", Value: FormatLargeNumber(overview.Get(model.OverviewEBITDA))})
	}

	return metrics
}
