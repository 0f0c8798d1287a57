package model

// CompanyOverview is the sparse key/value record of company fundamentals
// returned by the provider's OVERVIEW endpoint. Every value is a string and
// any field may be missing or carry a sentinel that means "no value".
type CompanyOverview map[string]string

// Fields commonly consumed from a company overview.
const (
	OverviewSymbol        = "Symbol"
	OverviewName          = "Name"
	OverviewDescription   = "Description"
	OverviewSector        = "Sector"
	OverviewIndustry      = "Industry"
	OverviewExchange      = "Exchange"
	OverviewMarketCap     = "MarketCapitalization"
	OverviewPERatio       = "PERatio"
	OverviewEPS           = "EPS"
	OverviewBeta          = "Beta"
	OverviewWeekHigh52    = "52WeekHigh"
	OverviewWeekLow52     = "52WeekLow"
	OverviewRevenueTTM    = "RevenueTTM"
	OverviewProfitMargin  = "ProfitMargin"
	OverviewBookValue     = "BookValue"
	OverviewEBITDA        = "EBITDA"
	OverviewDividendYield = "DividendYield"
)

// HasValue reports whether a raw overview value carries real information.
// The provider pads absent fundamentals with "", "None", "-" or flavors of
// zero; consumers must treat all of those as missing, not as a real zero.
func HasValue(value string) bool {
	switch value {
	case "", "None", "-", "0", "0.0", "0.000":
		return false
	}
	return true
}

// Get returns the named field, or "" when absent.
func (o CompanyOverview) Get(field string) string {
	return o[field]
}

// Has reports whether the named field carries a usable value.
func (o CompanyOverview) Has(field string) bool {
	return HasValue(o[field])
}

// Symbol returns the ticker symbol the overview describes.
func (o CompanyOverview) Symbol() string {
	return o[OverviewSymbol]
}

// Name returns the company display name.
func (o CompanyOverview) Name() string {
	return o[OverviewName]
}

// essential fields used to judge whether an overview is worth showing
var essentialOverviewFields = []string{
	OverviewName,
	OverviewSector,
	OverviewIndustry,
	OverviewExchange,
	OverviewMarketCap,
}

// IsEmpty reports whether the overview is too sparse to be useful: more than
// half of the essential fields are missing.
func (o CompanyOverview) IsEmpty() bool {
	empty := 0
	for _, field := range essentialOverviewFields {
		if !o.Has(field) {
			empty++
		}
	}
	return empty > len(essentialOverviewFields)/2
}

// HasMinimalData reports whether the overview carries at least a symbol and
// a real company name.
func (o CompanyOverview) HasMinimalData() bool {
	return o[OverviewSymbol] != "" && o.Has(OverviewName)
}

// Metric is a labeled fundamental ready for display.
type Metric struct {
	Label string
	Value string
}

// Info returns the available descriptive fields (sector, industry,
// exchange), skipping anything the provider left empty.
func (o CompanyOverview) Info() []Metric {
	info := []Metric{}
	for _, m := range []struct{ label, field string }{
		{"Sector", OverviewSector},
		{"Industry", OverviewIndustry},
		{"Exchange", OverviewExchange},
	} {
		if o.Has(m.field) {
			info = append(info, Metric{Label: m.label, Value: o[m.field]})
		}
	}
	return info
}
