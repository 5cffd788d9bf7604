package renewal

import (
	"github.com/shopspring/decimal"

	"iptrack/internal/domain"
)

// TotalCost sums cost(item) over items, counting absent costs as zero.
func TotalCost[T any](items []T, cost func(T) decimal.NullDecimal) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(domain.CostOrZero(cost(item)))
	}
	return total
}

// CostSummary splits recurring costs by authority. ONAPI covers trademarks
// and trade names.
type CostSummary struct {
	Domains    decimal.Decimal `json:"domain_cost"`
	ONAPI      decimal.Decimal `json:"onapi_cost"`
	Mercantile decimal.Decimal `json:"mercantile_cost"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// Summarize adds the three independent sums into a grand total.
func Summarize(domains, onapi, mercantile decimal.Decimal) CostSummary {
	return CostSummary{
		Domains:    domains,
		ONAPI:      onapi,
		Mercantile: mercantile,
		GrandTotal: domains.Add(onapi).Add(mercantile),
	}
}

func DomainCost(d domain.Domain) decimal.NullDecimal               { return d.AnnualCostUSD }
func TrademarkCost(t domain.Trademark) decimal.NullDecimal         { return t.RenewalCost }
func TradeNameCost(t domain.TradeName) decimal.NullDecimal         { return t.RenewalCost }
func MercantileCost(m domain.MercantileRecord) decimal.NullDecimal { return m.RenewalCost }

// SummarizeAssets computes the cost summary straight from the asset lists.
func SummarizeAssets(domains []domain.Domain, trademarks []domain.Trademark, tradeNames []domain.TradeName, mercantile []domain.MercantileRecord) CostSummary {
	onapi := TotalCost(trademarks, TrademarkCost).Add(TotalCost(tradeNames, TradeNameCost))
	return Summarize(TotalCost(domains, DomainCost), onapi, TotalCost(mercantile, MercantileCost))
}
