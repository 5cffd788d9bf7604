package renewal

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"iptrack/internal/domain"
)

// Entry is the kind-independent projection of a renewal-bearing asset.
type Entry struct {
	Kind  domain.Kind         `json:"kind"`
	Label string              `json:"type"`
	ID    string              `json:"id"`
	Name  string              `json:"name"`
	Date  *time.Time          `json:"date"`
	Cost  decimal.NullDecimal `json:"cost"`
}

// Labels used when tagging projections.
var kindLabels = map[domain.Kind]string{
	domain.KindDomain:     "Domain",
	domain.KindTrademark:  "Trademark",
	domain.KindTradeName:  "Trade Name",
	domain.KindMercantile: "Mercantile Record",
	domain.KindWatchlist:  "Watchlist",
}

// KindLabel returns the default human label for k.
func KindLabel(k domain.Kind) string {
	if label, ok := kindLabels[k]; ok {
		return label
	}
	return string(k)
}

func entry(kind domain.Kind, id, name string, date *time.Time, cost decimal.NullDecimal) Entry {
	return Entry{Kind: kind, Label: KindLabel(kind), ID: id, Name: name, Date: date, Cost: cost}
}

func FromDomains(items []domain.Domain) []Entry {
	out := make([]Entry, 0, len(items))
	for _, d := range items {
		out = append(out, entry(domain.KindDomain, d.ID, d.DomainFull, d.RenewalDate, d.AnnualCostUSD))
	}
	return out
}

func FromTrademarks(items []domain.Trademark) []Entry {
	out := make([]Entry, 0, len(items))
	for _, t := range items {
		out = append(out, entry(domain.KindTrademark, t.ID, t.Name, t.ExpiryDate, t.RenewalCost))
	}
	return out
}

func FromTradeNames(items []domain.TradeName) []Entry {
	out := make([]Entry, 0, len(items))
	for _, t := range items {
		out = append(out, entry(domain.KindTradeName, t.ID, t.Name, t.ExpiryDate, t.RenewalCost))
	}
	return out
}

func FromMercantile(items []domain.MercantileRecord) []Entry {
	out := make([]Entry, 0, len(items))
	for _, m := range items {
		out = append(out, entry(domain.KindMercantile, m.ID, m.CompanyName, m.RenewalDate, m.RenewalCost))
	}
	return out
}

func FromWatchlist(items []domain.WatchlistItem) []Entry {
	out := make([]Entry, 0, len(items))
	for _, w := range items {
		out = append(out, entry(domain.KindWatchlist, w.ID, w.DomainFull, w.ExpiryDate, w.EstimatedPrice))
	}
	return out
}

// Merge concatenates the streams, drops entries without a date and sorts the
// rest by date ascending. The sort is stable, so entries sharing a date keep
// the order of their streams.
func Merge(streams ...[]Entry) []Entry {
	var out []Entry
	for _, stream := range streams {
		for _, e := range stream {
			if e.Date == nil {
				continue
			}
			out = append(out, e)
		}
	}
	slices.SortStableFunc(out, func(a, b Entry) int {
		return a.Date.Compare(*b.Date)
	})
	return out
}
