package renewal

import (
	"cmp"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"iptrack/internal/domain"
)

// Sentinel keys for absent dimensions.
const (
	NoVertical = "No Vertical"
	NotAvail   = "N/A"
)

// MonthLabel formats t as "January 2006".
func MonthLabel(t time.Time) string {
	return t.Format("January 2006")
}

// MonthGroup holds the items falling in one calendar month.
type MonthGroup struct {
	Label string `json:"label"`
	Items []Item `json:"items"`
}

// GroupByMonth sorts items by date and groups them under label(date). Groups
// keep first-seen order, which after the sort is chronological. Undated items
// are skipped. A nil label uses MonthLabel.
func GroupByMonth(items []Item, label func(time.Time) string) []MonthGroup {
	if label == nil {
		label = MonthLabel
	}
	dated := make([]Item, 0, len(items))
	for _, it := range items {
		if it.Date != nil {
			dated = append(dated, it)
		}
	}
	slices.SortStableFunc(dated, func(a, b Item) int {
		return a.Date.Compare(*b.Date)
	})

	groups := []MonthGroup{}
	index := map[string]int{}
	for _, it := range dated {
		key := label(*it.Date)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, MonthGroup{Label: key})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	return groups
}

// Tally accumulates a count and a cost sum.
type Tally struct {
	Count int             `json:"count"`
	Cost  decimal.Decimal `json:"cost"`
}

// GroupByDimension tallies items by key(item). Items with an empty key are
// counted under sentinel; absent costs add zero.
func GroupByDimension[T any](items []T, key func(T) string, cost func(T) decimal.NullDecimal, sentinel string) map[string]Tally {
	out := map[string]Tally{}
	for _, item := range items {
		k := key(item)
		if k == "" {
			k = sentinel
		}
		t := out[k]
		t.Count++
		t.Cost = t.Cost.Add(domain.CostOrZero(cost(item)))
		out[k] = t
	}
	return out
}

// Bucket is one ranked row of a dimension tally.
type Bucket struct {
	Key   string          `json:"key"`
	Count int             `json:"count"`
	Cost  decimal.Decimal `json:"cost"`
}

// Rank orders tallies by count descending, then key ascending.
func Rank(tallies map[string]Tally) []Bucket {
	out := make([]Bucket, 0, len(tallies))
	for k, t := range tallies {
		out = append(out, Bucket{Key: k, Count: t.Count, Cost: t.Cost})
	}
	slices.SortFunc(out, func(a, b Bucket) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	return out
}

// CountBy counts items per key(item).
func CountBy[T any](items []T, key func(T) string) map[string]int {
	out := map[string]int{}
	for _, item := range items {
		out[key(item)]++
	}
	return out
}
