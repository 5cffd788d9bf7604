package renewal

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is an entry annotated with its renewal status.
type Item struct {
	Entry
	Status
}

// Annotate computes the status of every entry at now.
func Annotate(now time.Time, entries []Entry) []Item {
	out := make([]Item, 0, len(entries))
	for _, e := range entries {
		out = append(out, Item{Entry: e, Status: StatusOf(now, e.Date)})
	}
	return out
}

// Calendar is the merged renewal timeline split into urgency lists.
type Calendar struct {
	Items     []Item          `json:"renewals"`
	Months    []MonthGroup    `json:"months"`
	Expired   []Item          `json:"expired"`
	Urgent    []Item          `json:"urgent"`
	Warning   []Item          `json:"warning"`
	TotalCost decimal.Decimal `json:"total_cost"`
}

// BuildCalendar merges the streams and derives the calendar at now. Expired
// holds elapsed renewals, Urgent those due within 30 days and Warning those
// due within 90.
func BuildCalendar(now time.Time, label func(time.Time) string, streams ...[]Entry) Calendar {
	items := Annotate(now, Merge(streams...))
	cal := Calendar{
		Items:     items,
		Months:    GroupByMonth(items, label),
		Expired:   []Item{},
		Urgent:    []Item{},
		Warning:   []Item{},
		TotalCost: TotalCost(items, func(it Item) decimal.NullDecimal { return it.Cost }),
	}
	for _, it := range items {
		switch it.Urgency {
		case UrgencyOverdue:
			cal.Expired = append(cal.Expired, it)
		case UrgencyUrgent:
			cal.Urgent = append(cal.Urgent, it)
		case UrgencyWarning:
			cal.Warning = append(cal.Warning, it)
		}
	}
	return cal
}

// Upcoming is the dashboard's short list of next renewals.
type Upcoming struct {
	Items        []Item `json:"renewals"`
	UrgentCount  int    `json:"urgent_count"`
	WarningCount int    `json:"warning_count"`
}

// BuildUpcoming keeps the first limit merged entries. UrgentCount includes
// overdue renewals; both counts cover only the kept entries.
func BuildUpcoming(now time.Time, limit int, streams ...[]Entry) Upcoming {
	merged := Merge(streams...)
	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	up := Upcoming{Items: Annotate(now, merged)}
	for _, it := range up.Items {
		switch it.Urgency {
		case UrgencyOverdue, UrgencyUrgent:
			up.UrgentCount++
		case UrgencyWarning:
			up.WarningCount++
		}
	}
	return up
}
