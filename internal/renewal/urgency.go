package renewal

import (
	"math"
	"time"
)

// Urgency is a coarse display bucket derived from days until renewal.
type Urgency string

const (
	UrgencyUnknown Urgency = "unknown"
	UrgencyOverdue Urgency = "overdue"
	UrgencyUrgent  Urgency = "urgent"
	UrgencyWarning Urgency = "warning"
	UrgencyOK      Urgency = "ok"
)

const (
	urgentWithinDays  = 30
	warningWithinDays = 90
)

// DaysUntil returns ceil((date - now) / 24h), or nil when date is nil.
// Rounding up means a renewal a few hours away reports 1 day, not 0.
func DaysUntil(now time.Time, date *time.Time) *int {
	if date == nil {
		return nil
	}
	days := int(math.Ceil(date.Sub(now).Hours() / 24))
	return &days
}

// Classify maps days until renewal onto an urgency bucket.
func Classify(days *int) Urgency {
	switch {
	case days == nil:
		return UrgencyUnknown
	case *days < 0:
		return UrgencyOverdue
	case *days < urgentWithinDays:
		return UrgencyUrgent
	case *days < warningWithinDays:
		return UrgencyWarning
	default:
		return UrgencyOK
	}
}

// Status pairs the day count with its urgency for a single date.
type Status struct {
	DaysUntil *int    `json:"days_until"`
	Urgency   Urgency `json:"urgency"`
}

// StatusOf computes the renewal status of date at now.
func StatusOf(now time.Time, date *time.Time) Status {
	days := DaysUntil(now, date)
	return Status{DaysUntil: days, Urgency: Classify(days)}
}
