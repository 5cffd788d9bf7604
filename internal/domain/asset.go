package domain

import (
	"fmt"
	"strings"
	"time"
)

// Kind enumerates the tracked asset types.
type Kind string

const (
	KindDomain     Kind = "domain"
	KindTrademark  Kind = "trademark"
	KindTradeName  Kind = "tradename"
	KindMercantile Kind = "mercantile"
	KindWatchlist  Kind = "watchlist"
)

// Kinds lists every asset kind in display order.
var Kinds = []Kind{KindDomain, KindTrademark, KindTradeName, KindMercantile, KindWatchlist}

// ParseKind normalizes s into a known Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedKind, s)
}

// AcceptsAttachments reports whether files can be attached to assets of kind k.
func (k Kind) AcceptsAttachments() bool {
	switch k {
	case KindTrademark, KindTradeName, KindMercantile:
		return true
	}
	return false
}

// ParseDate accepts a calendar date (2006-01-02) or an RFC 3339 timestamp
// and returns midnight UTC of that calendar day.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a date", ErrInvalidInput, s)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func oneOf(field, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%w: %s must be one of %s", ErrInvalidInput, field, strings.Join(allowed, ", "))
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	return nil
}
