package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Watchlist statuses.
const (
	WatchMonitoring = "monitoring"
	WatchAvailable  = "available"
	WatchOfferSent  = "offer_sent"
	WatchAcquired   = "acquired"
	WatchDiscarded  = "discarded"
)

// WatchlistItem is a third-party domain the organization wants to acquire.
// ExpiryDate is the current owner's expiry; EstimatedPrice the expected cost.
type WatchlistItem struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	TLD            string              `json:"tld"`
	DomainFull     string              `json:"domain_full"`
	CurrentOwner   *string             `json:"current_owner"`
	Registrar      *string             `json:"registrar"`
	ExpiryDate     *time.Time          `json:"expiry_date"`
	EstimatedPrice decimal.NullDecimal `json:"estimated_price"`
	Status         string              `json:"status"`
	Priority       string              `json:"priority"`
	Vertical       *string             `json:"vertical"`
	Notes          *string             `json:"notes"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

func NewWatchlistItem() *WatchlistItem {
	return &WatchlistItem{Status: WatchMonitoring, Priority: "medium"}
}

func (w *WatchlistItem) ApplyPatch(p Patch) error {
	return firstError(
		p.String("name", &w.Name),
		p.String("tld", &w.TLD),
		p.String("domain_full", &w.DomainFull),
		p.OptString("current_owner", &w.CurrentOwner),
		p.OptString("registrar", &w.Registrar),
		p.OptDate("expiry_date", &w.ExpiryDate),
		p.OptDecimal("estimated_price", &w.EstimatedPrice),
		p.Text("status", &w.Status, WatchMonitoring),
		p.Text("priority", &w.Priority, "medium"),
		p.OptString("vertical", &w.Vertical),
		p.OptString("notes", &w.Notes),
	)
}

func (w *WatchlistItem) Validate() error {
	return firstError(
		required("name", w.Name),
		required("tld", w.TLD),
		required("domain_full", w.DomainFull),
		oneOf("status", w.Status, WatchMonitoring, WatchAvailable, WatchOfferSent, WatchAcquired, WatchDiscarded),
		oneOf("priority", w.Priority, "low", "medium", "high"),
		nonNegative("estimated_price", w.EstimatedPrice),
	)
}
