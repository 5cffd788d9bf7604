package domain

import "context"

// DomainFilter narrows domain listings. Zero values disable a predicate and a
// zero Limit returns every match.
type DomainFilter struct {
	Search     string
	VerticalID string
	CountryID  string
	Status     string
	Limit      int
	Offset     int
}

// DomainRepository persists domains.
type DomainRepository interface {
	List(ctx context.Context, filter DomainFilter) ([]Domain, error)
	Count(ctx context.Context, filter DomainFilter) (int, error)
	// ListRenewing returns domains with a renewal date, soonest first.
	ListRenewing(ctx context.Context, limit int) ([]Domain, error)
	Get(ctx context.Context, id string) (*Domain, error)
	Create(ctx context.Context, d *Domain) error
	Update(ctx context.Context, d *Domain) error
	Delete(ctx context.Context, id string) error
}

// TrademarkRepository persists trademarks.
type TrademarkRepository interface {
	List(ctx context.Context) ([]Trademark, error)
	ListRenewing(ctx context.Context, limit int) ([]Trademark, error)
	Get(ctx context.Context, id string) (*Trademark, error)
	Create(ctx context.Context, t *Trademark) error
	Update(ctx context.Context, t *Trademark) error
	Delete(ctx context.Context, id string) error
}

// TradeNameRepository persists trade names.
type TradeNameRepository interface {
	List(ctx context.Context) ([]TradeName, error)
	ListRenewing(ctx context.Context, limit int) ([]TradeName, error)
	Get(ctx context.Context, id string) (*TradeName, error)
	Create(ctx context.Context, t *TradeName) error
	Update(ctx context.Context, t *TradeName) error
	Delete(ctx context.Context, id string) error
}

// MercantileRepository persists mercantile records.
type MercantileRepository interface {
	List(ctx context.Context) ([]MercantileRecord, error)
	ListRenewing(ctx context.Context, limit int) ([]MercantileRecord, error)
	Get(ctx context.Context, id string) (*MercantileRecord, error)
	Create(ctx context.Context, m *MercantileRecord) error
	Update(ctx context.Context, m *MercantileRecord) error
	Delete(ctx context.Context, id string) error
}

// WatchlistRepository persists the acquisition watchlist.
type WatchlistRepository interface {
	// List returns items by expiry date, undated items last.
	List(ctx context.Context) ([]WatchlistItem, error)
	Get(ctx context.Context, id string) (*WatchlistItem, error)
	Create(ctx context.Context, w *WatchlistItem) error
	Update(ctx context.Context, w *WatchlistItem) error
	Delete(ctx context.Context, id string) error
}

// RefDataRepository serves verticals, countries and owning entities.
type RefDataRepository interface {
	ListVerticals(ctx context.Context) ([]Vertical, error)
	ListCountries(ctx context.Context) ([]Country, error)
	ListEntities(ctx context.Context) ([]Entity, error)
	CreateEntity(ctx context.Context, e *Entity) error
	UpsertVertical(ctx context.Context, v Vertical) error
	UpsertCountry(ctx context.Context, c Country) error
}

// AttachmentRepository persists attachment metadata.
type AttachmentRepository interface {
	Create(ctx context.Context, a *Attachment) error
	Get(ctx context.Context, id string) (*Attachment, error)
	ListByAsset(ctx context.Context, kind Kind, assetID string) ([]Attachment, error)
	// ListByAssets returns the attachments of every listed asset of one kind.
	ListByAssets(ctx context.Context, kind Kind, assetIDs []string) ([]Attachment, error)
	Delete(ctx context.Context, id string) error
}

// AssetCounts holds per-kind record counts for the dashboard.
type AssetCounts struct {
	Domains       int `json:"domains"`
	ActiveDomains int `json:"active_domains"`
	ParkedDomains int `json:"parked_domains"`
	Trademarks    int `json:"trademarks"`
	TradeNames    int `json:"trade_names"`
	Mercantile    int `json:"mercantile"`
	Watchlist     int `json:"watchlist"`
}

// Total counts the owned assets; watchlist items are not owned.
func (c AssetCounts) Total() int {
	return c.Domains + c.Trademarks + c.TradeNames + c.Mercantile
}

// StatsRepository reads aggregate counters.
type StatsRepository interface {
	Counts(ctx context.Context) (AssetCounts, error)
}
