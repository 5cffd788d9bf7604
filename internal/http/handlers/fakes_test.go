package handlers_test

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"iptrack/internal/domain"
	"iptrack/internal/events"
	"iptrack/internal/http/handlers"
	"iptrack/internal/storage"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// table is a tiny in-memory keyed store shared by the fake repositories.
type table[T any] struct {
	mu    sync.Mutex
	rows  map[string]T
	order []string
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: map[string]T{}}
}

func (t *table[T]) put(id string, v T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		t.order = append(t.order, id)
	}
	t.rows[id] = v
}

func (t *table[T]) get(id string) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.rows[id]
	if !ok {
		return v, fmt.Errorf("fake: %w", domain.ErrNotFound)
	}
	return v, nil
}

func (t *table[T]) all() []T {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out
}

func (t *table[T]) del(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return fmt.Errorf("fake: %w", domain.ErrNotFound)
	}
	delete(t.rows, id)
	t.order = slices.DeleteFunc(t.order, func(s string) bool { return s == id })
	return nil
}

// renewing keeps dated items sorted by date, limited when limit > 0.
func renewing[T any](items []T, date func(T) *time.Time, limit int) []T {
	out := slices.DeleteFunc(items, func(v T) bool { return date(v) == nil })
	slices.SortStableFunc(out, func(a, b T) int { return date(a).Compare(*date(b)) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

type fakeDomains struct{ t *table[domain.Domain] }

func (f fakeDomains) match(fl domain.DomainFilter) []domain.Domain {
	var out []domain.Domain
	for _, d := range f.t.all() {
		if fl.Search != "" && !strings.Contains(strings.ToLower(d.DomainFull), strings.ToLower(fl.Search)) {
			continue
		}
		if fl.Status != "" && d.Status != fl.Status {
			continue
		}
		if fl.VerticalID != "" && (d.VerticalID == nil || *d.VerticalID != fl.VerticalID) {
			continue
		}
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, b domain.Domain) int { return cmp.Compare(a.DomainFull, b.DomainFull) })
	return out
}

func (f fakeDomains) List(_ context.Context, fl domain.DomainFilter) ([]domain.Domain, error) {
	out := f.match(fl)
	if fl.Offset >= len(out) {
		return []domain.Domain{}, nil
	}
	out = out[fl.Offset:]
	if fl.Limit > 0 && len(out) > fl.Limit {
		out = out[:fl.Limit]
	}
	return out, nil
}

func (f fakeDomains) Count(_ context.Context, fl domain.DomainFilter) (int, error) {
	return len(f.match(fl)), nil
}

func (f fakeDomains) ListRenewing(_ context.Context, limit int) ([]domain.Domain, error) {
	return renewing(f.t.all(), func(d domain.Domain) *time.Time { return d.RenewalDate }, limit), nil
}

func (f fakeDomains) Get(_ context.Context, id string) (*domain.Domain, error) {
	d, err := f.t.get(id)
	return &d, err
}

func (f fakeDomains) Create(_ context.Context, d *domain.Domain) error {
	for _, existing := range f.t.all() {
		if existing.DomainFull == d.DomainFull {
			return fmt.Errorf("fake: %w", domain.ErrConflict)
		}
	}
	d.ID, d.CreatedAt, d.UpdatedAt = uuid.NewString(), fixedNow, fixedNow
	f.t.put(d.ID, *d)
	return nil
}

func (f fakeDomains) Update(_ context.Context, d *domain.Domain) error {
	if _, err := f.t.get(d.ID); err != nil {
		return err
	}
	f.t.put(d.ID, *d)
	return nil
}

func (f fakeDomains) Delete(_ context.Context, id string) error { return f.t.del(id) }

// fakeAssets serves the kinds whose repositories share one method set.
type fakeAssets[T any] struct {
	t      *table[T]
	date   func(T) *time.Time
	id     func(*T) *string
	onDrop func(id string)
}

func (f fakeAssets[T]) List(context.Context) ([]T, error) { return f.t.all(), nil }

func (f fakeAssets[T]) ListRenewing(_ context.Context, limit int) ([]T, error) {
	return renewing(f.t.all(), f.date, limit), nil
}

func (f fakeAssets[T]) Get(_ context.Context, id string) (*T, error) {
	v, err := f.t.get(id)
	return &v, err
}

func (f fakeAssets[T]) Create(_ context.Context, v *T) error {
	*f.id(v) = uuid.NewString()
	f.t.put(*f.id(v), *v)
	return nil
}

func (f fakeAssets[T]) Update(_ context.Context, v *T) error {
	if _, err := f.t.get(*f.id(v)); err != nil {
		return err
	}
	f.t.put(*f.id(v), *v)
	return nil
}

func (f fakeAssets[T]) Delete(_ context.Context, id string) error {
	if err := f.t.del(id); err != nil {
		return err
	}
	if f.onDrop != nil {
		f.onDrop(id)
	}
	return nil
}

type fakeRefData struct {
	verticals []domain.Vertical
	countries []domain.Country
	entities  *table[domain.Entity]
}

func (f *fakeRefData) ListVerticals(context.Context) ([]domain.Vertical, error) {
	return f.verticals, nil
}
func (f *fakeRefData) ListCountries(context.Context) ([]domain.Country, error) {
	return f.countries, nil
}
func (f *fakeRefData) ListEntities(context.Context) ([]domain.Entity, error) {
	return f.entities.all(), nil
}

func (f *fakeRefData) CreateEntity(_ context.Context, e *domain.Entity) error {
	e.ID = uuid.NewString()
	f.entities.put(e.ID, *e)
	return nil
}

func (f *fakeRefData) UpsertVertical(_ context.Context, v domain.Vertical) error {
	f.verticals = append(f.verticals, v)
	return nil
}

func (f *fakeRefData) UpsertCountry(_ context.Context, c domain.Country) error {
	f.countries = append(f.countries, c)
	return nil
}

type fakeAttachments struct {
	t       *table[domain.Attachment]
	batches *atomic.Int32
}

func (f fakeAttachments) Create(_ context.Context, a *domain.Attachment) error {
	if !a.AssetKind.AcceptsAttachments() {
		return domain.ErrUnsupportedKind
	}
	a.ID, a.CreatedAt = uuid.NewString(), fixedNow
	f.t.put(a.ID, *a)
	return nil
}

func (f fakeAttachments) Get(_ context.Context, id string) (*domain.Attachment, error) {
	a, err := f.t.get(id)
	return &a, err
}

func (f fakeAttachments) ListByAsset(_ context.Context, kind domain.Kind, assetID string) ([]domain.Attachment, error) {
	out := []domain.Attachment{}
	for _, a := range f.t.all() {
		if a.AssetKind == kind && a.AssetID == assetID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f fakeAttachments) ListByAssets(_ context.Context, kind domain.Kind, assetIDs []string) ([]domain.Attachment, error) {
	f.batches.Add(1)
	want := map[string]bool{}
	for _, id := range assetIDs {
		want[id] = true
	}
	out := []domain.Attachment{}
	for _, a := range f.t.all() {
		if a.AssetKind == kind && want[a.AssetID] {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f fakeAttachments) Delete(_ context.Context, id string) error { return f.t.del(id) }

// dropOwnedBy mimics the cascading foreign keys.
func (f fakeAttachments) dropOwnedBy(assetID string) {
	for _, a := range f.t.all() {
		if a.AssetID == assetID {
			_ = f.t.del(a.ID)
		}
	}
}

type fakeStats struct{ app *handlers.App }

func (f fakeStats) Counts(ctx context.Context) (domain.AssetCounts, error) {
	var c domain.AssetCounts
	ds, _ := f.app.Domains.List(ctx, domain.DomainFilter{})
	c.Domains = len(ds)
	for _, d := range ds {
		switch d.Status {
		case domain.DomainActive:
			c.ActiveDomains++
		case domain.DomainParked:
			c.ParkedDomains++
		}
	}
	tm, _ := f.app.Trademarks.List(ctx)
	tn, _ := f.app.TradeNames.List(ctx)
	mr, _ := f.app.Mercantile.List(ctx)
	wl, _ := f.app.Watchlist.List(ctx)
	c.Trademarks, c.TradeNames, c.Mercantile, c.Watchlist = len(tm), len(tn), len(mr), len(wl)
	return c, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, ev events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, ev := range p.events {
		out = append(out, ev.Type+":"+string(ev.Kind))
	}
	return out
}

type testEnv struct {
	app         *handlers.App
	domains     *table[domain.Domain]
	trademarks  *table[domain.Trademark]
	tradeNames  *table[domain.TradeName]
	mercantile  *table[domain.MercantileRecord]
	watchlist   *table[domain.WatchlistItem]
	attachments *table[domain.Attachment]
	batches     *atomic.Int32
	store       *storage.FileStore
	events      *recordingPublisher
}

func newTestEnv(storeDir string) *testEnv {
	env := &testEnv{
		domains:     newTable[domain.Domain](),
		trademarks:  newTable[domain.Trademark](),
		tradeNames:  newTable[domain.TradeName](),
		mercantile:  newTable[domain.MercantileRecord](),
		watchlist:   newTable[domain.WatchlistItem](),
		attachments: newTable[domain.Attachment](),
		batches:     &atomic.Int32{},
		events:      &recordingPublisher{},
	}
	atts := fakeAttachments{t: env.attachments, batches: env.batches}
	store, err := storage.NewFileStore(storeDir)
	if err != nil {
		panic(err)
	}
	env.store = store

	env.app = &handlers.App{
		Domains: fakeDomains{t: env.domains},
		Trademarks: fakeAssets[domain.Trademark]{t: env.trademarks,
			date:   func(v domain.Trademark) *time.Time { return v.ExpiryDate },
			id:     func(v *domain.Trademark) *string { return &v.ID },
			onDrop: atts.dropOwnedBy},
		TradeNames: fakeAssets[domain.TradeName]{t: env.tradeNames,
			date:   func(v domain.TradeName) *time.Time { return v.ExpiryDate },
			id:     func(v *domain.TradeName) *string { return &v.ID },
			onDrop: atts.dropOwnedBy},
		Mercantile: fakeAssets[domain.MercantileRecord]{t: env.mercantile,
			date:   func(v domain.MercantileRecord) *time.Time { return v.RenewalDate },
			id:     func(v *domain.MercantileRecord) *string { return &v.ID },
			onDrop: atts.dropOwnedBy},
		Watchlist: fakeAssets[domain.WatchlistItem]{t: env.watchlist,
			date: func(v domain.WatchlistItem) *time.Time { return v.ExpiryDate },
			id:   func(v *domain.WatchlistItem) *string { return &v.ID }},
		RefData: &fakeRefData{
			verticals: []domain.Vertical{{ID: uuid.NewString(), Slug: "pets", Name: "Pets"}},
			countries: []domain.Country{{ID: uuid.NewString(), Code: "DO", Name: "República Dominicana"}},
			entities:  newTable[domain.Entity](),
		},
		Attachments:    atts,
		Store:          store,
		Events:         env.events,
		Logger:         zerolog.Nop(),
		Now:            func() time.Time { return fixedNow },
		UploadPrefix:   "/uploads",
		MaxUploadBytes: 1 << 20,
	}
	env.app.Stats = fakeStats{app: env.app}
	return env
}
