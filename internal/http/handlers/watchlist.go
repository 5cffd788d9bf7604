package handlers

import (
	"context"
	"net/http"

	"iptrack/internal/domain"
)

// ListWatchlist returns watched domains, soonest expiry first.
func (a *App) ListWatchlist(w http.ResponseWriter, r *http.Request) {
	items, err := a.Watchlist.List(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, viewAll(a.now(), items, viewWatchlist))
}

func (a *App) GetWatchlistItem(w http.ResponseWriter, r *http.Request) {
	getRecord(a, w, r, a.Watchlist.Get, func(_ context.Context, item *domain.WatchlistItem) (any, error) {
		return viewWatchlist(a.now(), *item), nil
	})
}

func (a *App) CreateWatchlistItem(w http.ResponseWriter, r *http.Request) {
	item := domain.NewWatchlistItem()
	a.saveRecord(w, r, http.StatusCreated, domain.KindWatchlist, item,
		func(ctx context.Context) error { return a.Watchlist.Create(ctx, item) },
		func() string { return item.ID },
		func(context.Context) (any, error) { return viewWatchlist(a.now(), *item), nil })
}

func (a *App) UpdateWatchlistItem(w http.ResponseWriter, r *http.Request) {
	item, ok := loadForUpdate(a, w, r, a.Watchlist.Get)
	if !ok {
		return
	}
	a.saveRecord(w, r, http.StatusOK, domain.KindWatchlist, item,
		func(ctx context.Context) error { return a.Watchlist.Update(ctx, item) },
		func() string { return item.ID },
		func(context.Context) (any, error) { return viewWatchlist(a.now(), *item), nil })
}

func (a *App) DeleteWatchlistItem(w http.ResponseWriter, r *http.Request) {
	a.deleteRecord(w, r, domain.KindWatchlist, a.Watchlist.Delete)
}
