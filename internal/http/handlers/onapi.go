package handlers

import (
	"context"
	"net/http"

	"golang.org/x/sync/errgroup"

	"iptrack/internal/domain"
)

// ListONAPI returns trademarks and trade names together, as registered with
// the national IP office.
func (a *App) ListONAPI(w http.ResponseWriter, r *http.Request) {
	var (
		marks []domain.Trademark
		names []domain.TradeName
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) { marks, err = a.Trademarks.List(ctx); return })
	g.Go(func() (err error) { names, err = a.TradeNames.List(ctx); return })
	if err := g.Wait(); err != nil {
		a.fail(w, r, err)
		return
	}
	now := a.now()
	markViews := viewAll(now, marks, viewTrademark)
	nameViews := viewAll(now, names, viewTradeName)
	g, ctx = errgroup.WithContext(r.Context())
	g.Go(func() error { return embedAttachments(ctx, a, domain.KindTrademark, markViews) })
	g.Go(func() error { return embedAttachments(ctx, a, domain.KindTradeName, nameViews) })
	if err := g.Wait(); err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"trademarks": markViews,
		"tradeNames": nameViews,
	})
}

func (a *App) ListTrademarks(w http.ResponseWriter, r *http.Request) {
	items, err := a.Trademarks.List(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	views := viewAll(a.now(), items, viewTrademark)
	if err := embedAttachments(r.Context(), a, domain.KindTrademark, views); err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, views)
}

func (a *App) GetTrademark(w http.ResponseWriter, r *http.Request) {
	getRecord(a, w, r, a.Trademarks.Get, func(ctx context.Context, t *domain.Trademark) (any, error) {
		return withAttachments(ctx, a, domain.KindTrademark, viewTrademark(a.now(), *t))
	})
}

func (a *App) CreateTrademark(w http.ResponseWriter, r *http.Request) {
	t := domain.NewTrademark()
	a.saveRecord(w, r, http.StatusCreated, domain.KindTrademark, t,
		func(ctx context.Context) error { return a.Trademarks.Create(ctx, t) },
		func() string { return t.ID },
		func(ctx context.Context) (any, error) {
			return withAttachments(ctx, a, domain.KindTrademark, viewTrademark(a.now(), *t))
		})
}

func (a *App) UpdateTrademark(w http.ResponseWriter, r *http.Request) {
	t, ok := loadForUpdate(a, w, r, a.Trademarks.Get)
	if !ok {
		return
	}
	a.saveRecord(w, r, http.StatusOK, domain.KindTrademark, t,
		func(ctx context.Context) error { return a.Trademarks.Update(ctx, t) },
		func() string { return t.ID },
		func(ctx context.Context) (any, error) {
			return withAttachments(ctx, a, domain.KindTrademark, viewTrademark(a.now(), *t))
		})
}

func (a *App) DeleteTrademark(w http.ResponseWriter, r *http.Request) {
	a.deleteRecord(w, r, domain.KindTrademark, a.Trademarks.Delete)
}

func (a *App) ListTradeNames(w http.ResponseWriter, r *http.Request) {
	items, err := a.TradeNames.List(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	views := viewAll(a.now(), items, viewTradeName)
	if err := embedAttachments(r.Context(), a, domain.KindTradeName, views); err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, views)
}

func (a *App) GetTradeName(w http.ResponseWriter, r *http.Request) {
	getRecord(a, w, r, a.TradeNames.Get, func(ctx context.Context, t *domain.TradeName) (any, error) {
		return withAttachments(ctx, a, domain.KindTradeName, viewTradeName(a.now(), *t))
	})
}

func (a *App) CreateTradeName(w http.ResponseWriter, r *http.Request) {
	t := domain.NewTradeName()
	a.saveRecord(w, r, http.StatusCreated, domain.KindTradeName, t,
		func(ctx context.Context) error { return a.TradeNames.Create(ctx, t) },
		func() string { return t.ID },
		func(ctx context.Context) (any, error) {
			return withAttachments(ctx, a, domain.KindTradeName, viewTradeName(a.now(), *t))
		})
}

func (a *App) UpdateTradeName(w http.ResponseWriter, r *http.Request) {
	t, ok := loadForUpdate(a, w, r, a.TradeNames.Get)
	if !ok {
		return
	}
	a.saveRecord(w, r, http.StatusOK, domain.KindTradeName, t,
		func(ctx context.Context) error { return a.TradeNames.Update(ctx, t) },
		func() string { return t.ID },
		func(ctx context.Context) (any, error) {
			return withAttachments(ctx, a, domain.KindTradeName, viewTradeName(a.now(), *t))
		})
}

func (a *App) DeleteTradeName(w http.ResponseWriter, r *http.Request) {
	a.deleteRecord(w, r, domain.KindTradeName, a.TradeNames.Delete)
}
