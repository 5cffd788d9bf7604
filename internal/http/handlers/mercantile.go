package handlers

import (
	"context"
	"net/http"

	"iptrack/internal/domain"
)

func (a *App) ListMercantile(w http.ResponseWriter, r *http.Request) {
	items, err := a.Mercantile.List(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	views := viewAll(a.now(), items, viewMercantile)
	if err := embedAttachments(r.Context(), a, domain.KindMercantile, views); err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, views)
}

func (a *App) GetMercantile(w http.ResponseWriter, r *http.Request) {
	getRecord(a, w, r, a.Mercantile.Get, func(ctx context.Context, m *domain.MercantileRecord) (any, error) {
		return withAttachments(ctx, a, domain.KindMercantile, viewMercantile(a.now(), *m))
	})
}

func (a *App) CreateMercantile(w http.ResponseWriter, r *http.Request) {
	m := domain.NewMercantileRecord()
	a.saveRecord(w, r, http.StatusCreated, domain.KindMercantile, m,
		func(ctx context.Context) error { return a.Mercantile.Create(ctx, m) },
		func() string { return m.ID },
		func(ctx context.Context) (any, error) {
			return withAttachments(ctx, a, domain.KindMercantile, viewMercantile(a.now(), *m))
		})
}

func (a *App) UpdateMercantile(w http.ResponseWriter, r *http.Request) {
	m, ok := loadForUpdate(a, w, r, a.Mercantile.Get)
	if !ok {
		return
	}
	a.saveRecord(w, r, http.StatusOK, domain.KindMercantile, m,
		func(ctx context.Context) error { return a.Mercantile.Update(ctx, m) },
		func() string { return m.ID },
		func(ctx context.Context) (any, error) {
			return withAttachments(ctx, a, domain.KindMercantile, viewMercantile(a.now(), *m))
		})
}

func (a *App) DeleteMercantile(w http.ResponseWriter, r *http.Request) {
	a.deleteRecord(w, r, domain.KindMercantile, a.Mercantile.Delete)
}
