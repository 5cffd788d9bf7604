package handlers

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"iptrack/internal/domain"
)

// ListRefData returns the lookup lists used by asset forms.
func (a *App) ListRefData(w http.ResponseWriter, r *http.Request) {
	var (
		verticals []domain.Vertical
		countries []domain.Country
		entities  []domain.Entity
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) { verticals, err = a.RefData.ListVerticals(ctx); return })
	g.Go(func() (err error) { countries, err = a.RefData.ListCountries(ctx); return })
	g.Go(func() (err error) { entities, err = a.RefData.ListEntities(ctx); return })
	if err := g.Wait(); err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"verticals": verticals,
		"countries": countries,
		"entities":  entities,
	})
}

func (a *App) ListEntities(w http.ResponseWriter, r *http.Request) {
	items, err := a.RefData.ListEntities(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, items)
}

func (a *App) CreateEntity(w http.ResponseWriter, r *http.Request) {
	e := &domain.Entity{}
	if err := decodeInto(w, r, e); err != nil {
		a.fail(w, r, err)
		return
	}
	if err := a.RefData.CreateEntity(r.Context(), e); err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, e)
}
