package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"iptrack/internal/domain"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

// domainFilter reads search, vertical, country, status, page and limit.
func domainFilter(r *http.Request) (domain.DomainFilter, int, error) {
	q := r.URL.Query()
	f := domain.DomainFilter{
		Search: strings.TrimSpace(q.Get("search")),
		Status: strings.TrimSpace(q.Get("status")),
		Limit:  defaultPageSize,
	}
	var err error
	if v := q.Get("vertical"); v != "" {
		if f.VerticalID, err = parseUUID("vertical", v); err != nil {
			return f, 0, err
		}
	}
	if v := q.Get("country"); v != "" {
		if f.CountryID, err = parseUUID("country", v); err != nil {
			return f, 0, err
		}
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return f, 0, invalidf("limit must be a positive integer")
		}
		f.Limit = min(n, maxPageSize)
	}
	page := 1
	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return f, 0, invalidf("page must be a positive integer")
		}
		page = n
	}
	f.Offset = (page - 1) * f.Limit
	return f, page, nil
}

// ListDomains returns one page of domains plus paging totals.
func (a *App) ListDomains(w http.ResponseWriter, r *http.Request) {
	f, page, err := domainFilter(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	total, err := a.Domains.Count(r.Context(), f)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	items, err := a.Domains.List(r.Context(), f)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	pages := (total + f.Limit - 1) / f.Limit
	a.json(w, http.StatusOK, map[string]any{
		"domains": viewAll(a.now(), items, viewDomain),
		"total":   total,
		"page":    page,
		"pages":   pages,
	})
}

func (a *App) GetDomain(w http.ResponseWriter, r *http.Request) {
	getRecord(a, w, r, a.Domains.Get, func(_ context.Context, d *domain.Domain) (any, error) {
		return viewDomain(a.now(), *d), nil
	})
}

func (a *App) CreateDomain(w http.ResponseWriter, r *http.Request) {
	d := domain.NewDomain()
	a.saveRecord(w, r, http.StatusCreated, domain.KindDomain, d,
		func(ctx context.Context) error { return a.Domains.Create(ctx, d) },
		func() string { return d.ID },
		func(context.Context) (any, error) { return viewDomain(a.now(), *d), nil })
}

func (a *App) UpdateDomain(w http.ResponseWriter, r *http.Request) {
	d, ok := loadForUpdate(a, w, r, a.Domains.Get)
	if !ok {
		return
	}
	a.saveRecord(w, r, http.StatusOK, domain.KindDomain, d,
		func(ctx context.Context) error { return a.Domains.Update(ctx, d) },
		func() string { return d.ID },
		func(context.Context) (any, error) { return viewDomain(a.now(), *d), nil })
}

func (a *App) DeleteDomain(w http.ResponseWriter, r *http.Request) {
	a.deleteRecord(w, r, domain.KindDomain, a.Domains.Delete)
}
