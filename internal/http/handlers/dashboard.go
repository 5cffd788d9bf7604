package handlers

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"iptrack/internal/domain"
	"iptrack/internal/i18n"
	"iptrack/internal/renewal"
)

// Dashboard fetch sizes: domains dominate the portfolio, so more of them are
// pulled before the merged list is cut.
const (
	dashboardDomainFetch = 100
	dashboardOtherFetch  = 10
	dashboardUpcoming    = 15
)

// localize swaps kind labels for the request locale.
func localize(locale string, entries []renewal.Entry) []renewal.Entry {
	for i := range entries {
		entries[i].Label = i18n.T(locale, entries[i].Label)
	}
	return entries
}

// Dashboard returns the headline counters and the next renewals.
func (a *App) Dashboard(w http.ResponseWriter, r *http.Request) {
	var (
		counts     domain.AssetCounts
		allDomains []domain.Domain
		domains    []domain.Domain
		marks      []domain.Trademark
		names      []domain.TradeName
		mercantile []domain.MercantileRecord
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) { counts, err = a.Stats.Counts(ctx); return })
	g.Go(func() (err error) { allDomains, err = a.Domains.List(ctx, domain.DomainFilter{}); return })
	g.Go(func() (err error) { domains, err = a.Domains.ListRenewing(ctx, dashboardDomainFetch); return })
	g.Go(func() (err error) { marks, err = a.Trademarks.ListRenewing(ctx, dashboardOtherFetch); return })
	g.Go(func() (err error) { names, err = a.TradeNames.ListRenewing(ctx, dashboardOtherFetch); return })
	g.Go(func() (err error) { mercantile, err = a.Mercantile.ListRenewing(ctx, dashboardOtherFetch); return })
	if err := g.Wait(); err != nil {
		a.fail(w, r, err)
		return
	}

	loc := a.locale(r)
	upcoming := renewal.BuildUpcoming(a.now(), dashboardUpcoming,
		localize(loc, renewal.FromDomains(domains)),
		localize(loc, renewal.FromTrademarks(marks)),
		localize(loc, renewal.FromTradeNames(names)),
		localize(loc, renewal.FromMercantile(mercantile)),
	)
	a.json(w, http.StatusOK, map[string]any{
		"counts":        counts,
		"total_assets":  counts.Total(),
		"domain_cost":   renewal.TotalCost(allDomains, renewal.DomainCost),
		"renewals":      upcoming.Items,
		"urgent_count":  upcoming.UrgentCount,
		"warning_count": upcoming.WarningCount,
	})
}

// Calendar returns every dated renewal grouped by month and urgency.
func (a *App) Calendar(w http.ResponseWriter, r *http.Request) {
	var (
		domains    []domain.Domain
		marks      []domain.Trademark
		names      []domain.TradeName
		mercantile []domain.MercantileRecord
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) { domains, err = a.Domains.ListRenewing(ctx, 0); return })
	g.Go(func() (err error) { marks, err = a.Trademarks.ListRenewing(ctx, 0); return })
	g.Go(func() (err error) { names, err = a.TradeNames.ListRenewing(ctx, 0); return })
	g.Go(func() (err error) { mercantile, err = a.Mercantile.ListRenewing(ctx, 0); return })
	if err := g.Wait(); err != nil {
		a.fail(w, r, err)
		return
	}

	loc := a.locale(r)
	cal := renewal.BuildCalendar(a.now(), i18n.MonthLabel(loc),
		localize(loc, renewal.FromDomains(domains)),
		localize(loc, renewal.FromTrademarks(marks)),
		localize(loc, renewal.FromTradeNames(names)),
		localize(loc, renewal.FromMercantile(mercantile)),
	)
	a.json(w, http.StatusOK, cal)
}

// Analytics returns portfolio breakdowns and the cost summary.
func (a *App) Analytics(w http.ResponseWriter, r *http.Request) {
	var (
		domains    []domain.Domain
		marks      []domain.Trademark
		names      []domain.TradeName
		mercantile []domain.MercantileRecord
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) { domains, err = a.Domains.List(ctx, domain.DomainFilter{}); return })
	g.Go(func() (err error) { marks, err = a.Trademarks.List(ctx); return })
	g.Go(func() (err error) { names, err = a.TradeNames.List(ctx); return })
	g.Go(func() (err error) { mercantile, err = a.Mercantile.List(ctx); return })
	if err := g.Wait(); err != nil {
		a.fail(w, r, err)
		return
	}

	loc := a.locale(r)
	na := i18n.T(loc, renewal.NotAvail)
	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}
	tally := func(key func(domain.Domain) string, sentinel string) []renewal.Bucket {
		return renewal.Rank(renewal.GroupByDimension(domains, key, renewal.DomainCost, sentinel))
	}

	a.json(w, http.StatusOK, map[string]any{
		"total_domains": len(domains),
		"by_vertical":   tally(func(d domain.Domain) string { return deref(d.VerticalName) }, i18n.T(loc, renewal.NoVertical)),
		"by_country":    tally(func(d domain.Domain) string { return deref(d.CountryCode) }, na),
		"by_tld":        tally(func(d domain.Domain) string { return d.TLD }, na),
		"by_status":     tally(func(d domain.Domain) string { return d.Status }, na),
		"costs":         renewal.SummarizeAssets(domains, marks, names, mercantile),
	})
}
