package handlers

import (
	"context"
	"time"

	"iptrack/internal/domain"
	"iptrack/internal/renewal"
)

// Views decorate stored records with their renewal status at request time.

type domainView struct {
	domain.Domain
	DaysUntil *int            `json:"days_until"`
	Urgency   renewal.Urgency `json:"urgency"`
}

type trademarkView struct {
	domain.Trademark
	DaysUntil   *int                `json:"days_until"`
	Urgency     renewal.Urgency     `json:"urgency"`
	Attachments []domain.Attachment `json:"attachments"`
}

type tradeNameView struct {
	domain.TradeName
	DaysUntil   *int                `json:"days_until"`
	Urgency     renewal.Urgency     `json:"urgency"`
	Attachments []domain.Attachment `json:"attachments"`
}

type mercantileView struct {
	domain.MercantileRecord
	DaysUntil   *int                `json:"days_until"`
	Urgency     renewal.Urgency     `json:"urgency"`
	Attachments []domain.Attachment `json:"attachments"`
}

type watchlistView struct {
	domain.WatchlistItem
	DaysUntil *int            `json:"days_until"`
	Urgency   renewal.Urgency `json:"urgency"`
}

func viewDomain(now time.Time, d domain.Domain) domainView {
	st := renewal.StatusOf(now, d.RenewalDate)
	return domainView{Domain: d, DaysUntil: st.DaysUntil, Urgency: st.Urgency}
}

func viewTrademark(now time.Time, t domain.Trademark) trademarkView {
	st := renewal.StatusOf(now, t.ExpiryDate)
	return trademarkView{Trademark: t, DaysUntil: st.DaysUntil, Urgency: st.Urgency, Attachments: []domain.Attachment{}}
}

func viewTradeName(now time.Time, t domain.TradeName) tradeNameView {
	st := renewal.StatusOf(now, t.ExpiryDate)
	return tradeNameView{TradeName: t, DaysUntil: st.DaysUntil, Urgency: st.Urgency, Attachments: []domain.Attachment{}}
}

func viewMercantile(now time.Time, m domain.MercantileRecord) mercantileView {
	st := renewal.StatusOf(now, m.RenewalDate)
	return mercantileView{MercantileRecord: m, DaysUntil: st.DaysUntil, Urgency: st.Urgency, Attachments: []domain.Attachment{}}
}

func viewWatchlist(now time.Time, w domain.WatchlistItem) watchlistView {
	st := renewal.StatusOf(now, w.ExpiryDate)
	return watchlistView{WatchlistItem: w, DaysUntil: st.DaysUntil, Urgency: st.Urgency}
}

// viewAll maps items through fn at a single instant.
func viewAll[T, V any](now time.Time, items []T, fn func(time.Time, T) V) []V {
	out := make([]V, 0, len(items))
	for _, item := range items {
		out = append(out, fn(now, item))
	}
	return out
}

// attachable is implemented by views of assets that carry files.
type attachable interface {
	assetID() string
	attach(files []domain.Attachment)
}

func (v *trademarkView) assetID() string                   { return v.ID }
func (v *trademarkView) attach(files []domain.Attachment)  { v.Attachments = files }
func (v *tradeNameView) assetID() string                   { return v.ID }
func (v *tradeNameView) attach(files []domain.Attachment)  { v.Attachments = files }
func (v *mercantileView) assetID() string                  { return v.ID }
func (v *mercantileView) attach(files []domain.Attachment) { v.Attachments = files }

// embedAttachments loads the files of every view with one query and hands
// each view its own.
func embedAttachments[V any, P interface {
	*V
	attachable
}](ctx context.Context, a *App, kind domain.Kind, views []V) error {
	if a.Attachments == nil || len(views) == 0 {
		return nil
	}
	ids := make([]string, len(views))
	for i := range views {
		ids[i] = P(&views[i]).assetID()
	}
	files, err := a.Attachments.ListByAssets(ctx, kind, ids)
	if err != nil {
		return err
	}
	byAsset := make(map[string][]domain.Attachment, len(views))
	for _, f := range files {
		byAsset[f.AssetID] = append(byAsset[f.AssetID], f)
	}
	for i := range views {
		v := P(&views[i])
		if own, ok := byAsset[v.assetID()]; ok {
			v.attach(own)
		}
	}
	return nil
}

// withAttachments is embedAttachments for a single view.
func withAttachments[V any, P interface {
	*V
	attachable
}](ctx context.Context, a *App, kind domain.Kind, view V) (any, error) {
	views := []V{view}
	if err := embedAttachments[V, P](ctx, a, kind, views); err != nil {
		return nil, err
	}
	return views[0], nil
}
