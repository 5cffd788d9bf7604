package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"iptrack/internal/domain"
	"iptrack/internal/events"
)

// record is implemented by every writable asset type.
type record interface {
	ApplyPatch(p domain.Patch) error
	Validate() error
}

func pathID(r *http.Request) (string, error) {
	return parseUUID("id", chi.URLParam(r, "id"))
}

// decodeInto applies the JSON body of r onto rec and validates the result.
func decodeInto(w http.ResponseWriter, r *http.Request, rec record) error {
	patch, err := domain.DecodePatch(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err != nil {
		return err
	}
	if err := rec.ApplyPatch(patch); err != nil {
		return err
	}
	return rec.Validate()
}

// saveRecord decodes the body onto rec, persists it with save and answers
// with view. Create passes a fresh record and status 201; update passes the
// stored record and status 200.
func (a *App) saveRecord(w http.ResponseWriter, r *http.Request, status int, kind domain.Kind, rec record, save func(context.Context) error, id func() string, view func(context.Context) (any, error)) {
	if err := decodeInto(w, r, rec); err != nil {
		a.fail(w, r, err)
		return
	}
	if err := save(r.Context()); err != nil {
		a.fail(w, r, err)
		return
	}
	typ := events.TypeUpdated
	if status == http.StatusCreated {
		typ = events.TypeCreated
	}
	out, err := view(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.publish(r, typ, kind, id(), out)
	a.json(w, status, out)
}

// deleteRecord removes the asset and, for kinds that carry attachments, the
// stored files behind them. Rows cascade in the database; blobs do not.
func (a *App) deleteRecord(w http.ResponseWriter, r *http.Request, kind domain.Kind, del func(context.Context, string) error) {
	id, err := pathID(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	var orphans []domain.Attachment
	if kind.AcceptsAttachments() && a.Attachments != nil {
		orphans, err = a.Attachments.ListByAsset(r.Context(), kind, id)
		if err != nil {
			a.fail(w, r, err)
			return
		}
	}
	if err := del(r.Context(), id); err != nil {
		a.fail(w, r, err)
		return
	}
	for _, att := range orphans {
		a.removeBlob(r, att)
	}
	a.publish(r, events.TypeDeleted, kind, id, nil)
	a.json(w, http.StatusOK, map[string]bool{"ok": true})
}

// getRecord answers with the single asset loaded by get.
func getRecord[T any](a *App, w http.ResponseWriter, r *http.Request, get func(context.Context, string) (*T, error), view func(context.Context, *T) (any, error)) {
	id, err := pathID(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	item, err := get(r.Context(), id)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	out, err := view(r.Context(), item)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, out)
}

// loadForUpdate fetches the stored record addressed by the path id.
func loadForUpdate[T any](a *App, w http.ResponseWriter, r *http.Request, get func(context.Context, string) (*T, error)) (*T, bool) {
	id, err := pathID(r)
	if err != nil {
		a.fail(w, r, err)
		return nil, false
	}
	item, err := get(r.Context(), id)
	if err != nil {
		a.fail(w, r, err)
		return nil, false
	}
	return item, true
}
