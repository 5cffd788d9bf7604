package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"iptrack/internal/domain"
	"iptrack/internal/events"
	"iptrack/internal/middleware"
	"iptrack/internal/storage"
)

// maxJSONBody caps create and update payloads.
const maxJSONBody = 1 << 20

// BlobStore stores attachment contents.
type BlobStore interface {
	Save(ctx context.Context, key string, r io.Reader, limit int64) (string, int64, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// Pinger reports database reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// App carries the dependencies shared by every handler.
type App struct {
	Domains     domain.DomainRepository
	Trademarks  domain.TrademarkRepository
	TradeNames  domain.TradeNameRepository
	Mercantile  domain.MercantileRepository
	Watchlist   domain.WatchlistRepository
	RefData     domain.RefDataRepository
	Attachments domain.AttachmentRepository
	Stats       domain.StatsRepository

	Store  BlobStore
	Events events.Publisher
	DB     Pinger
	Logger zerolog.Logger

	// Now is the clock used for renewal math; nil means time.Now.
	Now            func() time.Time
	UploadPrefix   string
	MaxUploadBytes int64
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, message string) {
	a.json(w, code, map[string]any{
		"error": map[string]string{"code": errCode, "message": message},
	})
}

// fail maps err onto a status code and writes the error envelope. Server
// errors are logged and their detail hidden from the client.
func (a *App) fail(w http.ResponseWriter, r *http.Request, err error) {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, domain.ErrUnsupportedKind):
		a.error(w, http.StatusBadRequest, "unsupported_kind", err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		a.error(w, http.StatusBadRequest, "invalid_input", err.Error())
	case errors.Is(err, domain.ErrConflict):
		a.error(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, storage.ErrTooLarge), errors.As(err, &maxBytes):
		a.error(w, http.StatusRequestEntityTooLarge, "too_large", "payload exceeds the upload limit")
	case errors.Is(err, context.Canceled):
		// client went away; nothing useful to send
	default:
		a.log(r).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		a.error(w, http.StatusInternalServerError, "internal", "internal error")
	}
}

// log prefers the request-scoped logger installed by middleware.Logger.
func (a *App) log(r *http.Request) *zerolog.Logger {
	if l := zerolog.Ctx(r.Context()); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &a.Logger
}

func (a *App) locale(r *http.Request) string {
	return middleware.LocaleFromContext(r.Context())
}

// publish emits a change event. Delivery failures are logged, never surfaced:
// the write already succeeded.
func (a *App) publish(r *http.Request, typ string, kind domain.Kind, id string, data any) {
	if a.Events == nil {
		return
	}
	ev := events.Event{Type: typ, Kind: kind, AssetID: id, At: a.now().UTC(), Data: data}
	if err := a.Events.Publish(r.Context(), ev); err != nil {
		a.log(r).Warn().Err(err).Str("type", typ).Str("asset_id", id).Msg("publish event failed")
	}
}

// parseUUID validates an identifier from the path or query and returns its
// canonical form.
func parseUUID(field, raw string) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", invalidf("%s must be a UUID", field)
	}
	return id.String(), nil
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{domain.ErrInvalidInput}, args...)...)
}
