package httpapi

import (
	"mime"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"iptrack/internal/http/handlers"
	"iptrack/internal/middleware"
)

// Options configures the router's middleware and static file serving.
type Options struct {
	Logger          zerolog.Logger
	CORSOrigins     []string
	JWTSecret       string
	JWTIssuer       string
	DefaultLocale   string
	RateLimitPerMin int
	UploadPrefix    string
	UploadDir       string
	// TrustProxy takes the client address from X-Forwarded-For and
	// X-Real-IP. Enable it only behind a proxy that overwrites them.
	TrustProxy bool
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	if opts.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(
		middleware.Logger(opts.Logger),
		chimw.Recoverer,
		middleware.CORS(opts.CORSOrigins),
		middleware.I18N(opts.DefaultLocale),
		middleware.RateLimit(opts.RateLimitPerMin, time.Minute),
	)

	// Public
	r.Get("/v1/healthz", app.Health)
	r.Get("/v1/openapi.json", app.OpenAPIJSON)
	r.Get("/v1/docs", app.OpenAPIDocs)

	if opts.UploadDir != "" {
		prefix := "/" + strings.Trim(opts.UploadPrefix, "/")
		r.Handle(prefix+"/*", http.StripPrefix(prefix, noDirListing(http.FileServer(http.Dir(opts.UploadDir)))))
	}

	r.Group(func(r chi.Router) {
		if opts.JWTSecret != "" {
			r.Use(middleware.AuthJWT(opts.JWTSecret, opts.JWTIssuer))
		}

		r.Get("/v1/dashboard", app.Dashboard)
		r.Get("/v1/calendar", app.Calendar)
		r.Get("/v1/analytics", app.Analytics)

		r.Route("/v1/domains", func(r chi.Router) {
			r.Get("/", app.ListDomains)
			r.Post("/", app.CreateDomain)
			r.Get("/{id}", app.GetDomain)
			r.Put("/{id}", app.UpdateDomain)
			r.Delete("/{id}", app.DeleteDomain)
		})

		r.Route("/v1/onapi", func(r chi.Router) {
			r.Get("/", app.ListONAPI)
			r.Route("/trademarks", func(r chi.Router) {
				r.Get("/", app.ListTrademarks)
				r.Post("/", app.CreateTrademark)
				r.Get("/{id}", app.GetTrademark)
				r.Put("/{id}", app.UpdateTrademark)
				r.Delete("/{id}", app.DeleteTrademark)
			})
			r.Route("/tradenames", func(r chi.Router) {
				r.Get("/", app.ListTradeNames)
				r.Post("/", app.CreateTradeName)
				r.Get("/{id}", app.GetTradeName)
				r.Put("/{id}", app.UpdateTradeName)
				r.Delete("/{id}", app.DeleteTradeName)
			})
		})

		r.Route("/v1/mercantile", func(r chi.Router) {
			r.Get("/", app.ListMercantile)
			r.Post("/", app.CreateMercantile)
			r.Get("/{id}", app.GetMercantile)
			r.Put("/{id}", app.UpdateMercantile)
			r.Delete("/{id}", app.DeleteMercantile)
		})

		r.Route("/v1/watchlist", func(r chi.Router) {
			r.Get("/", app.ListWatchlist)
			r.Post("/", app.CreateWatchlistItem)
			r.Get("/{id}", app.GetWatchlistItem)
			r.Put("/{id}", app.UpdateWatchlistItem)
			r.Delete("/{id}", app.DeleteWatchlistItem)
		})

		r.Get("/v1/refdata", app.ListRefData)
		r.Get("/v1/entities", app.ListEntities)
		r.Post("/v1/entities", app.CreateEntity)

		r.Route("/v1/attachments", func(r chi.Router) {
			r.Get("/", app.ListAttachments)
			r.Post("/", app.UploadAttachment)
			r.Delete("/{id}", app.DeleteAttachment)
			r.Get("/{kind}/{assetId}/zip", app.DownloadAttachmentsZip)
		})
	})

	return r
}

// noDirListing hides directory indexes of the upload root and serves every
// file as a download that browsers must not sniff or render inline.
func noDirListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("X-Content-Type-Options", "nosniff")
		disposition := mime.FormatMediaType("attachment", map[string]string{"filename": path.Base(r.URL.Path)})
		if disposition == "" {
			disposition = "attachment"
		}
		w.Header().Set("Content-Disposition", disposition)
		next.ServeHTTP(w, r)
	})
}
