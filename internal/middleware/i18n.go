package middleware

import (
	"context"
	"net/http"

	"iptrack/internal/i18n"
)

type localeContextKey struct{}

var LocaleKey = localeContextKey{}

// I18N stores the request locale in the context. X-Locale wins over
// Accept-Language; defaultLocale applies when neither names a supported
// language. AuthJWT runs later and replaces the value with the token's
// locale claim when X-Locale is absent.
func I18N(defaultLocale string) func(http.Handler) http.Handler {
	fallback := i18n.Normalize(defaultLocale, i18n.English)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := detectLocale(r, fallback)
			ctx := context.WithValue(r.Context(), LocaleKey, locale)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func detectLocale(r *http.Request, fallback string) string {
	if v := i18n.Match(r.Header.Get("X-Locale")); v != "" {
		return v
	}
	if v := i18n.Match(r.Header.Get("Accept-Language")); v != "" {
		return v
	}
	return fallback
}

func LocaleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(LocaleKey).(string); ok && v != "" {
		return v
	}
	return i18n.English
}
