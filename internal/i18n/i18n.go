// Package i18n resolves the request locale and translates the few labels the
// API emits itself: asset kind labels, dimension sentinels and month headers.
package i18n

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	English = "en"
	Spanish = "es"
)

var supported = []language.Tag{language.English, language.Spanish}

var matcher = language.NewMatcher(supported)

// Match picks the supported locale closest to an Accept-Language style value.
// It returns "" when nothing in the header matches a supported language.
func Match(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return ""
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return ""
	}
	base, _ := supported[index].Base()
	return base.String()
}

// Normalize maps any locale string onto a supported locale, using fallback
// when it is unknown.
func Normalize(locale, fallback string) string {
	if m := Match(locale); m != "" {
		return m
	}
	if fallback == Spanish {
		return Spanish
	}
	return English
}

var spanish = map[string]string{
	"Domain":            "Dominio",
	"Trademark":         "Marca",
	"Trade Name":        "Nombre Comercial",
	"Mercantile Record": "Reg. Mercantil",
	"Watchlist":         "Lista de seguimiento",
	"No Vertical":       "Sin Vertical",
	"N/A":               "N/A",
}

// T translates an English label into locale. Unknown labels pass through.
func T(locale, msg string) string {
	if locale != Spanish {
		return msg
	}
	if v, ok := spanish[msg]; ok {
		return v
	}
	return msg
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// MonthLabel returns the month header formatter for locale.
func MonthLabel(locale string) func(time.Time) string {
	if locale != Spanish {
		return func(t time.Time) string { return t.Format("January 2006") }
	}
	title := cases.Title(language.Spanish)
	return func(t time.Time) string {
		return title.String(spanishMonths[t.Month()-1]) + " " + t.Format("2006")
	}
}

// TitleSlug turns a reference-data slug like "bienes_raices" into "Bienes Raices".
func TitleSlug(slug string) string {
	return cases.Title(language.Spanish).String(strings.ReplaceAll(slug, "_", " "))
}
