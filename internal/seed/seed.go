// Package seed loads the reference data every installation starts with.
package seed

import (
	"context"
	"fmt"

	"iptrack/internal/domain"
	"iptrack/internal/i18n"
)

// VerticalSlugs are the business lines assets are filed under.
var VerticalSlugs = []string{
	"farmacia", "pets", "deportes", "turismo", "bienes_raices", "entretenimiento",
	"media", "legal", "escolar", "finanzas", "seguros", "comercio", "salud",
	"flores", "empleo", "eventos", "politica", "lifestyle", "tecnologia", "servicios",
}

// Countries are the markets domains target.
var Countries = []domain.Country{
	{Code: "DO", Name: "República Dominicana"}, {Code: "PE", Name: "Perú"},
	{Code: "CO", Name: "Colombia"}, {Code: "MX", Name: "México"},
	{Code: "AR", Name: "Argentina"}, {Code: "EC", Name: "Ecuador"},
	{Code: "VE", Name: "Venezuela"}, {Code: "CR", Name: "Costa Rica"},
	{Code: "GT", Name: "Guatemala"}, {Code: "BO", Name: "Bolivia"},
	{Code: "HN", Name: "Honduras"}, {Code: "PA", Name: "Panamá"},
	{Code: "BR", Name: "Brasil"}, {Code: "US", Name: "Estados Unidos"},
	{Code: "ES", Name: "España"},
}

// Result reports how many rows were offered to the repository.
type Result struct {
	Verticals int `json:"verticals"`
	Countries int `json:"countries"`
}

// Verticals returns the seeded verticals with their display names.
func Verticals() []domain.Vertical {
	out := make([]domain.Vertical, 0, len(VerticalSlugs))
	for _, slug := range VerticalSlugs {
		out = append(out, domain.Vertical{Slug: slug, Name: i18n.TitleSlug(slug)})
	}
	return out
}

// Run upserts every vertical and country. Existing rows keep their names, so
// running it twice is harmless.
func Run(ctx context.Context, repo domain.RefDataRepository) (Result, error) {
	var res Result
	for _, v := range Verticals() {
		if err := repo.UpsertVertical(ctx, v); err != nil {
			return res, fmt.Errorf("seed vertical %s: %w", v.Slug, err)
		}
		res.Verticals++
	}
	for _, c := range Countries {
		if err := repo.UpsertCountry(ctx, c); err != nil {
			return res, fmt.Errorf("seed country %s: %w", c.Code, err)
		}
		res.Countries++
	}
	return res, nil
}
