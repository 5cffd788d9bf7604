package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MercantileRecord is a company registration held at a chamber of commerce.
type MercantileRecord struct {
	ID             string              `json:"id"`
	CompanyName    string              `json:"company_name"`
	RNC            *string             `json:"rnc"`
	CompanyType    *string             `json:"company_type"`
	Chamber        *string             `json:"chamber"`
	RegistryNumber *string             `json:"registry_number"`
	EntityID       *string             `json:"entity_id"`
	EntityName     *string             `json:"entity_name,omitempty"`
	Status         string              `json:"status"`
	RegisteredAt   *time.Time          `json:"registered_at"`
	RenewalDate    *time.Time          `json:"renewal_date"`
	RenewalCost    decimal.NullDecimal `json:"renewal_cost"`
	Notes          *string             `json:"notes"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

func NewMercantileRecord() *MercantileRecord {
	return &MercantileRecord{Status: "active"}
}

func (m *MercantileRecord) ApplyPatch(p Patch) error {
	return firstError(
		p.String("company_name", &m.CompanyName),
		p.OptString("rnc", &m.RNC),
		p.OptString("company_type", &m.CompanyType),
		p.OptString("chamber", &m.Chamber),
		p.OptString("registry_number", &m.RegistryNumber),
		p.OptUUID("entity_id", &m.EntityID),
		p.Text("status", &m.Status, "active"),
		p.OptDate("registered_at", &m.RegisteredAt),
		p.OptDate("renewal_date", &m.RenewalDate),
		p.OptDecimal("renewal_cost", &m.RenewalCost),
		p.OptString("notes", &m.Notes),
	)
}

func (m *MercantileRecord) Validate() error {
	return firstError(
		required("company_name", m.CompanyName),
		oneOf("status", m.Status, "active", RegistrationPending, RegistrationExpired),
		nonNegative("renewal_cost", m.RenewalCost),
	)
}
