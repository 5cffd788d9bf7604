package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statuses shared by ONAPI registrations.
const (
	RegistrationRegistered = "registered"
	RegistrationPending    = "pending"
	RegistrationExpired    = "expired"
)

// Trademark is a brand registered with ONAPI.
type Trademark struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Type         string              `json:"type"`
	NiceClass    *string             `json:"nice_class"`
	Expediente   *string             `json:"expediente"`
	Certificate  *string             `json:"certificate"`
	EntityID     *string             `json:"entity_id"`
	EntityName   *string             `json:"entity_name,omitempty"`
	VerticalID   *string             `json:"vertical_id"`
	VerticalName *string             `json:"vertical_name,omitempty"`
	Status       string              `json:"status"`
	RegisteredAt *time.Time          `json:"registered_at"`
	ExpiryDate   *time.Time          `json:"expiry_date"`
	RenewalCost  decimal.NullDecimal `json:"renewal_cost"`
	LogoURL      *string             `json:"logo_url"`
	Notes        *string             `json:"notes"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

func NewTrademark() *Trademark {
	return &Trademark{Type: "marca", Status: RegistrationRegistered}
}

func (t *Trademark) ApplyPatch(p Patch) error {
	return firstError(
		p.String("name", &t.Name),
		p.Text("type", &t.Type, "marca"),
		p.OptString("nice_class", &t.NiceClass),
		p.OptString("expediente", &t.Expediente),
		p.OptString("certificate", &t.Certificate),
		p.OptUUID("entity_id", &t.EntityID),
		p.OptUUID("vertical_id", &t.VerticalID),
		p.Text("status", &t.Status, RegistrationRegistered),
		p.OptDate("registered_at", &t.RegisteredAt),
		p.OptDate("expiry_date", &t.ExpiryDate),
		p.OptDecimal("renewal_cost", &t.RenewalCost),
		p.OptString("logo_url", &t.LogoURL),
		p.OptString("notes", &t.Notes),
	)
}

func (t *Trademark) Validate() error {
	return firstError(
		required("name", t.Name),
		oneOf("status", t.Status, RegistrationRegistered, RegistrationPending, RegistrationExpired),
		nonNegative("renewal_cost", t.RenewalCost),
	)
}

// TradeName is a commercial name registered with ONAPI.
type TradeName struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Expediente   *string             `json:"expediente"`
	Certificate  *string             `json:"certificate"`
	EntityID     *string             `json:"entity_id"`
	EntityName   *string             `json:"entity_name,omitempty"`
	Status       string              `json:"status"`
	RegisteredAt *time.Time          `json:"registered_at"`
	ExpiryDate   *time.Time          `json:"expiry_date"`
	RenewalCost  decimal.NullDecimal `json:"renewal_cost"`
	Notes        *string             `json:"notes"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

func NewTradeName() *TradeName {
	return &TradeName{Status: RegistrationRegistered}
}

func (t *TradeName) ApplyPatch(p Patch) error {
	return firstError(
		p.String("name", &t.Name),
		p.OptString("expediente", &t.Expediente),
		p.OptString("certificate", &t.Certificate),
		p.OptUUID("entity_id", &t.EntityID),
		p.Text("status", &t.Status, RegistrationRegistered),
		p.OptDate("registered_at", &t.RegisteredAt),
		p.OptDate("expiry_date", &t.ExpiryDate),
		p.OptDecimal("renewal_cost", &t.RenewalCost),
		p.OptString("notes", &t.Notes),
	)
}

func (t *TradeName) Validate() error {
	return firstError(
		required("name", t.Name),
		oneOf("status", t.Status, RegistrationRegistered, RegistrationPending, RegistrationExpired),
		nonNegative("renewal_cost", t.RenewalCost),
	)
}
