package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Domain statuses.
const (
	DomainActive   = "active"
	DomainParked   = "parked"
	DomainRedirect = "redirect"
	DomainPointer  = "pointer"
	DomainExpired  = "expired"
)

// Domain is a registered domain name owned by the organization.
type Domain struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	TLD             string              `json:"tld"`
	DomainFull      string              `json:"domain_full"`
	VerticalID      *string             `json:"vertical_id"`
	VerticalName    *string             `json:"vertical_name,omitempty"`
	CountryID       *string             `json:"country_id"`
	CountryCode     *string             `json:"country_code,omitempty"`
	EntityID        *string             `json:"entity_id"`
	EntityName      *string             `json:"entity_name,omitempty"`
	Subtype         *string             `json:"subtype"`
	Status          string              `json:"status"`
	Priority        string              `json:"priority"`
	Registrar       *string             `json:"registrar"`
	RegisteredAt    *time.Time          `json:"registered_at"`
	RenewalDate     *time.Time          `json:"renewal_date"`
	AnnualCostUSD   decimal.NullDecimal `json:"annual_cost_usd"`
	CFZoneID        *string             `json:"cf_zone_id"`
	CFSSLMode       *string             `json:"cf_ssl_mode"`
	CFEmailRouting  bool                `json:"cf_email_routing"`
	HostingProvider *string             `json:"hosting_provider"`
	ServerIP        *string             `json:"server_ip"`
	HasLanding      bool                `json:"has_landing"`
	HasLeadCapture  bool                `json:"has_lead_capture"`
	RedirectTo      *string             `json:"redirect_to"`
	RedirectType    *string             `json:"redirect_type"`
	Notes           *string             `json:"notes"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// NewDomain returns a domain carrying the creation defaults.
func NewDomain() *Domain {
	return &Domain{Status: DomainParked, Priority: "low"}
}

// ApplyPatch copies the fields present in p onto d.
func (d *Domain) ApplyPatch(p Patch) error {
	return firstError(
		p.String("name", &d.Name),
		p.String("tld", &d.TLD),
		p.String("domain_full", &d.DomainFull),
		p.OptUUID("vertical_id", &d.VerticalID),
		p.OptUUID("country_id", &d.CountryID),
		p.OptUUID("entity_id", &d.EntityID),
		p.OptString("subtype", &d.Subtype),
		p.Text("status", &d.Status, DomainParked),
		p.Text("priority", &d.Priority, "low"),
		p.OptString("registrar", &d.Registrar),
		p.OptDate("registered_at", &d.RegisteredAt),
		p.OptDate("renewal_date", &d.RenewalDate),
		p.OptDecimal("annual_cost_usd", &d.AnnualCostUSD),
		p.OptString("cf_zone_id", &d.CFZoneID),
		p.OptString("cf_ssl_mode", &d.CFSSLMode),
		p.Bool("cf_email_routing", &d.CFEmailRouting),
		p.OptString("hosting_provider", &d.HostingProvider),
		p.OptString("server_ip", &d.ServerIP),
		p.Bool("has_landing", &d.HasLanding),
		p.Bool("has_lead_capture", &d.HasLeadCapture),
		p.OptString("redirect_to", &d.RedirectTo),
		p.OptString("redirect_type", &d.RedirectType),
		p.OptString("notes", &d.Notes),
	)
}

// Validate checks the invariants enforced before persisting.
func (d *Domain) Validate() error {
	return firstError(
		required("name", d.Name),
		required("tld", d.TLD),
		required("domain_full", d.DomainFull),
		oneOf("status", d.Status, DomainActive, DomainParked, DomainRedirect, DomainPointer, DomainExpired),
		oneOf("priority", d.Priority, "low", "medium", "high"),
		nonNegative("annual_cost_usd", d.AnnualCostUSD),
	)
}
