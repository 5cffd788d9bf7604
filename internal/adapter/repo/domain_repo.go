package repo

import (
	"context"

	"iptrack/internal/domain"
	"iptrack/internal/infra"
	"iptrack/internal/sqlinline"
)

// DomainRepositoryPG implements domain.DomainRepository using PostgreSQL.
type DomainRepositoryPG struct {
	db infra.SQLExecutor
}

// NewDomainRepository constructs a new domain repository instance.
func NewDomainRepository(db infra.SQLExecutor) *DomainRepositoryPG {
	return &DomainRepositoryPG{db: db}
}

func scanDomain(s scanner, d *domain.Domain) error {
	return s.Scan(
		&d.ID, &d.Name, &d.TLD, &d.DomainFull,
		&d.VerticalID, &d.VerticalName,
		&d.CountryID, &d.CountryCode,
		&d.EntityID, &d.EntityName,
		&d.Subtype, &d.Status, &d.Priority, &d.Registrar,
		&d.RegisteredAt, &d.RenewalDate, &d.AnnualCostUSD,
		&d.CFZoneID, &d.CFSSLMode, &d.CFEmailRouting,
		&d.HostingProvider, &d.ServerIP, &d.HasLanding, &d.HasLeadCapture,
		&d.RedirectTo, &d.RedirectType, &d.Notes,
		&d.CreatedAt, &d.UpdatedAt,
	)
}

// domainArgs lists the writable columns in insert order.
func domainArgs(d *domain.Domain) []any {
	return []any{
		d.Name, d.TLD, d.DomainFull, d.VerticalID, d.CountryID, d.EntityID, d.Subtype, d.Status, d.Priority,
		d.Registrar, d.RegisteredAt, d.RenewalDate, d.AnnualCostUSD, d.CFZoneID, d.CFSSLMode,
		d.CFEmailRouting, d.HostingProvider, d.ServerIP, d.HasLanding, d.HasLeadCapture,
		d.RedirectTo, d.RedirectType, d.Notes,
	}
}

func filterArgs(f domain.DomainFilter) []any {
	return []any{f.Search, f.VerticalID, f.CountryID, f.Status}
}

// List returns domains matching the filter ordered by name.
func (r *DomainRepositoryPG) List(ctx context.Context, f domain.DomainFilter) ([]domain.Domain, error) {
	args := append(filterArgs(f), f.Limit, f.Offset)
	rows, err := r.db.Query(ctx, sqlinline.QListDomains, args...)
	if err != nil {
		return nil, mapError("list domains", err)
	}
	items, err := collect(rows, scanDomain)
	return items, mapError("list domains", err)
}

// Count returns the number of domains matching the filter, ignoring paging.
func (r *DomainRepositoryPG) Count(ctx context.Context, f domain.DomainFilter) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, sqlinline.QCountDomains, filterArgs(f)...).Scan(&n); err != nil {
		return 0, mapError("count domains", err)
	}
	return n, nil
}

func (r *DomainRepositoryPG) ListRenewing(ctx context.Context, limit int) ([]domain.Domain, error) {
	rows, err := r.db.Query(ctx, sqlinline.QListRenewingDomains, limit)
	if err != nil {
		return nil, mapError("list renewing domains", err)
	}
	items, err := collect(rows, scanDomain)
	return items, mapError("list renewing domains", err)
}

func (r *DomainRepositoryPG) Get(ctx context.Context, id string) (*domain.Domain, error) {
	var d domain.Domain
	if err := scanDomain(r.db.QueryRow(ctx, sqlinline.QSelectDomainByID, id), &d); err != nil {
		return nil, mapError("get domain", err)
	}
	return &d, nil
}

// Create inserts d and reloads it with its generated fields and joined names.
func (r *DomainRepositoryPG) Create(ctx context.Context, d *domain.Domain) error {
	if err := r.db.QueryRow(ctx, sqlinline.QInsertDomain, domainArgs(d)...).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return mapError("create domain", err)
	}
	return reload(ctx, d.ID, r.Get, d)
}

// Update overwrites every writable column of d, then reloads it.
func (r *DomainRepositoryPG) Update(ctx context.Context, d *domain.Domain) error {
	args := append([]any{d.ID}, domainArgs(d)...)
	if err := r.db.QueryRow(ctx, sqlinline.QUpdateDomain, args...).Scan(&d.UpdatedAt); err != nil {
		return mapError("update domain", err)
	}
	return reload(ctx, d.ID, r.Get, d)
}

func (r *DomainRepositoryPG) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, sqlinline.QDeleteDomain, id)
	return expectOne("delete domain", tag, err)
}

var _ domain.DomainRepository = (*DomainRepositoryPG)(nil)
