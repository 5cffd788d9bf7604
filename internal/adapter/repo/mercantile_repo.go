package repo

import (
	"context"

	"iptrack/internal/domain"
	"iptrack/internal/infra"
	"iptrack/internal/sqlinline"
)

// MercantileRepositoryPG implements domain.MercantileRepository using PostgreSQL.
type MercantileRepositoryPG struct {
	db infra.SQLExecutor
}

func NewMercantileRepository(db infra.SQLExecutor) *MercantileRepositoryPG {
	return &MercantileRepositoryPG{db: db}
}

func scanMercantile(s scanner, m *domain.MercantileRecord) error {
	return s.Scan(
		&m.ID, &m.CompanyName, &m.RNC, &m.CompanyType, &m.Chamber, &m.RegistryNumber,
		&m.EntityID, &m.EntityName,
		&m.Status, &m.RegisteredAt, &m.RenewalDate, &m.RenewalCost,
		&m.Notes, &m.CreatedAt, &m.UpdatedAt,
	)
}

func mercantileArgs(m *domain.MercantileRecord) []any {
	return []any{
		m.CompanyName, m.RNC, m.CompanyType, m.Chamber, m.RegistryNumber, m.EntityID, m.Status,
		m.RegisteredAt, m.RenewalDate, m.RenewalCost, m.Notes,
	}
}

func (r *MercantileRepositoryPG) List(ctx context.Context) ([]domain.MercantileRecord, error) {
	rows, err := r.db.Query(ctx, sqlinline.QListMercantile)
	if err != nil {
		return nil, mapError("list mercantile records", err)
	}
	items, err := collect(rows, scanMercantile)
	return items, mapError("list mercantile records", err)
}

func (r *MercantileRepositoryPG) ListRenewing(ctx context.Context, limit int) ([]domain.MercantileRecord, error) {
	rows, err := r.db.Query(ctx, sqlinline.QListRenewingMercantile, limit)
	if err != nil {
		return nil, mapError("list renewing mercantile records", err)
	}
	items, err := collect(rows, scanMercantile)
	return items, mapError("list renewing mercantile records", err)
}

func (r *MercantileRepositoryPG) Get(ctx context.Context, id string) (*domain.MercantileRecord, error) {
	var m domain.MercantileRecord
	if err := scanMercantile(r.db.QueryRow(ctx, sqlinline.QSelectMercantileByID, id), &m); err != nil {
		return nil, mapError("get mercantile record", err)
	}
	return &m, nil
}

func (r *MercantileRepositoryPG) Create(ctx context.Context, m *domain.MercantileRecord) error {
	if err := r.db.QueryRow(ctx, sqlinline.QInsertMercantile, mercantileArgs(m)...).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return mapError("create mercantile record", err)
	}
	return reload(ctx, m.ID, r.Get, m)
}

func (r *MercantileRepositoryPG) Update(ctx context.Context, m *domain.MercantileRecord) error {
	args := append([]any{m.ID}, mercantileArgs(m)...)
	if err := r.db.QueryRow(ctx, sqlinline.QUpdateMercantile, args...).Scan(&m.UpdatedAt); err != nil {
		return mapError("update mercantile record", err)
	}
	return reload(ctx, m.ID, r.Get, m)
}

func (r *MercantileRepositoryPG) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, sqlinline.QDeleteMercantile, id)
	return expectOne("delete mercantile record", tag, err)
}

var _ domain.MercantileRepository = (*MercantileRepositoryPG)(nil)
