package repo

import (
	"context"

	"iptrack/internal/domain"
	"iptrack/internal/infra"
	"iptrack/internal/sqlinline"
)

// RefDataRepositoryPG implements domain.RefDataRepository using PostgreSQL.
type RefDataRepositoryPG struct {
	db infra.SQLExecutor
}

func NewRefDataRepository(db infra.SQLExecutor) *RefDataRepositoryPG {
	return &RefDataRepositoryPG{db: db}
}

func (r *RefDataRepositoryPG) ListVerticals(ctx context.Context) ([]domain.Vertical, error) {
	rows, err := r.db.Query(ctx, sqlinline.QListVerticals)
	if err != nil {
		return nil, mapError("list verticals", err)
	}
	items, err := collect(rows, func(s scanner, v *domain.Vertical) error {
		return s.Scan(&v.ID, &v.Slug, &v.Name)
	})
	return items, mapError("list verticals", err)
}

func (r *RefDataRepositoryPG) ListCountries(ctx context.Context) ([]domain.Country, error) {
	rows, err := r.db.Query(ctx, sqlinline.QListCountries)
	if err != nil {
		return nil, mapError("list countries", err)
	}
	items, err := collect(rows, func(s scanner, c *domain.Country) error {
		return s.Scan(&c.ID, &c.Code, &c.Name)
	})
	return items, mapError("list countries", err)
}

func (r *RefDataRepositoryPG) ListEntities(ctx context.Context) ([]domain.Entity, error) {
	rows, err := r.db.Query(ctx, sqlinline.QListEntities)
	if err != nil {
		return nil, mapError("list entities", err)
	}
	items, err := collect(rows, func(s scanner, e *domain.Entity) error {
		return s.Scan(&e.ID, &e.Name, &e.RNC, &e.Type)
	})
	return items, mapError("list entities", err)
}

func (r *RefDataRepositoryPG) CreateEntity(ctx context.Context, e *domain.Entity) error {
	err := r.db.QueryRow(ctx, sqlinline.QInsertEntity, e.Name, e.RNC, e.Type).Scan(&e.ID)
	return mapError("create entity", err)
}

// UpsertVertical inserts v unless its slug already exists.
func (r *RefDataRepositoryPG) UpsertVertical(ctx context.Context, v domain.Vertical) error {
	_, err := r.db.Exec(ctx, sqlinline.QUpsertVertical, v.Slug, v.Name)
	return mapError("upsert vertical", err)
}

// UpsertCountry inserts c unless its code already exists.
func (r *RefDataRepositoryPG) UpsertCountry(ctx context.Context, c domain.Country) error {
	_, err := r.db.Exec(ctx, sqlinline.QUpsertCountry, c.Code, c.Name)
	return mapError("upsert country", err)
}

var _ domain.RefDataRepository = (*RefDataRepositoryPG)(nil)
