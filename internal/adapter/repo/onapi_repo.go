package repo

import (
	"context"

	"iptrack/internal/domain"
	"iptrack/internal/infra"
	"iptrack/internal/sqlinline"
)

// TrademarkRepositoryPG implements domain.TrademarkRepository using PostgreSQL.
type TrademarkRepositoryPG struct {
	db infra.SQLExecutor
}

func NewTrademarkRepository(db infra.SQLExecutor) *TrademarkRepositoryPG {
	return &TrademarkRepositoryPG{db: db}
}

func scanTrademark(s scanner, t *domain.Trademark) error {
	return s.Scan(
		&t.ID, &t.Name, &t.Type, &t.NiceClass, &t.Expediente, &t.Certificate,
		&t.EntityID, &t.EntityName, &t.VerticalID, &t.VerticalName,
		&t.Status, &t.RegisteredAt, &t.ExpiryDate, &t.RenewalCost,
		&t.LogoURL, &t.Notes, &t.CreatedAt, &t.UpdatedAt,
	)
}

func trademarkArgs(t *domain.Trademark) []any {
	return []any{
		t.Name, t.Type, t.NiceClass, t.Expediente, t.Certificate, t.EntityID, t.VerticalID, t.Status,
		t.RegisteredAt, t.ExpiryDate, t.RenewalCost, t.LogoURL, t.Notes,
	}
}

func (r *TrademarkRepositoryPG) List(ctx context.Context) ([]domain.Trademark, error) {
	rows, err := r.db.Query(ctx, sqlinline.QListTrademarks)
	if err != nil {
		return nil, mapError("list trademarks", err)
	}
	items, err := collect(rows, scanTrademark)
	return items, mapError("list trademarks", err)
}

func (r *TrademarkRepositoryPG) ListRenewing(ctx context.Context, limit int) ([]domain.Trademark, error) {
	rows, err := r.db.Query(ctx, sqlinline.QListRenewingTrademarks, limit)
	if err != nil {
		return nil, mapError("list renewing trademarks", err)
	}
	items, err := collect(rows, scanTrademark)
	return items, mapError("list renewing trademarks", err)
}

func (r *TrademarkRepositoryPG) Get(ctx context.Context, id string) (*domain.Trademark, error) {
	var t domain.Trademark
	if err := scanTrademark(r.db.QueryRow(ctx, sqlinline.QSelectTrademarkByID, id), &t); err != nil {
		return nil, mapError("get trademark", err)
	}
	return &t, nil
}

func (r *TrademarkRepositoryPG) Create(ctx context.Context, t *domain.Trademark) error {
	if err := r.db.QueryRow(ctx, sqlinline.QInsertTrademark, trademarkArgs(t)...).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return mapError("create trademark", err)
	}
	return reload(ctx, t.ID, r.Get, t)
}

func (r *TrademarkRepositoryPG) Update(ctx context.Context, t *domain.Trademark) error {
	args := append([]any{t.ID}, trademarkArgs(t)...)
	if err := r.db.QueryRow(ctx, sqlinline.QUpdateTrademark, args...).Scan(&t.UpdatedAt); err != nil {
		return mapError("update trademark", err)
	}
	return reload(ctx, t.ID, r.Get, t)
}

func (r *TrademarkRepositoryPG) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, sqlinline.QDeleteTrademark, id)
	return expectOne("delete trademark", tag, err)
}

// TradeNameRepositoryPG implements domain.TradeNameRepository using PostgreSQL.
type TradeNameRepositoryPG struct {
	db infra.SQLExecutor
}

func NewTradeNameRepository(db infra.SQLExecutor) *TradeNameRepositoryPG {
	return &TradeNameRepositoryPG{db: db}
}

func scanTradeName(s scanner, t *domain.TradeName) error {
	return s.Scan(
		&t.ID, &t.Name, &t.Expediente, &t.Certificate,
		&t.EntityID, &t.EntityName,
		&t.Status, &t.RegisteredAt, &t.ExpiryDate, &t.RenewalCost,
		&t.Notes, &t.CreatedAt, &t.UpdatedAt,
	)
}

func tradeNameArgs(t *domain.TradeName) []any {
	return []any{
		t.Name, t.Expediente, t.Certificate, t.EntityID, t.Status,
		t.RegisteredAt, t.ExpiryDate, t.RenewalCost, t.Notes,
	}
}

func (r *TradeNameRepositoryPG) List(ctx context.Context) ([]domain.TradeName, error) {
	rows, err := r.db.Query(ctx, sqlinline.QListTradeNames)
	if err != nil {
		return nil, mapError("list trade names", err)
	}
	items, err := collect(rows, scanTradeName)
	return items, mapError("list trade names", err)
}

func (r *TradeNameRepositoryPG) ListRenewing(ctx context.Context, limit int) ([]domain.TradeName, error) {
	rows, err := r.db.Query(ctx, sqlinline.QListRenewingTradeNames, limit)
	if err != nil {
		return nil, mapError("list renewing trade names", err)
	}
	items, err := collect(rows, scanTradeName)
	return items, mapError("list renewing trade names", err)
}

func (r *TradeNameRepositoryPG) Get(ctx context.Context, id string) (*domain.TradeName, error) {
	var t domain.TradeName
	if err := scanTradeName(r.db.QueryRow(ctx, sqlinline.QSelectTradeNameByID, id), &t); err != nil {
		return nil, mapError("get trade name", err)
	}
	return &t, nil
}

func (r *TradeNameRepositoryPG) Create(ctx context.Context, t *domain.TradeName) error {
	if err := r.db.QueryRow(ctx, sqlinline.QInsertTradeName, tradeNameArgs(t)...).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return mapError("create trade name", err)
	}
	return reload(ctx, t.ID, r.Get, t)
}

func (r *TradeNameRepositoryPG) Update(ctx context.Context, t *domain.TradeName) error {
	args := append([]any{t.ID}, tradeNameArgs(t)...)
	if err := r.db.QueryRow(ctx, sqlinline.QUpdateTradeName, args...).Scan(&t.UpdatedAt); err != nil {
		return mapError("update trade name", err)
	}
	return reload(ctx, t.ID, r.Get, t)
}

func (r *TradeNameRepositoryPG) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, sqlinline.QDeleteTradeName, id)
	return expectOne("delete trade name", tag, err)
}

var (
	_ domain.TrademarkRepository = (*TrademarkRepositoryPG)(nil)
	_ domain.TradeNameRepository = (*TradeNameRepositoryPG)(nil)
)
