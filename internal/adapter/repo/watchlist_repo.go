package repo

import (
	"context"

	"iptrack/internal/domain"
	"iptrack/internal/infra"
	"iptrack/internal/sqlinline"
)

// WatchlistRepositoryPG implements domain.WatchlistRepository using PostgreSQL.
type WatchlistRepositoryPG struct {
	db infra.SQLExecutor
}

func NewWatchlistRepository(db infra.SQLExecutor) *WatchlistRepositoryPG {
	return &WatchlistRepositoryPG{db: db}
}

func scanWatchlist(s scanner, w *domain.WatchlistItem) error {
	return s.Scan(
		&w.ID, &w.Name, &w.TLD, &w.DomainFull, &w.CurrentOwner, &w.Registrar,
		&w.ExpiryDate, &w.EstimatedPrice, &w.Status, &w.Priority, &w.Vertical,
		&w.Notes, &w.CreatedAt, &w.UpdatedAt,
	)
}

func watchlistArgs(w *domain.WatchlistItem) []any {
	return []any{
		w.Name, w.TLD, w.DomainFull, w.CurrentOwner, w.Registrar, w.ExpiryDate, w.EstimatedPrice,
		w.Status, w.Priority, w.Vertical, w.Notes,
	}
}

func (r *WatchlistRepositoryPG) List(ctx context.Context) ([]domain.WatchlistItem, error) {
	rows, err := r.db.Query(ctx, sqlinline.QListWatchlist)
	if err != nil {
		return nil, mapError("list watchlist", err)
	}
	items, err := collect(rows, scanWatchlist)
	return items, mapError("list watchlist", err)
}

func (r *WatchlistRepositoryPG) Get(ctx context.Context, id string) (*domain.WatchlistItem, error) {
	var w domain.WatchlistItem
	if err := scanWatchlist(r.db.QueryRow(ctx, sqlinline.QSelectWatchlistByID, id), &w); err != nil {
		return nil, mapError("get watchlist item", err)
	}
	return &w, nil
}

func (r *WatchlistRepositoryPG) Create(ctx context.Context, w *domain.WatchlistItem) error {
	err := r.db.QueryRow(ctx, sqlinline.QInsertWatchlist, watchlistArgs(w)...).Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt)
	return mapError("create watchlist item", err)
}

func (r *WatchlistRepositoryPG) Update(ctx context.Context, w *domain.WatchlistItem) error {
	args := append([]any{w.ID}, watchlistArgs(w)...)
	return mapError("update watchlist item", r.db.QueryRow(ctx, sqlinline.QUpdateWatchlist, args...).Scan(&w.UpdatedAt))
}

func (r *WatchlistRepositoryPG) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, sqlinline.QDeleteWatchlist, id)
	return expectOne("delete watchlist item", tag, err)
}

var _ domain.WatchlistRepository = (*WatchlistRepositoryPG)(nil)
