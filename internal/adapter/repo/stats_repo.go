package repo

import (
	"context"

	"iptrack/internal/domain"
	"iptrack/internal/infra"
	"iptrack/internal/sqlinline"
)

// StatsRepositoryPG implements domain.StatsRepository using PostgreSQL.
type StatsRepositoryPG struct {
	db infra.SQLExecutor
}

func NewStatsRepository(db infra.SQLExecutor) *StatsRepositoryPG {
	return &StatsRepositoryPG{db: db}
}

// Counts returns per-kind record counts in a single round trip.
func (r *StatsRepositoryPG) Counts(ctx context.Context) (domain.AssetCounts, error) {
	var c domain.AssetCounts
	err := r.db.QueryRow(ctx, sqlinline.QAssetCounts).Scan(
		&c.Domains, &c.ActiveDomains, &c.ParkedDomains,
		&c.Trademarks, &c.TradeNames, &c.Mercantile, &c.Watchlist,
	)
	if err != nil {
		return domain.AssetCounts{}, mapError("asset counts", err)
	}
	return c, nil
}

var _ domain.StatsRepository = (*StatsRepositoryPG)(nil)
