package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/guardiao/guardiao-api/internal/domain/entity"
	"github.com/guardiao/guardiao-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas read-only dos contadores do painel.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository constrói o adaptador de leitura do painel.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// CountVisitsSince conta visitas com entry_time >= since.
func (r *DashboardRepo) CountVisitsSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM visits WHERE entry_time >= $1`, since).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count visits since: %w", err)
	}
	return n, nil
}

// CountByStatus conta visitas no status indicado.
func (r *DashboardRepo) CountByStatus(ctx context.Context, status entity.Status) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM visits WHERE status = $1`, string(status)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count visits by status: %w", err)
	}
	return n, nil
}

// CountVisitorsInside conta visitas approved ainda sem saída registrada.
func (r *DashboardRepo) CountVisitorsInside(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM visits WHERE status = $1 AND exit_time IS NULL`,
		string(entity.StatusApproved)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count visitors inside: %w", err)
	}
	return n, nil
}

// RecentVisits devolve as limit visitas mais recentes (entry_time desc).
func (r *DashboardRepo) RecentVisits(ctx context.Context, limit int) ([]*entity.Visit, error) {
	query := `SELECT ` + visitColumns + ` FROM visits ORDER BY entry_time DESC LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent visits: %w", err)
	}
	defer rows.Close()
	return collectVisits(rows)
}
