package repository

import (
	"context"
	"time"

	"github.com/guardiao/guardiao-api/internal/domain/entity"
)

// DashboardRepository consultas read-only para os contadores do painel.
// Separado de VisitRepository para deixar explícito que nenhum método
// aqui produz efeito colateral.
type DashboardRepository interface {
	// CountVisitsSince conta visitas com entry_time >= since.
	CountVisitsSince(ctx context.Context, since time.Time) (int64, error)
	// CountByStatus conta visitas no status indicado.
	CountByStatus(ctx context.Context, status entity.Status) (int64, error)
	// CountVisitorsInside conta visitas approved ainda sem exit_time.
	CountVisitorsInside(ctx context.Context) (int64, error)
	// RecentVisits retorna as limit visitas mais recentes (entry_time desc).
	RecentVisits(ctx context.Context, limit int) ([]*entity.Visit, error)
}
