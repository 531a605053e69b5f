// Package analytics contém o caso de uso do painel da portaria.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/guardiao/guardiao-api/internal/application/dto"
	"github.com/guardiao/guardiao-api/internal/domain/entity"
	"github.com/guardiao/guardiao-api/internal/domain/repository"
)

const dashboardRecentVisits = 10 // visitas no widget de recentes

// DashboardUseCase calcula os contadores do painel no momento da chamada.
//
// Fonte de dados: DashboardRepository (consultas read-only). Sem cache:
// cada chamada reexecuta as consultas sobre o estado atual da base.
type DashboardUseCase struct {
	dashRepo repository.DashboardRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(dashRepo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{dashRepo: dashRepo}
}

// GetStats monta o DashboardStatsDTO.
//
// Quatro chamadas em paralelo:
//  1. CountVisitsSince(meia-noite local) → VisitsToday
//  2. CountByStatus(pending)            → PendingVisits
//  3. CountVisitorsInside               → VisitorsInside
//  4. RecentVisits(10)                  → RecentVisits
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	type countResult struct {
		n   int64
		err error
	}
	type recentResult struct {
		visits []*entity.Visit
		err    error
	}

	todayCh := make(chan countResult, 1)
	pendingCh := make(chan countResult, 1)
	insideCh := make(chan countResult, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		n, err := uc.dashRepo.CountVisitsSince(ctx, midnight)
		todayCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.dashRepo.CountByStatus(ctx, entity.StatusPending)
		pendingCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.dashRepo.CountVisitorsInside(ctx)
		insideCh <- countResult{n, err}
	}()
	go func() {
		visits, err := uc.dashRepo.RecentVisits(ctx, dashboardRecentVisits)
		recentCh <- recentResult{visits, err}
	}()

	today := <-todayCh
	pending := <-pendingCh
	inside := <-insideCh
	recent := <-recentCh

	if today.err != nil {
		return nil, fmt.Errorf("dashboard: visitas de hoje: %w", today.err)
	}
	if pending.err != nil {
		return nil, fmt.Errorf("dashboard: visitas pendentes: %w", pending.err)
	}
	if inside.err != nil {
		return nil, fmt.Errorf("dashboard: visitantes dentro: %w", inside.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: visitas recentes: %w", recent.err)
	}

	return &dto.DashboardStatsDTO{
		VisitsToday:    today.n,
		PendingVisits:  pending.n,
		VisitorsInside: inside.n,
		RecentVisits:   dto.NewVisitResponseList(recent.visits),
	}, nil
}
