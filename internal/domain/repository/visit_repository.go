package repository

import (
	"context"
	"time"

	"github.com/guardiao/guardiao-api/internal/domain/entity"
)

// VisitStatusUpdate campos de uma atualização parcial de visita.
// Somente os ponteiros não-nil entram no UPDATE; o restante do documento
// não é sobrescrito.
type VisitStatusUpdate struct {
	Status     *entity.Status
	Notes      *string
	ApprovedBy *string
	ExitTime   *time.Time
}

// VisitRepository define o porto de persistência para Visit.
type VisitRepository interface {
	Create(ctx context.Context, visit *entity.Visit) error
	FindByID(ctx context.Context, id string) (*entity.Visit, error)
	// List retorna as visitas mais recentes primeiro (entry_time desc), até limit.
	List(ctx context.Context, limit int) ([]*entity.Visit, error)
	// UpdateFields aplica uma atualização parcial sobre a visita indicada.
	UpdateFields(ctx context.Context, id string, upd VisitStatusUpdate) error
	Delete(ctx context.Context, id string) error
}
