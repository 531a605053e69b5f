// Package visits contém o motor do ciclo de vida das visitas: criação,
// consulta, decisão (aprovar/negar/concluir) e remoção.
package visits

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/guardiao/guardiao-api/internal/application/dto"
	"github.com/guardiao/guardiao-api/internal/domain"
	"github.com/guardiao/guardiao-api/internal/domain/entity"
	"github.com/guardiao/guardiao-api/internal/domain/repository"
)

// listLimit teto de registros devolvidos pela listagem.
const listLimit = 1000

// UseCase casos de uso do ciclo de vida de visitas.
type UseCase struct {
	visitRepo repository.VisitRepository
}

// NewUseCase constrói o caso de uso de visitas.
func NewUseCase(visitRepo repository.VisitRepository) *UseCase {
	return &UseCase{visitRepo: visitRepo}
}

// Create registra a chegada de um visitante. A visita nasce pending, com
// entry_time=now e created_by do usuário autenticado; approved_by e exit_time
// só existem após as transições correspondentes.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateVisitRequest, createdBy string) (*dto.VisitResponse, error) {
	visit := &entity.Visit{
		ID:              uuid.New().String(),
		VisitorName:     in.VisitorName,
		VisitorDocument: in.VisitorDocument,
		Destination:     in.Destination,
		Purpose:         in.Purpose,
		EntryTime:       time.Now().UTC(),
		Status:          entity.StatusPending,
		Notes:           in.Notes,
		CreatedBy:       createdBy,
	}
	if err := uc.visitRepo.Create(ctx, visit); err != nil {
		return nil, err
	}
	return dto.NewVisitResponse(visit), nil
}

// List devolve as visitas mais recentes primeiro, até 1000 registros.
func (uc *UseCase) List(ctx context.Context) ([]dto.VisitResponse, error) {
	visits, err := uc.visitRepo.List(ctx, listLimit)
	if err != nil {
		return nil, err
	}
	return dto.NewVisitResponseList(visits), nil
}

// Get devolve uma visita pelo ID. ErrVisitNotFound se não existir.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.VisitResponse, error) {
	visit, err := uc.visitRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if visit == nil {
		return nil, domain.ErrVisitNotFound
	}
	return dto.NewVisitResponse(visit), nil
}

// UpdateStatus aplica uma transição do ciclo de vida sobre a visita.
//
// Regras:
//   - approved/denied registram approved_by = usuário que decidiu;
//   - completed registra exit_time = now;
//   - transições fora do grafo (inclusive a partir de denied/completed)
//     falham com ErrInvalidTransition;
//   - o UPDATE é parcial: somente os campos enviados mais os efeitos
//     colaterais computados são persistidos.
//
// A visita devolvida é relida após a escrita; uma escrita concorrente entre o
// update e a releitura pode aparecer no resultado (leitura não transacional).
func (uc *UseCase) UpdateStatus(ctx context.Context, id string, newStatus entity.Status, notes *string, actorID string) (*dto.VisitResponse, error) {
	visit, err := uc.visitRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if visit == nil {
		return nil, domain.ErrVisitNotFound
	}
	if !visit.Status.CanTransitionTo(newStatus) {
		return nil, domain.ErrInvalidTransition
	}

	upd := repository.VisitStatusUpdate{
		Status: &newStatus,
		Notes:  notes,
	}
	switch newStatus {
	case entity.StatusApproved, entity.StatusDenied:
		upd.ApprovedBy = &actorID
	case entity.StatusCompleted:
		now := time.Now().UTC()
		upd.ExitTime = &now
	}

	if err := uc.visitRepo.UpdateFields(ctx, id, upd); err != nil {
		return nil, err
	}
	updated, err := uc.visitRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrVisitNotFound
	}
	return dto.NewVisitResponse(updated), nil
}

// Delete remove a visita de forma irrevogável. ErrVisitNotFound se o ID não
// existir. A restrição de papéis (Administrador/Síndico) é aplicada pelo
// middleware de autorização.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	visit, err := uc.visitRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if visit == nil {
		return domain.ErrVisitNotFound
	}
	return uc.visitRepo.Delete(ctx, id)
}
