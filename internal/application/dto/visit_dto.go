package dto

import (
	"time"

	"github.com/guardiao/guardiao-api/internal/domain/entity"
)

// CreateVisitRequest entrada para registrar a chegada de um visitante.
type CreateVisitRequest struct {
	VisitorName     string  `json:"visitor_name" validate:"required,min=1,max=200"`
	VisitorDocument string  `json:"visitor_document" validate:"required,min=1,max=50"`
	Destination     string  `json:"destination" validate:"required,min=1,max=50"`
	Purpose         string  `json:"purpose" validate:"required,min=1,max=500"`
	Notes           *string `json:"notes" validate:"omitempty,max=1000"`
}

// UpdateVisitRequest entrada da decisão sobre uma visita (PUT /visits/:id).
type UpdateVisitRequest struct {
	Status string  `json:"status" validate:"required,oneof=pending approved denied completed"`
	Notes  *string `json:"notes" validate:"omitempty,max=1000"`
}

// VisitResponse saída de uma visita.
type VisitResponse struct {
	ID              string     `json:"id"`
	VisitorName     string     `json:"visitor_name"`
	VisitorDocument string     `json:"visitor_document"`
	Destination     string     `json:"destination"`
	Purpose         string     `json:"purpose"`
	EntryTime       time.Time  `json:"entry_time"`
	ExitTime        *time.Time `json:"exit_time"`
	Status          string     `json:"status"`
	ApprovedBy      *string    `json:"approved_by"`
	Notes           *string    `json:"notes"`
	CreatedBy       string     `json:"created_by"`
}

// NewVisitResponse converte a entidade para o DTO de saída.
func NewVisitResponse(v *entity.Visit) *VisitResponse {
	if v == nil {
		return nil
	}
	return &VisitResponse{
		ID:              v.ID,
		VisitorName:     v.VisitorName,
		VisitorDocument: v.VisitorDocument,
		Destination:     v.Destination,
		Purpose:         v.Purpose,
		EntryTime:       v.EntryTime,
		ExitTime:        v.ExitTime,
		Status:          string(v.Status),
		ApprovedBy:      v.ApprovedBy,
		Notes:           v.Notes,
		CreatedBy:       v.CreatedBy,
	}
}

// NewVisitResponseList converte uma lista de entidades.
func NewVisitResponseList(visits []*entity.Visit) []VisitResponse {
	out := make([]VisitResponse, 0, len(visits))
	for _, v := range visits {
		out = append(out, *NewVisitResponse(v))
	}
	return out
}
