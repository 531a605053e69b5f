package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/guardiao/guardiao-api/internal/application/dto"
	"github.com/guardiao/guardiao-api/internal/application/visits"
	"github.com/guardiao/guardiao-api/internal/domain"
	"github.com/guardiao/guardiao-api/internal/domain/entity"
)

// VisitHandler maneja o CRUD do ciclo de vida de visitas.
type VisitHandler struct {
	uc *visits.UseCase
}

// NewVisitHandler constrói o handler de visitas.
func NewVisitHandler(uc *visits.UseCase) *VisitHandler {
	return &VisitHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar chegada de visitante
// @Tags         visits
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVisitRequest  true  "dados do visitante"
// @Success      200   {object}  dto.VisitResponse
// @Router       /api/visits [post]
func (h *VisitHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVisitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.VisitorName == "" || in.VisitorDocument == "" || in.Destination == "" || in.Purpose == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "visitor_name, visitor_document, destination e purpose são obrigatórios"})
	}
	visit, err := h.uc.Create(c.Context(), in, GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(visit)
}

// List godoc
// @Summary      Listar visitas (mais recentes primeiro, até 1000)
// @Tags         visits
// @Produce      json
// @Success      200   {array}  dto.VisitResponse
// @Router       /api/visits [get]
func (h *VisitHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Consultar uma visita
// @Tags         visits
// @Produce      json
// @Param        id   path      string  true  "ID da visita"
// @Success      200  {object}  dto.VisitResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/visits/{id} [get]
func (h *VisitHandler) GetByID(c *fiber.Ctx) error {
	visit, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrVisitNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Visita não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(visit)
}

// UpdateStatus godoc
// @Summary      Decidir sobre uma visita (aprovar, negar, concluir)
// @Tags         visits
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "ID da visita"
// @Param        body  body      dto.UpdateVisitRequest true  "status, notes?"
// @Success      200   {object}  dto.VisitResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/visits/{id} [put]
func (h *VisitHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateVisitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	status, ok := entity.ParseStatus(in.Status)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status inválido: use pending, approved, denied ou completed"})
	}
	visit, err := h.uc.UpdateStatus(c.Context(), c.Params("id"), status, in.Notes, GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrVisitNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Visita não encontrada"})
		}
		if errors.Is(err, domain.ErrInvalidTransition) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: "transição de status não permitida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(visit)
}

// Delete godoc
// @Summary      Remover uma visita (Administrador ou Síndico)
// @Tags         visits
// @Produce      json
// @Param        id   path      string  true  "ID da visita"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/visits/{id} [delete]
func (h *VisitHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrVisitNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Visita não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Visita deletada com sucesso"})
}
