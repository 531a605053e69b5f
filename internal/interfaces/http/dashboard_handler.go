package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/guardiao/guardiao-api/internal/application/analytics"
	"github.com/guardiao/guardiao-api/internal/application/dto"
)

// DashboardHandler maneja os endpoints do painel da portaria.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats devolve os contadores do dia e as visitas recentes.
// GET /api/dashboard/stats
//
// Resposta: DashboardStatsDTO (visits_today, pending_visits, visitors_inside,
// recent_visits[10]). Sem parâmetros; as datas são calculadas no servidor.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(stats)
}
