package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nubiasantos/salao-api/internal/application/dto"
	"github.com/nubiasantos/salao-api/internal/application/finance"
)

// DashboardHandler expõe o resumo financeiro do dia.
type DashboardHandler struct {
	uc *finance.UseCase
}

// NewDashboardHandler constrói o handler do dashboard.
func NewDashboardHandler(uc *finance.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Get godoc
// @Summary      Resumo financeiro e agendamentos de hoje
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardDTO
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
