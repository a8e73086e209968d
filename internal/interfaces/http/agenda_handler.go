package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nubiasantos/salao-api/internal/application/agenda"
	"github.com/nubiasantos/salao-api/internal/application/dto"
	"github.com/nubiasantos/salao-api/internal/domain"
)

// AgendaHandler trata a visão da agenda e os comandos de agendamento.
type AgendaHandler struct {
	uc *agenda.UseCase
}

// NewAgendaHandler constrói o handler da agenda.
func NewAgendaHandler(uc *agenda.UseCase) *AgendaHandler {
	return &AgendaHandler{uc: uc}
}

// headerConfirmer confirma ações destrutivas via header X-Confirmar.
// O cliente repete a chamada com `X-Confirmar: sim` após receber 428.
type headerConfirmer struct {
	c *fiber.Ctx
}

func (h headerConfirmer) Confirm(_ string) bool {
	switch h.c.Get("X-Confirmar") {
	case "sim", "true", "1":
		return true
	}
	return false
}

// View godoc
// @Summary      Agenda agrupada por dia
// @Tags         agenda
// @Produce      json
// @Success      200  {object}  dto.AgendaViewDTO
// @Router       /api/agenda [get]
func (h *AgendaHandler) View(c *fiber.Ctx) error {
	out, err := h.uc.View(c.Context(), time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Criar agendamento
// @Tags         agenda
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAppointmentRequest  true  "nome, data, hora, servico"
// @Success      201   {object}  dto.AppointmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/agenda [post]
func (h *AgendaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAppointmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "agendamento já existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Excluir agendamento
// @Tags         agenda
// @Produce      json
// @Param        id  path  string  true  "id do agendamento"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      428  {object}  dto.ErrorResponse
// @Router       /api/agenda/{id} [delete]
func (h *AgendaHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	err := h.uc.Delete(c.Context(), id, headerConfirmer{c: c})
	if err != nil {
		if errors.Is(err, domain.ErrConfirmationRequired) {
			return c.Status(fiber.StatusPreconditionRequired).JSON(dto.ErrorResponse{
				Code:    "CONFIRMATION_REQUIRED",
				Message: "repita a chamada com o header X-Confirmar: sim",
			})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "agendamento não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "agendamento excluído"})
}
