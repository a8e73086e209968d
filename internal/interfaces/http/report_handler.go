package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/nubiasantos/salao-api/internal/application/dto"
	"github.com/nubiasantos/salao-api/internal/application/report"
	"github.com/nubiasantos/salao-api/internal/domain"
)

// ReportHandler gera o relatório financeiro mensal em PDF.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler constrói o handler de relatórios.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Monthly godoc
// @Summary      Relatório mensal em PDF
// @Tags         relatorios
// @Produce      application/pdf
// @Param        ano  query  int  true  "ano do relatório"
// @Param        mes  query  int  true  "mês do relatório (1-12)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/relatorios/mensal [get]
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Query("ano"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ano deve ser um inteiro"})
	}
	month, err := strconv.Atoi(c.Query("mes"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "mes deve ser um inteiro"})
	}

	pdfBytes, err := h.uc.Monthly(c.Context(), year, month)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=relatorio-%04d-%02d.pdf", year, month))
	return c.Send(pdfBytes)
}
