// Package report monta o relatório financeiro mensal e delega a renderização
// ao gerador injetado (exportReport).
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/nubiasantos/salao-api/internal/domain"
	"github.com/nubiasantos/salao-api/internal/domain/finance"
	"github.com/nubiasantos/salao-api/internal/domain/repository"
)

// UseCase caso de uso de relatórios.
type UseCase struct {
	ledger       repository.LedgerRepository
	appointments repository.AppointmentRepository
	generator    Generator
	loc          *time.Location
}

// NewUseCase constrói o caso de uso de relatórios.
func NewUseCase(ledger repository.LedgerRepository, appointments repository.AppointmentRepository, generator Generator, loc *time.Location) *UseCase {
	return &UseCase{ledger: ledger, appointments: appointments, generator: generator, loc: loc}
}

// Monthly gera o PDF do relatório do mês indicado (1-12).
func (uc *UseCase) Monthly(ctx context.Context, year int, month int) ([]byte, error) {
	if month < 1 || month > 12 || year < 2000 {
		return nil, fmt.Errorf("%w: ano e mês inválidos", domain.ErrInvalidInput)
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, uc.loc)
	to := from.AddDate(0, 1, 0)

	entries, err := uc.ledger.ListBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("relatório: lançamentos do mês: %w", err)
	}
	count, err := uc.appointments.CountBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("relatório: agendamentos do mês: %w", err)
	}

	data := &MonthlyReport{
		Year:             year,
		Month:            time.Month(month),
		Summary:          finance.Summarize(entries),
		Entries:          entries,
		AppointmentCount: count,
		GeneratedAt:      time.Now().In(uc.loc),
	}

	pdf, err := uc.generator.GenerateMonthly(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("relatório: renderizar PDF: %w", err)
	}
	return pdf, nil
}
