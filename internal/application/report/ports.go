package report

import (
	"context"
	"time"

	"github.com/nubiasantos/salao-api/internal/domain/entity"
	"github.com/nubiasantos/salao-api/internal/domain/finance"
)

// MonthlyReport dados completos do relatório mensal, prontos para renderizar.
type MonthlyReport struct {
	Year  int
	Month time.Month

	Summary finance.Summary
	Entries []entity.LedgerEntry // lançamentos do mês, mais antigos primeiro

	AppointmentCount int // agendamentos do mês
	GeneratedAt      time.Time
}

// Generator porto de renderização do relatório (PDF na infraestrutura).
type Generator interface {
	GenerateMonthly(ctx context.Context, data *MonthlyReport) ([]byte, error)
}
