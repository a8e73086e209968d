// Package bootstrap garante que as coleções existam na inicialização,
// criando um documento padrão quando estiverem vazias.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nubiasantos/salao-api/internal/domain/entity"
	"github.com/nubiasantos/salao-api/internal/domain/repository"
)

// Seeder semeia as coleções vazias com seus documentos iniciais.
type Seeder struct {
	appointments repository.AppointmentRepository
	ledger       repository.LedgerRepository
	loc          *time.Location
}

// NewSeeder constrói o seeder.
func NewSeeder(appointments repository.AppointmentRepository, ledger repository.LedgerRepository, loc *time.Location) *Seeder {
	return &Seeder{appointments: appointments, ledger: ledger, loc: loc}
}

// EnsureSeeded sonda cada coleção uma única vez e insere o documento padrão
// quando vazia. Devolve quantos documentos foram criados.
func (s *Seeder) EnsureSeeded(ctx context.Context) (int, error) {
	created := 0

	empty, err := s.appointments.Empty(ctx)
	if err != nil {
		return created, fmt.Errorf("seed: sondar agendamentos: %w", err)
	}
	if empty {
		a := &entity.Appointment{
			ID:         uuid.New().String(),
			ClientName: "Inicial",
			Service:    "Inicial",
			StartsAt:   time.Date(2025, 1, 1, 0, 0, 0, 0, s.loc),
			CreatedAt:  time.Now(),
		}
		if err := s.appointments.Create(ctx, a); err != nil {
			return created, fmt.Errorf("seed: agendamento inicial: %w", err)
		}
		created++
	}

	empty, err = s.ledger.Empty(ctx)
	if err != nil {
		return created, fmt.Errorf("seed: sondar financeiro: %w", err)
	}
	if empty {
		e := &entity.LedgerEntry{
			ID:          uuid.New().String(),
			Income:      decimal.Zero,
			Description: "Inicial",
			RecordedAt:  time.Now().In(s.loc),
		}
		if err := s.ledger.Create(ctx, e); err != nil {
			return created, fmt.Errorf("seed: lançamento inicial: %w", err)
		}
		created++
	}

	return created, nil
}
