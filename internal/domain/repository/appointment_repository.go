package repository

import (
	"context"
	"time"

	"github.com/nubiasantos/salao-api/internal/domain/entity"
)

// AppointmentRepository define o porto de persistência para Appointment.
type AppointmentRepository interface {
	Create(ctx context.Context, a *entity.Appointment) error
	// List devolve todos os agendamentos ordenados por starts_at ascendente.
	List(ctx context.Context) ([]entity.Appointment, error)
	// CountBetween conta agendamentos no intervalo [from, to).
	CountBetween(ctx context.Context, from, to time.Time) (int, error)
	// Delete remove por ID. Devolve domain.ErrNotFound se o ID não existir.
	Delete(ctx context.Context, id string) error
	// Empty informa se a coleção não tem nenhum documento (sonda de existência).
	Empty(ctx context.Context) (bool, error)
}
