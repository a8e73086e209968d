package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/nubiasantos/salao-api/internal/domain"
	"github.com/nubiasantos/salao-api/internal/domain/entity"
	"github.com/nubiasantos/salao-api/internal/domain/repository"
)

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

// AppointmentRepo implementação de AppointmentRepository (usável com pool ou tx).
type AppointmentRepo struct {
	q Querier
}

// NewAppointmentRepository constrói o adaptador.
func NewAppointmentRepository(q Querier) *AppointmentRepo {
	return &AppointmentRepo{q: q}
}

// Create persiste um novo agendamento.
func (r *AppointmentRepo) Create(ctx context.Context, a *entity.Appointment) error {
	query := `
		INSERT INTO appointments (id, client_name, service, notes, starts_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.ClientName, a.Service, a.Notes, a.StartsAt, a.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

// List devolve todos os agendamentos em ordem cronológica ascendente.
// A ordenação pedida é responsabilidade do banco; o cliente não assume nada
// além dela.
func (r *AppointmentRepo) List(ctx context.Context) ([]entity.Appointment, error) {
	query := `
		SELECT id, client_name, service, notes, starts_at, created_at
		FROM appointments ORDER BY starts_at, created_at`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	var list []entity.Appointment
	for rows.Next() {
		var a entity.Appointment
		if err := rows.Scan(&a.ID, &a.ClientName, &a.Service, &a.Notes, &a.StartsAt, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// CountBetween conta agendamentos no intervalo [from, to).
func (r *AppointmentRepo) CountBetween(ctx context.Context, from, to time.Time) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM appointments WHERE starts_at >= $1 AND starts_at < $2`,
		from, to,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count appointments: %w", err)
	}
	return n, nil
}

// Delete remove por ID; ID inexistente devolve domain.ErrNotFound.
func (r *AppointmentRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Empty sonda a existência de algum documento com uma consulta de custo mínimo.
func (r *AppointmentRepo) Empty(ctx context.Context) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM appointments)`).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("probe appointments: %w", err)
	}
	return !exists, nil
}
