package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/nubiasantos/salao-api/internal/domain"
	"github.com/nubiasantos/salao-api/internal/domain/entity"
	"github.com/nubiasantos/salao-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementação de LedgerRepository (usável com pool ou tx).
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository constrói o adaptador.
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// Create persiste um novo lançamento.
func (r *LedgerRepo) Create(ctx context.Context, e *entity.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (id, income, expense, payment_method, description, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Income, e.Expense, e.PaymentMethod, e.Description, e.RecordedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

const ledgerColumns = `id, income, expense, payment_method, description, recorded_at`

// List devolve todos os lançamentos, mais novos primeiro.
func (r *LedgerRepo) List(ctx context.Context) ([]entity.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries ORDER BY recorded_at DESC, id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	return scanEntries(rows)
}

// Recent devolve os limit lançamentos mais novos.
func (r *LedgerRepo) Recent(ctx context.Context, limit int) ([]entity.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries ORDER BY recorded_at DESC, id LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent ledger entries: %w", err)
	}
	return scanEntries(rows)
}

// ListBetween devolve lançamentos no intervalo [from, to), mais antigos primeiro.
func (r *LedgerRepo) ListBetween(ctx context.Context, from, to time.Time) ([]entity.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + `
		FROM ledger_entries
		WHERE recorded_at >= $1 AND recorded_at < $2
		ORDER BY recorded_at, id`
	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries between: %w", err)
	}
	return scanEntries(rows)
}

// Empty sonda a existência de algum documento com uma consulta de custo mínimo.
func (r *LedgerRepo) Empty(ctx context.Context) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM ledger_entries)`).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("probe ledger entries: %w", err)
	}
	return !exists, nil
}

func scanEntries(rows pgx.Rows) ([]entity.LedgerEntry, error) {
	defer rows.Close()
	var list []entity.LedgerEntry
	for rows.Next() {
		var e entity.LedgerEntry
		if err := rows.Scan(&e.ID, &e.Income, &e.Expense, &e.PaymentMethod, &e.Description, &e.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
