package repository

import (
	"context"
	"time"

	"github.com/nubiasantos/salao-api/internal/domain/entity"
)

// LedgerRepository define o porto de persistência para LedgerEntry.
// Lançamentos não têm fluxo de edição nem exclusão.
type LedgerRepository interface {
	Create(ctx context.Context, e *entity.LedgerEntry) error
	// List devolve todos os lançamentos ordenados por recorded_at descendente.
	List(ctx context.Context) ([]entity.LedgerEntry, error)
	// Recent devolve os lançamentos mais novos, limitados a limit.
	Recent(ctx context.Context, limit int) ([]entity.LedgerEntry, error)
	// ListBetween devolve lançamentos no intervalo [from, to), mais antigos primeiro.
	ListBetween(ctx context.Context, from, to time.Time) ([]entity.LedgerEntry, error)
	// Empty informa se a coleção não tem nenhum documento (sonda de existência).
	Empty(ctx context.Context) (bool, error)
}
