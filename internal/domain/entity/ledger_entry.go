package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Formas de pagamento reconhecidas para receitas.
const (
	MethodPix  = "pix"
	MethodCash = "dinheiro"
	MethodCard = "cartao"
)

// KnownMethod informa se a forma de pagamento pertence ao conjunto fixo.
func KnownMethod(m string) bool {
	return m == MethodPix || m == MethodCash || m == MethodCard
}

// LedgerEntry representa um lançamento financeiro (receita ou despesa).
//
// Um lançamento carrega exatamente um dos dois valores; ambos são sempre
// não negativos. Lançamentos nunca são editados nem excluídos.
type LedgerEntry struct {
	ID            string
	Income        decimal.Decimal
	Expense       decimal.Decimal
	PaymentMethod string // vazio em despesas e em registros legados
	Description   string
	RecordedAt    time.Time
}
