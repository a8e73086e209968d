// Package finance contém a agregação pura dos lançamentos financeiros.
package finance

import (
	"github.com/shopspring/decimal"

	"github.com/nubiasantos/salao-api/internal/domain/entity"
)

// Summary é o modelo de visão do dashboard financeiro.
//
// Os valores acumulam sem arredondamento; a apresentação arredonda para duas
// casas só na ponta.
type Summary struct {
	Income  decimal.Decimal // soma de todas as receitas
	Expense decimal.Decimal // soma de todas as despesas
	Profit  decimal.Decimal // Income - Expense

	// Receitas particionadas pelas três formas de pagamento conhecidas.
	// Lançamentos com forma desconhecida ou vazia contam no total mas não
	// entram em nenhum balde.
	Pix  decimal.Decimal
	Cash decimal.Decimal
	Card decimal.Decimal
}

// Summarize agrega todos os lançamentos num único passe.
func Summarize(entries []entity.LedgerEntry) Summary {
	var s Summary
	for _, e := range entries {
		s.Income = s.Income.Add(e.Income)
		s.Expense = s.Expense.Add(e.Expense)

		switch e.PaymentMethod {
		case entity.MethodPix:
			s.Pix = s.Pix.Add(e.Income)
		case entity.MethodCash:
			s.Cash = s.Cash.Add(e.Income)
		case entity.MethodCard:
			s.Card = s.Card.Add(e.Income)
		}
	}
	s.Profit = s.Income.Sub(s.Expense)
	return s
}
