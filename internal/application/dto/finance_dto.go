package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de lançamento aceitos por CreateLedgerEntryRequest.
const (
	TipoReceita = "receita"
	TipoDespesa = "despesa"
)

// CreateLedgerEntryRequest corpo de POST /api/financeiro.
// Esquema canônico: tipo explícito + valor único; o servidor resolve para as
// colunas receita/despesa (o par `tipo`+`valor` das revisões antigas e os
// campos separados das novas convergem aqui).
type CreateLedgerEntryRequest struct {
	Tipo           string `json:"tipo"`  // "receita" | "despesa"
	Valor          string `json:"valor"` // decimal, aceita vírgula ou ponto
	FormaPagamento string `json:"forma_pagamento,omitempty"`
	Descricao      string `json:"descricao"`
}

// LedgerEntryResponse um lançamento no formato que o app consome.
type LedgerEntryResponse struct {
	ID             string          `json:"id"`
	Receita        decimal.Decimal `json:"receita"`
	Despesa        decimal.Decimal `json:"despesa"`
	FormaPagamento string          `json:"forma_pagamento,omitempty"`
	Descricao      string          `json:"descricao"`
	RegistradoEm   time.Time       `json:"registrado_em"`
}

// DashboardDTO resposta de GET /api/dashboard: totais agregados sobre todos
// os lançamentos mais o recorte de receitas por forma de pagamento.
// Valores arredondados a duas casas apenas aqui, na apresentação.
type DashboardDTO struct {
	Receita decimal.Decimal `json:"receita"`
	Despesa decimal.Decimal `json:"despesa"`
	Lucro   decimal.Decimal `json:"lucro"`

	Pix      decimal.Decimal `json:"pix"`
	Dinheiro decimal.Decimal `json:"dinheiro"`
	Cartao   decimal.Decimal `json:"cartao"`

	// Rótulos prontos para exibição ("R$ 1.234,56").
	ReceitaFormatada string `json:"receita_formatada"`
	DespesaFormatada string `json:"despesa_formatada"`
	LucroFormatado   string `json:"lucro_formatado"`

	AgendamentosHoje int `json:"agendamentos_hoje"`
}
