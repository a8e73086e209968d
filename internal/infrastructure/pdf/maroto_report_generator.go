// Package pdf implementa a renderização do relatório financeiro mensal
// (exportReport) com Maroto v2.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nome do salão  │  Mês de referência                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMO: Receita / Despesa / Lucro                          │
//	│  RECEITAS POR FORMA: Pix / Dinheiro / Cartão                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Data | Descrição | Forma | Receita | Despesa       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RODAPÉ: agendamentos no mês + data de geração              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/nubiasantos/salao-api/internal/application/report"
	"github.com/nubiasantos/salao-api/internal/domain/entity"
	"github.com/nubiasantos/salao-api/internal/domain/money"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 214, Green: 51, Blue: 132}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.Generator usando Maroto v2.
type MarotoReportGenerator struct {
	salonName string
}

// NewMarotoReportGenerator constrói o gerador. salonName aparece no cabeçalho.
func NewMarotoReportGenerator(salonName string) *MarotoReportGenerator {
	return &MarotoReportGenerator{salonName: salonName}
}

var _ report.Generator = (*MarotoReportGenerator)(nil)

// GenerateMonthly gera o PDF do relatório e devolve seus bytes.
func (g *MarotoReportGenerator) GenerateMonthly(_ context.Context, data *report.MonthlyReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório Financeiro Mensal", true).
		WithAuthor(g.salonName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.salonName, data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(data)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, e := range data.Entries {
		m.AddRows(entryRow(e))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

func monthLabel(data *report.MonthlyReport) string {
	return fmt.Sprintf("%s %d", monthNames[data.Month-1], data.Year)
}

// headerRow: nome do salão (esq) e mês de referência (dir).
func headerRow(salonName string, data *report.MonthlyReport) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(salonName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Relatório Financeiro", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(monthLabel(data), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 4,
			}),
		),
	)
}

// summaryRows: totais e receitas por forma de pagamento.
func summaryRows(data *report.MonthlyReport) []core.Row {
	s := data.Summary
	totals := row.New(10).Add(
		summaryCell("Receita", money.FormatBRL(s.Income.Round(2))),
		summaryCell("Despesa", money.FormatBRL(s.Expense.Round(2))),
		summaryCell("Lucro", money.FormatBRL(s.Profit.Round(2))),
	)
	byMethod := row.New(10).Add(
		summaryCell("Pix", money.FormatBRL(s.Pix.Round(2))),
		summaryCell("Dinheiro", money.FormatBRL(s.Cash.Round(2))),
		summaryCell("Cartão", money.FormatBRL(s.Card.Round(2))),
	)
	return []core.Row{totals, byMethod}
}

func summaryCell(label, value string) core.Col {
	return col.New(4).Add(
		text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1}),
		text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 5}),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	return row.New(7).Add(
		col.New(2).Add(text.New("Data", header)),
		col.New(4).Add(text.New("Descrição", header)),
		col.New(2).Add(text.New("Forma", header)),
		col.New(2).Add(text.New("Receita", mergeAlign(header, align.Right))),
		col.New(2).Add(text.New("Despesa", mergeAlign(header, align.Right))),
	)
}

func entryRow(e entity.LedgerEntry) core.Row {
	cell := props.Text{Size: 8, Top: 1}
	receita := ""
	if !e.Income.IsZero() {
		receita = money.FormatBRL(e.Income.Round(2))
	}
	despesa := ""
	if !e.Expense.IsZero() {
		despesa = money.FormatBRL(e.Expense.Round(2))
	}
	return row.New(6).Add(
		col.New(2).Add(text.New(e.RecordedAt.Format("02/01/2006"), cell)),
		col.New(4).Add(text.New(e.Description, cell)),
		col.New(2).Add(text.New(methodLabel(e.PaymentMethod), cell)),
		col.New(2).Add(text.New(receita, mergeAlign(cell, align.Right))),
		col.New(2).Add(text.New(despesa, mergeAlign(cell, align.Right))),
	)
}

func footerRow(data *report.MonthlyReport) core.Row {
	return row.New(8).Add(
		col.New(8).Add(
			text.New(fmt.Sprintf("Agendamentos no mês: %d", data.AppointmentCount), props.Text{
				Size: 8, Color: colorGray, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Gerado em "+data.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Color: colorGray, Align: align.Right, Top: 2,
			}),
		),
	)
}

func methodLabel(method string) string {
	switch method {
	case entity.MethodPix:
		return "Pix"
	case entity.MethodCash:
		return "Dinheiro"
	case entity.MethodCard:
		return "Cartão"
	}
	return "-"
}

func mergeAlign(p props.Text, a align.Type) props.Text {
	p.Align = a
	return p
}
