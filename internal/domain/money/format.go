// Package money formata valores monetários em Real brasileiro.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL formata um valor como "R$ 1.234,56": ponto como separador de
// milhar, vírgula como separador decimal, sempre duas casas.
// Valores negativos saem como "R$ -1.234,56".
func FormatBRL(d decimal.Decimal) string {
	s := d.StringFixed(2) // ex.: "-1234.56"

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString("R$ ")
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}

// ParseAmount interpreta um valor monetário digitado pela usuária, aceitando
// vírgula ou ponto como separador decimal (ex.: "40,00" ou "40.00").
// Devolve erro do decimal para formatos inválidos.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	// entrada brasileira usa vírgula; normaliza para o parser do decimal
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", ".")
	}
	return decimal.NewFromString(s)
}
