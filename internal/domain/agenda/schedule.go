// Package agenda contém as projeções puras da agenda: agrupamento de
// agendamentos por dia e rotulagem relativa de datas.
//
// As funções não tocam banco nem relógio global; recebem os dados e o "agora"
// e podem ser reexecutadas com qualquer snapshot, em qualquer ordem.
package agenda

import (
	"fmt"
	"sort"
	"time"

	"github.com/nubiasantos/salao-api/internal/domain/entity"
)

// DaySection é um balde de agendamentos de um mesmo dia civil.
type DaySection struct {
	// Date é a meia-noite do dia no fuso do salão.
	Date time.Time
	// Items em ordem ascendente de horário; empates preservam a ordem de entrada.
	Items []entity.Appointment
}

// GroupByDay particiona agendamentos em seções ordenadas por dia ascendente,
// com itens ordenados por horário ascendente dentro de cada seção.
// A ordenação é estável: agendamentos no mesmo instante mantêm a ordem recebida.
func GroupByDay(items []entity.Appointment, loc *time.Location) []DaySection {
	if len(items) == 0 {
		return nil
	}

	sorted := make([]entity.Appointment, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartsAt.Before(sorted[j].StartsAt)
	})

	var sections []DaySection
	for _, a := range sorted {
		day := Midnight(a.StartsAt.In(loc))
		if n := len(sections); n > 0 && sections[n-1].Date.Equal(day) {
			sections[n-1].Items = append(sections[n-1].Items, a)
			continue
		}
		sections = append(sections, DaySection{Date: day, Items: []entity.Appointment{a}})
	}
	return sections
}

// Midnight devolve a meia-noite do dia civil de t, no fuso de t.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

var (
	weekdays = [...]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}
	months   = [...]string{
		"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
		"Jul", "Ago", "Set", "Out", "Nov", "Dez",
	}
)

// DayLabel mapeia uma data para um rótulo relativo: "Hoje", "Amanhã" ou
// "Seg, 2 de Jan". É função pura de (date, now); datas são comparadas pelo
// dia civil no fuso de now.
func DayLabel(date, now time.Time) string {
	day := Midnight(date.In(now.Location()))
	today := Midnight(now)

	switch {
	case day.Equal(today):
		return "Hoje"
	case day.Equal(today.AddDate(0, 0, 1)):
		return "Amanhã"
	}
	return fmt.Sprintf("%s, %d de %s", weekdays[day.Weekday()], day.Day(), months[day.Month()-1])
}
