package entity

import "time"

// Appointment representa um agendamento da agenda do salão.
//
// StartsAt é o único valor de tempo canônico: data e hora informadas pela
// cliente são normalizadas uma única vez na fronteira de escrita, no fuso do
// salão. Toda ordenação e agrupamento opera sobre ele.
type Appointment struct {
	ID         string
	ClientName string
	Service    string
	Notes      string
	StartsAt   time.Time
	CreatedAt  time.Time
}
