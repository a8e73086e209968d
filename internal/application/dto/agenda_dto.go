package dto

// CreateAppointmentRequest corpo de POST /api/agenda.
// Esquema canônico: "servico" e "observacoes" por extenso (as grafias `serv`
// e variantes das revisões antigas do app não são aceitas).
type CreateAppointmentRequest struct {
	Nome        string `json:"nome"`
	Data        string `json:"data"` // YYYY-MM-DD
	Hora        string `json:"hora"` // HH:MM
	Servico     string `json:"servico"`
	Observacoes string `json:"observacoes"`
}

// AppointmentResponse um agendamento no formato que o app consome.
// Data e hora são derivadas do instante canônico, no fuso do salão.
type AppointmentResponse struct {
	ID          string `json:"id"`
	Nome        string `json:"nome"`
	Data        string `json:"data"` // YYYY-MM-DD
	Hora        string `json:"hora"` // HH:MM
	Servico     string `json:"servico"`
	Observacoes string `json:"observacoes,omitempty"`
}

// AgendaSectionDTO um dia da agenda agrupada.
type AgendaSectionDTO struct {
	Data         string                `json:"data"`   // YYYY-MM-DD
	Rotulo       string                `json:"rotulo"` // "Hoje", "Amanhã", "Seg, 2 de Jan"
	Agendamentos []AppointmentResponse `json:"agendamentos"`
}

// AgendaViewDTO a agenda completa, agrupada por dia ascendente.
type AgendaViewDTO struct {
	Secoes []AgendaSectionDTO `json:"secoes"`
	Total  int                `json:"total"`
}
