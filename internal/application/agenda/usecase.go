// Package agenda implementa os comandos e a visão da agenda: criar e excluir
// agendamentos, listar agrupado por dia e manter o feed vivo atualizado.
package agenda

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nubiasantos/salao-api/internal/application/dto"
	"github.com/nubiasantos/salao-api/internal/cache"
	"github.com/nubiasantos/salao-api/internal/domain"
	domagenda "github.com/nubiasantos/salao-api/internal/domain/agenda"
	"github.com/nubiasantos/salao-api/internal/domain/entity"
	"github.com/nubiasantos/salao-api/internal/domain/repository"
	"github.com/nubiasantos/salao-api/internal/livequery"
)

// Chave da visão agrupada no cache de snapshots. As escritas a invalidam.
const viewCacheKey = "agenda_view"

// Confirmer abstrai a intenção de confirmação da usuária (o diálogo bloqueante
// sim/não do app). O comando de exclusão só prossegue se Confirm devolver true.
type Confirmer interface {
	Confirm(prompt string) bool
}

// UseCase casos de uso da agenda.
type UseCase struct {
	repo repository.AppointmentRepository
	feed *livequery.Feed[entity.Appointment]
	view *cache.LRU[dto.AgendaViewDTO]
	loc  *time.Location
}

// NewUseCase constrói o caso de uso. loc é o fuso do salão, usado para
// normalizar data+hora no instante canônico na fronteira de escrita.
func NewUseCase(repo repository.AppointmentRepository, feed *livequery.Feed[entity.Appointment], view *cache.LRU[dto.AgendaViewDTO], loc *time.Location) *UseCase {
	return &UseCase{repo: repo, feed: feed, view: view, loc: loc}
}

// Create valida os campos obrigatórios, normaliza data+hora e persiste.
// O feed reflete o novo estado; não existe atualização otimista local.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if in.Nome == "" || in.Data == "" || in.Hora == "" || in.Servico == "" {
		return nil, fmt.Errorf("%w: nome, data, hora e servico são obrigatórios", domain.ErrInvalidInput)
	}

	startsAt, err := time.ParseInLocation("2006-01-02 15:04", in.Data+" "+in.Hora, uc.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: data deve ser YYYY-MM-DD e hora HH:MM", domain.ErrInvalidInput)
	}

	a := &entity.Appointment{
		ID:         uuid.New().String(),
		ClientName: in.Nome,
		Service:    in.Servico,
		Notes:      in.Observacoes,
		StartsAt:   startsAt,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	uc.view.Delete(viewCacheKey)
	uc.Refresh(ctx)

	resp := uc.toResponse(*a)
	return &resp, nil
}

// Delete exclui um agendamento após confirmação explícita.
// ID inexistente resolve para domain.ErrNotFound, nunca derruba o chamador.
func (uc *UseCase) Delete(ctx context.Context, id string, confirm Confirmer) error {
	if !confirm.Confirm("Deseja realmente excluir este agendamento?") {
		return domain.ErrConfirmationRequired
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.view.Delete(viewCacheKey)
	uc.Refresh(ctx)
	return nil
}

// View devolve a agenda agrupada por dia, servida do cache de snapshots
// quando possível.
func (uc *UseCase) View(ctx context.Context, now time.Time) (dto.AgendaViewDTO, error) {
	if v, ok := uc.view.Get(viewCacheKey); ok {
		return v, nil
	}

	items, err := uc.repo.List(ctx)
	if err != nil {
		return dto.AgendaViewDTO{}, err
	}

	v := uc.Project(items, now)
	uc.view.Set(viewCacheKey, v)
	return v, nil
}

// Project transforma um snapshot de agendamentos no modelo de visão agrupado.
// Função de projeção pura sobre (snapshot, now); segura para reexecução a
// cada snapshot do feed.
func (uc *UseCase) Project(items []entity.Appointment, now time.Time) dto.AgendaViewDTO {
	sections := domagenda.GroupByDay(items, uc.loc)

	v := dto.AgendaViewDTO{Total: len(items)}
	for _, sec := range sections {
		s := dto.AgendaSectionDTO{
			Data:   sec.Date.Format("2006-01-02"),
			Rotulo: domagenda.DayLabel(sec.Date, now.In(uc.loc)),
		}
		for _, a := range sec.Items {
			s.Agendamentos = append(s.Agendamentos, uc.toResponse(a))
		}
		v.Secoes = append(v.Secoes, s)
	}
	return v
}

// Refresh reconsulta o conjunto completo e publica no feed. Falha de consulta
// vira snapshot de erro; assinantes saem do estado de carregamento e não há
// reconexão automática.
func (uc *UseCase) Refresh(ctx context.Context) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		uc.feed.Fail(err)
		return
	}
	uc.feed.Publish(items)
}

// Feed expõe o feed de agendamentos para os assinantes (stream SSE).
func (uc *UseCase) Feed() *livequery.Feed[entity.Appointment] {
	return uc.feed
}

func (uc *UseCase) toResponse(a entity.Appointment) dto.AppointmentResponse {
	local := a.StartsAt.In(uc.loc)
	return dto.AppointmentResponse{
		ID:          a.ID,
		Nome:        a.ClientName,
		Data:        local.Format("2006-01-02"),
		Hora:        local.Format("15:04"),
		Servico:     a.Service,
		Observacoes: a.Notes,
	}
}
