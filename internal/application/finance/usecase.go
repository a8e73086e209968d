// Package finance implementa o lançamento financeiro e o dashboard de totais.
package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nubiasantos/salao-api/internal/application/dto"
	"github.com/nubiasantos/salao-api/internal/domain"
	domagenda "github.com/nubiasantos/salao-api/internal/domain/agenda"
	"github.com/nubiasantos/salao-api/internal/domain/entity"
	domfinance "github.com/nubiasantos/salao-api/internal/domain/finance"
	"github.com/nubiasantos/salao-api/internal/domain/money"
	"github.com/nubiasantos/salao-api/internal/domain/repository"
	"github.com/nubiasantos/salao-api/internal/livequery"
)

// Lançamentos exibidos por padrão no feed de recentes.
const defaultRecentLimit = 20

// UseCase casos de uso financeiros.
type UseCase struct {
	ledger       repository.LedgerRepository
	appointments repository.AppointmentRepository
	feed         *livequery.Feed[entity.LedgerEntry]
	loc          *time.Location
}

// NewUseCase constrói o caso de uso financeiro.
func NewUseCase(ledger repository.LedgerRepository, appointments repository.AppointmentRepository, feed *livequery.Feed[entity.LedgerEntry], loc *time.Location) *UseCase {
	return &UseCase{ledger: ledger, appointments: appointments, feed: feed, loc: loc}
}

// Create valida e persiste um lançamento. Exatamente um dos dois valores
// (receita ou despesa) fica preenchido, sempre não negativo.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateLedgerEntryRequest) (*dto.LedgerEntryResponse, error) {
	if in.Valor == "" || in.Descricao == "" {
		return nil, fmt.Errorf("%w: valor e descricao são obrigatórios", domain.ErrInvalidInput)
	}

	amount, err := money.ParseAmount(in.Valor)
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: valor deve ser um número positivo", domain.ErrInvalidInput)
	}

	e := &entity.LedgerEntry{
		ID:          uuid.New().String(),
		Description: in.Descricao,
		RecordedAt:  time.Now().In(uc.loc),
	}

	switch in.Tipo {
	case dto.TipoReceita:
		if !entity.KnownMethod(in.FormaPagamento) {
			return nil, fmt.Errorf("%w: forma_pagamento deve ser pix, dinheiro ou cartao", domain.ErrInvalidInput)
		}
		e.Income = amount
		e.PaymentMethod = in.FormaPagamento
	case dto.TipoDespesa:
		e.Expense = amount
	default:
		return nil, fmt.Errorf("%w: tipo deve ser receita ou despesa", domain.ErrInvalidInput)
	}

	if err := uc.ledger.Create(ctx, e); err != nil {
		return nil, err
	}

	uc.Refresh(ctx)

	resp := toResponse(*e)
	return &resp, nil
}

// Dashboard agrega todos os lançamentos e conta os agendamentos do dia.
// As duas consultas correm em paralelo; os totais arredondam a duas casas
// só aqui, na montagem da resposta.
func (uc *UseCase) Dashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	now := time.Now().In(uc.loc)
	todayStart := domagenda.Midnight(now)
	todayEnd := todayStart.AddDate(0, 0, 1)

	type entriesResult struct {
		entries []entity.LedgerEntry
		err     error
	}
	type countResult struct {
		count int
		err   error
	}

	entriesCh := make(chan entriesResult, 1)
	countCh := make(chan countResult, 1)

	go func() {
		entries, err := uc.ledger.List(ctx)
		entriesCh <- entriesResult{entries, err}
	}()
	go func() {
		count, err := uc.appointments.CountBetween(ctx, todayStart, todayEnd)
		countCh <- countResult{count, err}
	}()

	entries := <-entriesCh
	count := <-countCh

	if entries.err != nil {
		return nil, fmt.Errorf("dashboard: lançamentos: %w", entries.err)
	}
	if count.err != nil {
		return nil, fmt.Errorf("dashboard: agendamentos de hoje: %w", count.err)
	}

	return projectDashboard(entries.entries, count.count), nil
}

// Recent devolve os lançamentos mais novos primeiro.
func (uc *UseCase) Recent(ctx context.Context, limit int) ([]dto.LedgerEntryResponse, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	entries, err := uc.ledger.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toResponse(e))
	}
	return out, nil
}

// Refresh reconsulta o conjunto completo e publica no feed.
func (uc *UseCase) Refresh(ctx context.Context) {
	entries, err := uc.ledger.List(ctx)
	if err != nil {
		uc.feed.Fail(err)
		return
	}
	uc.feed.Publish(entries)
}

// Feed expõe o feed de lançamentos para os assinantes (stream SSE).
func (uc *UseCase) Feed() *livequery.Feed[entity.LedgerEntry] {
	return uc.feed
}

// ProjectDashboard deriva o dashboard de um snapshot do feed, sem nova
// consulta. A contagem de agendamentos não participa do snapshot e fica zero.
func ProjectDashboard(entries []entity.LedgerEntry) *dto.DashboardDTO {
	return projectDashboard(entries, 0)
}

func projectDashboard(entries []entity.LedgerEntry, todayCount int) *dto.DashboardDTO {
	s := domfinance.Summarize(entries)

	receita := s.Income.Round(2)
	despesa := s.Expense.Round(2)
	lucro := s.Profit.Round(2)

	return &dto.DashboardDTO{
		Receita:          receita,
		Despesa:          despesa,
		Lucro:            lucro,
		Pix:              s.Pix.Round(2),
		Dinheiro:         s.Cash.Round(2),
		Cartao:           s.Card.Round(2),
		ReceitaFormatada: money.FormatBRL(receita),
		DespesaFormatada: money.FormatBRL(despesa),
		LucroFormatado:   money.FormatBRL(lucro),
		AgendamentosHoje: todayCount,
	}
}

func toResponse(e entity.LedgerEntry) dto.LedgerEntryResponse {
	return dto.LedgerEntryResponse{
		ID:             e.ID,
		Receita:        e.Income,
		Despesa:        e.Expense,
		FormaPagamento: e.PaymentMethod,
		Descricao:      e.Description,
		RegistradoEm:   e.RecordedAt,
	}
}
