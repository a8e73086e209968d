package http

import (
	"bufio"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/nubiasantos/salao-api/internal/application/agenda"
	"github.com/nubiasantos/salao-api/internal/application/finance"
	"github.com/nubiasantos/salao-api/internal/domain/entity"
	"github.com/nubiasantos/salao-api/internal/livequery"
	"github.com/nubiasantos/salao-api/pkg/logger"
)

// keepAliveInterval é o intervalo entre comentários de ping no stream SSE.
// O ping também detecta clientes desconectados entre snapshots.
const keepAliveInterval = 15 * time.Second

// StreamHandler expõe os feeds de consulta viva como Server-Sent Events.
// Cada assinante recebe o snapshot corrente imediatamente e depois o conjunto
// completo projetado a cada mudança.
type StreamHandler struct {
	agendaUC  *agenda.UseCase
	financeUC *finance.UseCase
	log       *logger.Logger
}

// NewStreamHandler constrói o handler de streams.
func NewStreamHandler(agendaUC *agenda.UseCase, financeUC *finance.UseCase, log *logger.Logger) *StreamHandler {
	return &StreamHandler{agendaUC: agendaUC, financeUC: financeUC, log: log}
}

// Agenda transmite a visão da agenda (seções por dia) a cada mudança.
//
// GET /api/agenda/stream
func (h *StreamHandler) Agenda(c *fiber.Ctx) error {
	ch, cancel := h.agendaUC.Feed().Subscribe()
	uc := h.agendaUC
	h.stream(c, cancel, func(w *bufio.Writer) bool {
		return pump(w, ch, h.log, func(snap livequery.Snapshot[entity.Appointment]) (any, error) {
			if snap.Err != nil {
				return nil, snap.Err
			}
			return uc.Project(snap.Docs, time.Now()), nil
		})
	})
	return nil
}

// Financeiro transmite o resumo financeiro (dashboard) a cada lançamento.
//
// GET /api/financeiro/stream
func (h *StreamHandler) Financeiro(c *fiber.Ctx) error {
	ch, cancel := h.financeUC.Feed().Subscribe()
	h.stream(c, cancel, func(w *bufio.Writer) bool {
		return pump(w, ch, h.log, func(snap livequery.Snapshot[entity.LedgerEntry]) (any, error) {
			if snap.Err != nil {
				return nil, snap.Err
			}
			return finance.ProjectDashboard(snap.Docs), nil
		})
	})
	return nil
}

func (h *StreamHandler) stream(c *fiber.Ctx, cancel func(), step func(w *bufio.Writer) bool) {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()
		for step(w) {
		}
	}))
}

// pump espera o próximo snapshot (ou o ping de keep-alive) e o escreve como
// evento SSE. Devolve false quando o cliente desconectou.
func pump[T any](w *bufio.Writer, ch <-chan livequery.Snapshot[T], log *logger.Logger, project func(livequery.Snapshot[T]) (any, error)) bool {
	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	select {
	case snap := <-ch:
		view, err := project(snap)
		if err != nil {
			return writeEvent(w, "erro", map[string]string{"message": err.Error()})
		}
		payload, err := json.Marshal(view)
		if err != nil {
			log.Error().Err(err).Msg("stream: serializar snapshot")
			return false
		}
		return writeRaw(w, "data: "+string(payload)+"\n\n")
	case <-ticker.C:
		// comentário SSE, ignorado pelo cliente
		return writeRaw(w, ": ping\n\n")
	}
}

func writeEvent(w *bufio.Writer, event string, payload any) bool {
	data, err := json.Marshal(payload)
	if err != nil {
		return false
	}
	return writeRaw(w, fmt.Sprintf("event: %s\ndata: %s\n\n", event, data))
}

func writeRaw(w *bufio.Writer, s string) bool {
	if _, err := w.WriteString(s); err != nil {
		return false
	}
	return w.Flush() == nil
}
