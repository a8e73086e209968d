package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nubiasantos/salao-api/internal/application/agenda"
	"github.com/nubiasantos/salao-api/internal/application/dto"
	"github.com/nubiasantos/salao-api/internal/cache"
	"github.com/nubiasantos/salao-api/internal/domain"
	"github.com/nubiasantos/salao-api/internal/domain/entity"
	apphttp "github.com/nubiasantos/salao-api/internal/interfaces/http"
	"github.com/nubiasantos/salao-api/internal/livequery"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de repositório em memória
// ──────────────────────────────────────────────────────────────────────────────

type memAppointmentRepo struct {
	mu    sync.Mutex
	items map[string]entity.Appointment
}

func newMemAppointmentRepo() *memAppointmentRepo {
	return &memAppointmentRepo{items: make(map[string]entity.Appointment)}
}

func (r *memAppointmentRepo) Create(_ context.Context, a *entity.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[a.ID] = *a
	return nil
}

func (r *memAppointmentRepo) List(_ context.Context) ([]entity.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Appointment, 0, len(r.items))
	for _, a := range r.items {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartsAt.Before(out[j].StartsAt) })
	return out, nil
}

func (r *memAppointmentRepo) CountBetween(_ context.Context, from, to time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, a := range r.items {
		if !a.StartsAt.Before(from) && a.StartsAt.Before(to) {
			n++
		}
	}
	return n, nil
}

func (r *memAppointmentRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *memAppointmentRepo) Empty(_ context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items) == 0, nil
}

// buildAgendaApp monta a rota da agenda sem middleware de auth.
func buildAgendaApp(repo *memAppointmentRepo) *fiber.App {
	loc := time.FixedZone("BRT", -3*60*60)
	uc := agenda.NewUseCase(repo, livequery.NewFeed[entity.Appointment](), cache.NewLRU[dto.AgendaViewDTO](8, time.Minute), loc)
	handler := apphttp.NewAgendaHandler(uc)

	app := fiber.New()
	app.Get("/api/agenda", handler.View)
	app.Post("/api/agenda", handler.Create)
	app.Delete("/api/agenda/:id", handler.Delete)
	return app
}

func createAppointment(t *testing.T, app *fiber.App, body dto.CreateAppointmentRequest) dto.AppointmentResponse {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/agenda", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.AppointmentResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestAgendaHandler_CreateEView(t *testing.T) {
	app := buildAgendaApp(newMemAppointmentRepo())

	created := createAppointment(t, app, dto.CreateAppointmentRequest{
		Nome: "Maria", Data: "2025-03-10", Hora: "14:00", Servico: "Manicure",
	})
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "2025-03-10", created.Data)
	assert.Equal(t, "14:00", created.Hora)

	req := httptest.NewRequest(http.MethodGet, "/api/agenda", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var view dto.AgendaViewDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	assert.Equal(t, 1, view.Total)
	require.Len(t, view.Secoes, 1)
	assert.Equal(t, "2025-03-10", view.Secoes[0].Data)
}

func TestAgendaHandler_CreateInvalido_Retorna400(t *testing.T) {
	app := buildAgendaApp(newMemAppointmentRepo())

	raw, _ := json.Marshal(dto.CreateAppointmentRequest{Nome: "Maria"})
	req := httptest.NewRequest(http.MethodPost, "/api/agenda", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// DELETE sem confirmação → HTTP 428 e o agendamento permanece.
func TestAgendaHandler_DeleteSemConfirmacao_Retorna428(t *testing.T) {
	repo := newMemAppointmentRepo()
	app := buildAgendaApp(repo)
	created := createAppointment(t, app, dto.CreateAppointmentRequest{
		Nome: "Maria", Data: "2025-03-10", Hora: "14:00", Servico: "Manicure",
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/agenda/"+created.ID, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusPreconditionRequired, resp.StatusCode)

	empty, _ := repo.Empty(context.Background())
	assert.False(t, empty, "sem confirmação o agendamento deve permanecer")
}

// DELETE com X-Confirmar: sim → HTTP 200 e o agendamento some.
func TestAgendaHandler_DeleteConfirmado_Remove(t *testing.T) {
	repo := newMemAppointmentRepo()
	app := buildAgendaApp(repo)
	created := createAppointment(t, app, dto.CreateAppointmentRequest{
		Nome: "Maria", Data: "2025-03-10", Hora: "14:00", Servico: "Manicure",
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/agenda/"+created.ID, nil)
	req.Header.Set("X-Confirmar", "sim")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	empty, _ := repo.Empty(context.Background())
	assert.True(t, empty, "com confirmação o agendamento deve ser removido")
}

func TestAgendaHandler_DeleteInexistente_Retorna404(t *testing.T) {
	app := buildAgendaApp(newMemAppointmentRepo())

	req := httptest.NewRequest(http.MethodDelete, "/api/agenda/nao-existe", nil)
	req.Header.Set("X-Confirmar", "sim")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
