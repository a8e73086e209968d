package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nubiasantos/salao-api/internal/domain"
	"github.com/nubiasantos/salao-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeLedger struct {
	entries  []entity.LedgerEntry
	lastFrom time.Time
	lastTo   time.Time
}

func (f *fakeLedger) Create(_ context.Context, _ *entity.LedgerEntry) error { return nil }

func (f *fakeLedger) List(_ context.Context) ([]entity.LedgerEntry, error) { return f.entries, nil }

func (f *fakeLedger) Recent(_ context.Context, _ int) ([]entity.LedgerEntry, error) {
	return f.entries, nil
}

func (f *fakeLedger) ListBetween(_ context.Context, from, to time.Time) ([]entity.LedgerEntry, error) {
	f.lastFrom, f.lastTo = from, to
	return f.entries, nil
}

func (f *fakeLedger) Empty(_ context.Context) (bool, error) { return len(f.entries) == 0, nil }

type fakeAppointments struct {
	count int
}

func (f *fakeAppointments) Create(_ context.Context, _ *entity.Appointment) error { return nil }

func (f *fakeAppointments) List(_ context.Context) ([]entity.Appointment, error) { return nil, nil }

func (f *fakeAppointments) CountBetween(_ context.Context, _, _ time.Time) (int, error) {
	return f.count, nil
}

func (f *fakeAppointments) Delete(_ context.Context, _ string) error { return nil }

func (f *fakeAppointments) Empty(_ context.Context) (bool, error) { return true, nil }

// fakeGenerator captura o relatório montado e devolve bytes fixos.
type fakeGenerator struct {
	got *MonthlyReport
}

func (f *fakeGenerator) GenerateMonthly(_ context.Context, data *MonthlyReport) ([]byte, error) {
	f.got = data
	return []byte("%PDF-fake"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestMonthly_MontaRelatorioDoMes(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	ledger := &fakeLedger{entries: []entity.LedgerEntry{
		{ID: "a", Income: decimal.NewFromInt(50), PaymentMethod: entity.MethodPix},
		{ID: "b", Expense: decimal.NewFromInt(20)},
	}}
	appts := &fakeAppointments{count: 7}
	gen := &fakeGenerator{}
	uc := NewUseCase(ledger, appts, gen, loc)

	pdf, err := uc.Monthly(context.Background(), 2025, 3)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), pdf)

	// Janela [1º do mês, 1º do mês seguinte) no fuso do salão.
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, loc), ledger.lastFrom)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, loc), ledger.lastTo)

	require.NotNil(t, gen.got)
	assert.Equal(t, 2025, gen.got.Year)
	assert.Equal(t, time.March, gen.got.Month)
	assert.Equal(t, 7, gen.got.AppointmentCount)
	assert.True(t, gen.got.Summary.Income.Equal(decimal.NewFromInt(50)))
	assert.True(t, gen.got.Summary.Expense.Equal(decimal.NewFromInt(20)))
	assert.True(t, gen.got.Summary.Profit.Equal(decimal.NewFromInt(30)))
	assert.Len(t, gen.got.Entries, 2)
}

func TestMonthly_MesInvalido(t *testing.T) {
	uc := NewUseCase(&fakeLedger{}, &fakeAppointments{}, &fakeGenerator{}, time.UTC)

	for _, tc := range []struct{ year, month int }{
		{2025, 0},
		{2025, 13},
		{1999, 5},
	} {
		_, err := uc.Monthly(context.Background(), tc.year, tc.month)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "ano %d mês %d", tc.year, tc.month)
	}
}
