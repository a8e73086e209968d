package livequery_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nubiasantos/salao-api/internal/livequery"
)

func recv(t *testing.T, ch <-chan livequery.Snapshot[string]) livequery.Snapshot[string] {
	t.Helper()
	select {
	case snap := <-ch:
		return snap
	case <-time.After(time.Second):
		t.Fatal("snapshot não chegou")
		return livequery.Snapshot[string]{}
	}
}

func assertNoSnapshot(t *testing.T, ch <-chan livequery.Snapshot[string]) {
	t.Helper()
	select {
	case snap := <-ch:
		t.Fatalf("snapshot inesperado: %+v", snap)
	case <-time.After(50 * time.Millisecond):
	}
}

// Quem assina depois de uma publicação recebe o snapshot corrente de imediato.
func TestFeed_AssinaturaEntregaSnapshotCorrente(t *testing.T) {
	feed := livequery.NewFeed[string]()
	feed.Publish([]string{"a", "b"})

	ch, cancel := feed.Subscribe()
	defer cancel()

	snap := recv(t, ch)
	require.NoError(t, snap.Err)
	assert.Equal(t, []string{"a", "b"}, snap.Docs)
}

// Antes da primeira publicação não há nada a entregar.
func TestFeed_SemSnapshotInicial(t *testing.T) {
	feed := livequery.NewFeed[string]()

	ch, cancel := feed.Subscribe()
	defer cancel()

	assertNoSnapshot(t, ch)
}

// Cada publicação entrega o conjunto completo a todos os assinantes.
func TestFeed_PublicacaoNotificaTodos(t *testing.T) {
	feed := livequery.NewFeed[string]()

	ch1, cancel1 := feed.Subscribe()
	defer cancel1()
	ch2, cancel2 := feed.Subscribe()
	defer cancel2()

	feed.Publish([]string{"x"})

	assert.Equal(t, []string{"x"}, recv(t, ch1).Docs)
	assert.Equal(t, []string{"x"}, recv(t, ch2).Docs)
}

// Assinante lento recebe só o snapshot mais recente, nunca um intermediário.
func TestFeed_AssinanteLentoVeApenasOMaisRecente(t *testing.T) {
	feed := livequery.NewFeed[string]()

	ch, cancel := feed.Subscribe()
	defer cancel()

	feed.Publish([]string{"v1"})
	feed.Publish([]string{"v2"})
	feed.Publish([]string{"v3"})

	snap := recv(t, ch)
	assert.Equal(t, []string{"v3"}, snap.Docs)
	assertNoSnapshot(t, ch)
}

// Cancelar interrompe a entrega; cancelar duas vezes é inofensivo.
func TestFeed_CancelamentoImediato(t *testing.T) {
	feed := livequery.NewFeed[string]()

	ch, cancel := feed.Subscribe()
	require.Equal(t, 1, feed.Subscribers())

	cancel()
	cancel()
	assert.Equal(t, 0, feed.Subscribers())

	feed.Publish([]string{"depois"})
	assertNoSnapshot(t, ch)
}

// Falha da fonte chega como snapshot com Err preenchido.
func TestFeed_FalhaPropagadaAosAssinantes(t *testing.T) {
	feed := livequery.NewFeed[string]()

	ch, cancel := feed.Subscribe()
	defer cancel()

	sentinel := errors.New("permissão negada")
	feed.Fail(sentinel)

	snap := recv(t, ch)
	assert.ErrorIs(t, snap.Err, sentinel)
	assert.Nil(t, snap.Docs)
}

// Publicações concorrentes não corrompem o feed nem bloqueiam.
func TestFeed_PublicacaoConcorrente(t *testing.T) {
	feed := livequery.NewFeed[string]()

	ch, cancel := feed.Subscribe()
	defer cancel()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			feed.Publish([]string{"snap"})
		}()
	}
	wg.Wait()

	snap := recv(t, ch)
	assert.Equal(t, []string{"snap"}, snap.Docs)

	latest, ok := feed.Latest()
	require.True(t, ok)
	assert.Equal(t, []string{"snap"}, latest.Docs)
}
