// Package livequery implementa a assinatura de consulta viva: um sujeito que
// guarda o último resultado completo de uma consulta e notifica cada
// assinante com o conjunto inteiro a cada mudança.
//
// O contrato espelha o onSnapshot do cliente móvel: quem assina recebe o
// snapshot corrente imediatamente e depois um snapshot completo por mudança;
// nunca deltas. Cancelar a assinatura é incondicional e imediato.
package livequery

import "sync"

// Snapshot é um resultado completo de consulta. Err preenchido indica falha
// da fonte; o consumidor deve sair do estado de carregamento e não esperar
// reconexão automática.
type Snapshot[T any] struct {
	Docs []T
	Err  error
}

// Feed é o sujeito de publicação. O zero value não é utilizável; use NewFeed.
type Feed[T any] struct {
	mu     sync.Mutex
	latest Snapshot[T]
	seeded bool
	subs   map[int]chan Snapshot[T]
	nextID int
}

// NewFeed cria um feed sem snapshot inicial.
func NewFeed[T any]() *Feed[T] {
	return &Feed[T]{subs: make(map[int]chan Snapshot[T])}
}

// Publish substitui o snapshot corrente e notifica todos os assinantes.
// Assinantes lentos não bloqueiam a publicação: cada canal guarda só o
// snapshot mais recente (o anterior, se ainda não lido, é descartado).
func (f *Feed[T]) Publish(docs []T) {
	f.deliver(Snapshot[T]{Docs: docs})
}

// Fail publica um snapshot de erro para todos os assinantes.
func (f *Feed[T]) Fail(err error) {
	f.deliver(Snapshot[T]{Err: err})
}

func (f *Feed[T]) deliver(snap Snapshot[T]) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.latest = snap
	f.seeded = true
	for _, ch := range f.subs {
		// dreno + envio sob o mutex: o canal tem capacidade 1 e este é o
		// único remetente, então o envio nunca bloqueia
		select {
		case <-ch:
		default:
		}
		ch <- snap
	}
}

// Subscribe registra um assinante. O canal devolvido entrega o snapshot
// corrente de imediato (se houver) e o mais recente daí em diante.
// A função de cancelamento libera o assinante em qualquer caminho de saída;
// chamá-la mais de uma vez é inofensivo.
func (f *Feed[T]) Subscribe() (<-chan Snapshot[T], func()) {
	f.mu.Lock()
	id := f.nextID
	f.nextID++
	ch := make(chan Snapshot[T], 1)
	f.subs[id] = ch
	if f.seeded {
		ch <- f.latest
	}
	f.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subs, id)
			f.mu.Unlock()
		})
	}
	return ch, cancel
}

// Latest devolve o snapshot corrente e se algum já foi publicado.
func (f *Feed[T]) Latest() (Snapshot[T], bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.latest, f.seeded
}

// Subscribers devolve o número de assinantes ativos.
func (f *Feed[T]) Subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}
