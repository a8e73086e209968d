package http

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/nubiasantos/salao-api/internal/application/dto"
)

const (
	cleanupInterval = 5 * time.Minute
	clientIdleAfter = 10 * time.Minute
)

// loginLimiter aplica um token bucket por IP para o endpoint de login.
// Entradas ociosas são removidas periodicamente para não crescer sem limite.
type loginLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	rate    rate.Limit
	burst   int
	done    chan struct{}
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newLoginLimiter(perMinute int, burst int) *loginLimiter {
	l := &loginLimiter{
		clients: make(map[string]*clientLimiter),
		rate:    rate.Limit(float64(perMinute) / 60.0),
		burst:   burst,
		done:    make(chan struct{}),
	}
	go l.cleanup(cleanupInterval)
	return l
}

func (l *loginLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	cl, ok := l.clients[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.clients[ip] = cl
	}
	cl.lastSeen = time.Now()
	return cl.limiter.Allow()
}

func (l *loginLimiter) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.prune()
		case <-l.done:
			return
		}
	}
}

func (l *loginLimiter) prune() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for ip, cl := range l.clients {
		if time.Since(cl.lastSeen) > clientIdleAfter {
			delete(l.clients, ip)
		}
	}
}

// stop encerra a goroutine de limpeza e libera o ticker.
func (l *loginLimiter) stop() {
	close(l.done)
}

// LoginRateLimit limita tentativas de login por IP (proteção contra força bruta).
func LoginRateLimit(perMinute int, burst int) fiber.Handler {
	limiter := newLoginLimiter(perMinute, burst)
	return func(c *fiber.Ctx) error {
		if !limiter.allow(c.IP()) {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code:    "RATE_LIMITED",
				Message: "muitas tentativas de login, aguarde um momento",
			})
		}
		return c.Next()
	}
}
