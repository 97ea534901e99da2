package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-CartService/internal/api/handlers"
)

const msgTooManyRequests = "слишком много запросов, попробуйте позже"

// RateLimiter ограничивает частоту запросов для каждого клиента отдельно
//
// Клиенты без запросов дольше idleTimeout забываются, иначе карта растёт без предела.
// X-Forwarded-For учитывается только при trustForwarded: без доверенного прокси
// клиент подменил бы заголовок и обошёл лимит.
type RateLimiter struct {
	mu             sync.Mutex
	clients        map[string]*clientLimiter
	limit          rate.Limit
	burst          int
	idleTimeout    time.Duration
	trustForwarded bool
	lastSweep      time.Time
	now            func() time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter создает ограничитель на rps запросов в секунду с запасом burst
func NewRateLimiter(rps float64, burst int, idleTimeout time.Duration, trustForwarded bool) *RateLimiter {
	return &RateLimiter{
		clients:        make(map[string]*clientLimiter),
		limit:          rate.Limit(rps),
		burst:          burst,
		idleTimeout:    idleTimeout,
		trustForwarded: trustForwarded,
		lastSweep:      time.Now(),
		now:            time.Now,
	}
}

// Middleware отвечает 429, когда клиент превысил лимит
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.limiter(l.clientKey(r)).Allow() {
			handlers.RespondTooManyRequests(w, msgTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Len количество отслеживаемых клиентов
func (l *RateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

func (l *RateLimiter) limiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	c, ok := l.clients[key]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter
}

// sweep удаляет простаивающих клиентов не чаще раза в idleTimeout
func (l *RateLimiter) sweep(now time.Time) {
	if l.idleTimeout <= 0 || now.Sub(l.lastSweep) < l.idleTimeout {
		return
	}
	l.lastSweep = now

	for key, c := range l.clients {
		if now.Sub(c.lastSeen) >= l.idleTimeout {
			delete(l.clients, key)
		}
	}
}

// clientKey адрес клиента; первый адрес X-Forwarded-For только за доверенным прокси
func (l *RateLimiter) clientKey(r *http.Request) string {
	if l.trustForwarded {
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			first, _, _ := strings.Cut(forwarded, ",")
			if first = strings.TrimSpace(first); first != "" {
				return first
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
