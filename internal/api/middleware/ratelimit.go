package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-PetCareService/internal/api/handlers"
)

const msgTooManyRequests = "слишком много запросов, попробуйте позже"

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter ограничивает число запросов с одного адреса клиента.
// Адресом считается сокет-пир (RemoteAddr); заголовки X-Forwarded-For и
// X-Real-IP учитываются только при trustProxy.
type RateLimiter struct {
	mu         sync.Mutex
	limiters   map[string]*clientLimiter
	limit      rate.Limit
	burst      int
	trustProxy bool
	now        func() time.Time
	logger     Logger
}

// NewRateLimiter создает лимитер на requests запросов за period с каждого адреса
func NewRateLimiter(requests int, period time.Duration, trustProxy bool, logger Logger) *RateLimiter {
	return &RateLimiter{
		limiters:   make(map[string]*clientLimiter),
		limit:      rate.Every(period / time.Duration(requests)),
		burst:      requests,
		trustProxy: trustProxy,
		now:        time.Now,
		logger:     logger,
	}
}

func (l *RateLimiter) limiterFor(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.limiters[key]
	if !ok {
		entry = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = entry
	}
	entry.lastSeen = l.now()
	return entry.limiter
}

// Size возвращает число отслеживаемых адресов
func (l *RateLimiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// Evict удаляет лимитеры адресов, не обращавшихся дольше idle
func (l *RateLimiter) Evict(idle time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-idle)
	removed := 0
	for key, entry := range l.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(l.limiters, key)
			removed++
		}
	}
	return removed
}

// RunEviction периодически вызывает Evict до закрытия stopCh
func (l *RateLimiter) RunEviction(interval, idle time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if removed := l.Evict(idle); removed > 0 {
				l.logger.Info("Rate limiter: evicted %d idle clients", removed)
			}
		case <-stopCh:
			return
		}
	}
}

// Limit оборачивает обработчик, отвечая 429 при превышении лимита
func (l *RateLimiter) Limit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := l.clientIP(r)
		if !l.limiterFor(ip).Allow() {
			l.logger.Warn("%s %s - Rate limit exceeded: ip=%s", r.Method, r.URL.Path, ip)
			handlers.RespondTooManyRequests(w, msgTooManyRequests)
			return
		}
		next(w, r)
	}
}

func (l *RateLimiter) clientIP(r *http.Request) string {
	if l.trustProxy {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			first, _, _ := strings.Cut(fwd, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}
		if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
			return realIP
		}
	}
	return remoteHost(r)
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
