package middleware

import (
	"net/http"
	"sync"
	"time"

	"parchelector/internal/http-api/dto"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// staleAfter is how long a client can stay idle before its limiter is
// dropped; idle entries are swept so the map does not grow for the
// lifetime of the process.
const staleAfter = 3 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles requests per client IP. Used on the auth routes to
// slow down credential stuffing.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	rps     rate.Limit
	burst   int
}

func NewRateLimiter(rps float64, burst int) *RateLimiter {
	l := &RateLimiter{
		clients: make(map[string]*client),
		rps:     rate.Limit(rps),
		burst:   burst,
	}
	go func() {
		for range time.Tick(time.Minute) {
			l.sweep(time.Now())
		}
	}()
	return l
}

func (l *RateLimiter) limiterFor(clientIP string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.clients[clientIP]
	if !ok {
		entry = &client{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.clients[clientIP] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter
}

// sweep drops clients that have been idle longer than staleAfter.
func (l *RateLimiter) sweep(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for ip, entry := range l.clients {
		if now.Sub(entry.lastSeen) > staleAfter {
			delete(l.clients, ip)
		}
	}
}

func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.limiterFor(c.ClientIP()).Allow() {
			dto.Error(c, http.StatusTooManyRequests, "too many requests")
			c.Abort()
			return
		}
		c.Next()
	}
}
