package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// ipLimiter hands out one token bucket per client IP. Idle buckets are
// swept from inside get, piggybacking on request traffic, so the map does
// not grow without bound and no background goroutine is needed.
type ipLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*ipEntry
	r         rate.Limit
	burst     int
	lastSweep time.Time
}

type ipEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const (
	sweepEvery = 10 * time.Minute
	idleFor    = time.Hour
)

func newIPLimiter(r rate.Limit, burst int) *ipLimiter {
	return &ipLimiter{
		limiters:  make(map[string]*ipEntry),
		r:         r,
		burst:     burst,
		lastSweep: time.Now(),
	}
}

func (l *ipLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if now.Sub(l.lastSweep) >= sweepEvery {
		for addr, e := range l.limiters {
			if now.Sub(e.lastSeen) > idleFor {
				delete(l.limiters, addr)
			}
		}
		l.lastSweep = now
	}

	e, ok := l.limiters[ip]
	if !ok {
		e = &ipEntry{limiter: rate.NewLimiter(l.r, l.burst)}
		l.limiters[ip] = e
	}
	e.lastSeen = now
	return e.limiter
}

func (l *ipLimiter) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.get(c.ClientIP()).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": "too many requests, try again later"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// AuthLimiter throttles login attempts: 5 per minute per IP.
func AuthLimiter() gin.HandlerFunc {
	return newIPLimiter(rate.Every(12*time.Second), 5).middleware()
}

// SensitiveOpLimiter throttles account-changing admin operations.
func SensitiveOpLimiter() gin.HandlerFunc {
	return newIPLimiter(rate.Every(6*time.Second), 10).middleware()
}
