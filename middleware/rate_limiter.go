package middleware

import (
	"net/http"
	"sync"
	"time"

	"huzla/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long an IP's limiter survives without traffic before
// the sweep drops it.
const limiterIdleTTL = 10 * time.Minute

// limiterEntry pairs an IP's limiter with its last use.
type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiterStore holds a map of IP addresses to their rate limiters.
type rateLimiterStore struct {
	entries map[string]*limiterEntry
	mu      sync.Mutex
}

var limiterStore = &rateLimiterStore{
	entries: make(map[string]*limiterEntry),
}

// getLimiter returns the rate limiter for a given IP, creating one if it doesn't exist.
func (s *rateLimiterStore) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.entries[ip]
	if !exists {
		perMin := config.AppConfig.MaxRequestsPerMin
		if perMin <= 0 {
			perMin = 100
		}
		entry = &limiterEntry{
			limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMin)), perMin),
		}
		s.entries[ip] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter
}

// evictIdle drops limiters that have not been used within ttl, so the map
// does not grow unbounded over the process lifetime.
func (s *rateLimiterStore) evictIdle(ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-ttl)
	for ip, entry := range s.entries {
		if entry.lastSeen.Before(cutoff) {
			delete(s.entries, ip)
		}
	}
}

var sweepOnce sync.Once

func startLimiterSweep() {
	sweepOnce.Do(func() {
		go func() {
			ticker := time.NewTicker(limiterIdleTTL)
			defer ticker.Stop()
			for range ticker.C {
				limiterStore.evictIdle(limiterIdleTTL)
			}
		}()
	})
}

// RateLimitMiddleware limits requests per IP address.
func RateLimitMiddleware() gin.HandlerFunc {
	startLimiterSweep()
	return func(c *gin.Context) {
		logger := zap.L()
		ip := getClientIP(c)
		limiter := limiterStore.getLimiter(ip)
		if !limiter.Allow() {
			logger.Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Rate limit exceeded. Try again later."})
			return
		}
		c.Next()
	}
}
