package middlewares

import (
	"curasync-service/internal/pkg/constvars"
	"curasync-service/internal/pkg/exceptions"
	"curasync-service/internal/pkg/utils"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter gives each client a token bucket of burst tokens refilled once
// per every, and blocks a client that empties its bucket for blockTime.
type RateLimiter struct {
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	burst     int
	every     time.Duration
	blockTime time.Duration
	log       *zap.Logger
	now       func() time.Time
}

func NewRateLimiter(burst int, every, blockTime time.Duration, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		burst:     burst,
		every:     every,
		blockTime: blockTime,
		log:       logger,
		now:       time.Now,
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		clientKey := utils.ClientKey(req)
		now := r.now()

		r.mu.Lock()

		if blockedUntil, found := r.blocked[clientKey]; found {
			if now.Before(blockedUntil) {
				r.mu.Unlock()
				r.reject(w, clientKey, blockedUntil.Sub(now))
				return
			}

			delete(r.blocked, clientKey)
		}

		limiter, exists := r.limiters[clientKey]
		if !exists {
			limiter = rate.NewLimiter(rate.Every(r.every), r.burst)
			r.limiters[clientKey] = limiter
		}

		if !limiter.AllowN(now, 1) {
			r.blocked[clientKey] = now.Add(r.blockTime)
			delete(r.limiters, clientKey)
			r.mu.Unlock()
			r.reject(w, clientKey, r.blockTime)
			return
		}

		r.mu.Unlock()
		next.ServeHTTP(w, req)
	})
}

func (r *RateLimiter) reject(w http.ResponseWriter, clientKey string, retryAfter time.Duration) {
	w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
	utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests(clientKey))
}
