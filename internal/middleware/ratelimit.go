package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// IPRateLimiter enforces a fixed request budget per client IP over a rolling
// window using one token bucket per IP.
type IPRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
	window   time.Duration
}

// NewIPRateLimiter allows up to requests per window from each client IP.
func NewIPRateLimiter(requests int, window time.Duration) *IPRateLimiter {
	return &IPRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(window / time.Duration(requests)),
		burst:    requests,
		window:   window,
	}
}

func (rl *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Keep the map bounded; counters are advisory and reset on restart anyway.
	if len(rl.limiters) > 10000 {
		rl.limiters = make(map[string]*rate.Limiter)
	}

	limiter, ok := rl.limiters[ip]
	if !ok {
		limiter = rate.NewLimiter(rl.limit, rl.burst)
		rl.limiters[ip] = limiter
	}
	return limiter
}

func (rl *IPRateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := rl.getLimiter(c.ClientIP())
		if !limiter.Allow() {
			retryAfter := int(rl.window.Seconds() / float64(rl.burst))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":      "Too many requests, please try again later",
				"retryAfter": retryAfter,
			})
			return
		}
		c.Next()
	}
}

// windowCounter counts hits per key over fixed windows. It backs the
// submission limiters and the speed limiter, which need request counts
// rather than token-bucket admission.
type windowCounter struct {
	mu     sync.Mutex
	window time.Duration
	hits   map[string]*windowEntry
}

type windowEntry struct {
	count int
	reset time.Time
}

func newWindowCounter(window time.Duration) *windowCounter {
	return &windowCounter{
		window: window,
		hits:   make(map[string]*windowEntry),
	}
}

// increment records one hit for key and returns the running count plus the
// time remaining until the window resets.
func (w *windowCounter) increment(key string) (int, time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := time.Now()
	entry, ok := w.hits[key]
	if !ok || now.After(entry.reset) {
		entry = &windowEntry{reset: now.Add(w.window)}
		w.hits[key] = entry
	}
	entry.count++
	return entry.count, time.Until(entry.reset)
}

// SubmissionLimiter caps form submissions per client IP over a longer window
// than the general limiter, e.g. a handful per hour for contact forms or a
// few per day for newsletter sign-ups.
type SubmissionLimiter struct {
	counter *windowCounter
	max     int
	message string
}

func NewSubmissionLimiter(max int, window time.Duration, message string) *SubmissionLimiter {
	return &SubmissionLimiter{
		counter: newWindowCounter(window),
		max:     max,
		message: message,
	}
}

func (sl *SubmissionLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		count, remaining := sl.counter.increment(c.ClientIP())
		if count > sl.max {
			retryAfter := int(remaining.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":      sl.message,
				"retryAfter": retryAfter,
			})
			return
		}
		c.Next()
	}
}
