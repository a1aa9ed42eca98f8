package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// SpeedLimiter injects a growing delay once a client IP passes a request
// threshold within the window. It is a soft throttle layered under the hard
// rate limiter: requests are slowed, never rejected.
type SpeedLimiter struct {
	counter    *windowCounter
	delayAfter int
	delayStep  time.Duration
	maxDelay   time.Duration
}

func NewSpeedLimiter(delayAfter int, delayStep, maxDelay, window time.Duration) *SpeedLimiter {
	return &SpeedLimiter{
		counter:    newWindowCounter(window),
		delayAfter: delayAfter,
		delayStep:  delayStep,
		maxDelay:   maxDelay,
	}
}

// delayFor computes the delay applied to the n-th request in a window.
func (sl *SpeedLimiter) delayFor(count int) time.Duration {
	if count <= sl.delayAfter {
		return 0
	}
	delay := time.Duration(count-sl.delayAfter) * sl.delayStep
	if delay > sl.maxDelay {
		delay = sl.maxDelay
	}
	return delay
}

func (sl *SpeedLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		count, _ := sl.counter.increment(c.ClientIP())
		delay := sl.delayFor(count)
		if delay > 0 {
			timer := time.NewTimer(delay)
			defer timer.Stop()
			select {
			case <-timer.C:
			case <-c.Request.Context().Done():
				c.Abort()
				return
			}
		}
		c.Next()
	}
}
