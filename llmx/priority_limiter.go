package llmx

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// PriorityLimiter is a token bucket that reserves part of its capacity for
// high-priority requests. Low-priority requests only pass while the bucket
// holds at least threshold*burst tokens.
type PriorityLimiter struct {
	limiter          *rate.Limiter
	lowPrioThreshold float64
}

func NewPriorityLimiter(r rate.Limit, b int, threshold float64) *PriorityLimiter {
	return &PriorityLimiter{
		limiter:          rate.NewLimiter(r, b),
		lowPrioThreshold: threshold,
	}
}

func (pl *PriorityLimiter) Allow(isHighPriority bool) bool {
	currentTokens := pl.limiter.Tokens()
	maxBurst := float64(pl.limiter.Burst())

	if !isHighPriority && currentTokens < (maxBurst*pl.lowPrioThreshold) {
		return false
	}

	return pl.limiter.Allow()
}

// Wait blocks until the request can be processed. High-priority requests wait
// for n tokens as usual. Low-priority requests additionally wait until the
// bucket holds the threshold buffer on top of n, so they never starve
// high-priority traffic.
func (pl *PriorityLimiter) Wait(ctx context.Context, n int, isHighPriority bool) error {
	if isHighPriority {
		return pl.limiter.WaitN(ctx, n)
	}

	burst := float64(pl.limiter.Burst())
	requiredTokens := (burst * pl.lowPrioThreshold) + float64(n)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// Cheap peek before going through a reservation cycle.
		currentTokens := pl.limiter.Tokens()
		if currentTokens < requiredTokens {
			missing := requiredTokens - currentTokens
			waitDuration := time.Duration(float64(time.Second) * (missing / float64(pl.limiter.Limit())))

			// Minimum wait to avoid hot-looping
			if waitDuration < 10*time.Millisecond {
				waitDuration = 10 * time.Millisecond
			}

			select {
			case <-time.After(waitDuration):
				continue
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		r := pl.limiter.ReserveN(time.Now(), n)
		if !r.OK() {
			return fmt.Errorf("request exceeds limiter burst")
		}

		// A non-zero delay means the n tokens were not actually available:
		// cancel the reservation instead of eating into fresh tokens.
		if r.Delay() > 0 {
			r.Cancel()

			select {
			case <-time.After(100 * time.Millisecond):
				continue
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		return nil
	}
}
