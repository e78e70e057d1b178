package wrap

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// RateLimited waits for the given limiter before delegating. The wait is
// aborted when the context is done.
func RateLimited[In, Out any](limiter *rate.Limiter) Middleware[In, Out] {
	return func(next Func[In, Out]) Func[In, Out] {
		return func(ctx context.Context, in In) (Out, error) {
			if err := limiter.Wait(ctx); err != nil {
				var zero Out
				return zero, errors.WithStack(err)
			}

			return next(ctx, in)
		}
	}
}
