package wrap

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
)

// Retry re-invokes the wrapped callable on failure, up to times attempts in
// total. The last attempt's error is propagated. A budget below one is
// treated as a single attempt.
func Retry[In, Out any](times int) Middleware[In, Out] {
	return RetryBackoff[In, Out](times, 0, nil)
}

// RetryBackoff is Retry with an exponential delay between attempts and an
// optional transient predicate. A nil predicate treats every error as
// transient. Waiting is aborted when the context is done.
func RetryBackoff[In, Out any](times int, baseDelay time.Duration, transient func(error) bool) Middleware[In, Out] {
	if times < 1 {
		times = 1
	}

	return func(next Func[In, Out]) Func[In, Out] {
		return func(ctx context.Context, in In) (Out, error) {
			backoff := baseDelay

			var (
				out Out
				err error
			)

			for attempt := 0; attempt < times; attempt++ {
				out, err = next(ctx, in)
				if err == nil {
					return out, nil
				}

				if attempt == times-1 || (transient != nil && !transient(err)) {
					break
				}

				slog.DebugContext(ctx, "call failed, will retry", slog.Int("attempt", attempt), slog.Duration("backoff", backoff), slog.Any("error", errors.WithStack(err)))

				if backoff > 0 {
					select {
					case <-ctx.Done():
						return out, errors.WithStack(ctx.Err())
					case <-time.After(backoff):
					}

					backoff *= 2
				}
			}

			return out, errors.WithStack(err)
		}
	}
}
