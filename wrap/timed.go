package wrap

import (
	"context"
	"log/slog"
	"time"
)

// Timed records the wall-clock time spent in the wrapped callable and reports
// it with the given name. Result and error pass through untouched.
func Timed[In, Out any](name string) Middleware[In, Out] {
	return func(next Func[In, Out]) Func[In, Out] {
		return func(ctx context.Context, in In) (Out, error) {
			before := time.Now()
			defer func() {
				slog.InfoContext(ctx, "call completed", slog.String("call", name), slog.Duration("duration", time.Since(before)))
			}()

			return next(ctx, in)
		}
	}
}
