package wrap

import (
	"context"
	"log/slog"
	"time"

	"github.com/bornholm/aspect/internal/log"
	"github.com/rs/xid"
)

// Logged tags each call with a unique id and emits start/completion debug
// logs. The id is attached to the context so logs emitted by the wrapped
// callable carry it too.
func Logged[In, Out any](name string) Middleware[In, Out] {
	return func(next Func[In, Out]) Func[In, Out] {
		return func(ctx context.Context, in In) (Out, error) {
			ctx = log.WithAttrs(ctx, slog.String("call", name), slog.String("call_id", xid.New().String()))

			before := time.Now()
			defer func() {
				slog.DebugContext(ctx, "call completed", slog.Duration("duration", time.Since(before)))
			}()

			slog.DebugContext(ctx, "call started")

			return next(ctx, in)
		}
	}
}
