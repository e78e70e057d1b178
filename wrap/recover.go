package wrap

import (
	"context"

	"github.com/pkg/errors"
)

// Recovered converts a panic raised by the wrapped callable into an error.
// Calls that return normally are unaffected.
func Recovered[In, Out any]() Middleware[In, Out] {
	return func(next Func[In, Out]) Func[In, Out] {
		return func(ctx context.Context, in In) (out Out, err error) {
			defer func() {
				if r := recover(); r != nil {
					err = errors.Errorf("recovered from panic: %v", r)
				}
			}()

			return next(ctx, in)
		}
	}
}
