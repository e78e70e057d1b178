package wrap

import (
	"context"

	"github.com/bornholm/aspect/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// Instrumented counts calls and failures of the wrapped callable under the
// given name.
func Instrumented[In, Out any](name string) Middleware[In, Out] {
	return func(next Func[In, Out]) Func[In, Out] {
		return func(ctx context.Context, in In) (Out, error) {
			metrics.TotalCalls.With(prometheus.Labels{metrics.LabelCall: name}).Inc()

			out, err := next(ctx, in)
			if err != nil {
				metrics.FailedCalls.With(prometheus.Labels{metrics.LabelCall: name}).Inc()
			}

			return out, err
		}
	}
}
