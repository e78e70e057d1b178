package wrap

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Memoize caches successful results by input in an expirable LRU. Each call to
// Memoize creates one cache, shared by every callable wrapped with the
// returned middleware. Errors are never cached.
func Memoize[In comparable, Out any](size int, ttl time.Duration) Middleware[In, Out] {
	cache := expirable.NewLRU[In, Out](size, nil, ttl)

	return func(next Func[In, Out]) Func[In, Out] {
		return func(ctx context.Context, in In) (Out, error) {
			if out, ok := cache.Get(in); ok {
				return out, nil
			}

			out, err := next(ctx, in)
			if err != nil {
				return out, err
			}

			cache.Add(in, out)

			return out, nil
		}
	}
}
