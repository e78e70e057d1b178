// Package wrap provides signature-preserving decorators for context-aware
// callables. A decorated callable has the exact same type as the callable it
// wraps, so call sites type-check identically with or without decoration.
package wrap

import "context"

// Func is the canonical callable shape: a context-aware function from a single
// input to a single output. Callables with more parameters group them in a
// struct used as In.
type Func[In, Out any] func(ctx context.Context, in In) (Out, error)

// MethodFunc is the method shape. The receiver is distinguished as the first
// parameter so decorators can constrain its type independently of the
// remaining parameters.
type MethodFunc[S, In, Out any] func(s S, ctx context.Context, in In) (Out, error)

// Middleware wraps a Func with cross-cutting behavior. The returned Func must
// preserve the wrapped Func's observable contract: same input, same output,
// errors propagated unchanged unless the middleware explicitly intercepts them.
type Middleware[In, Out any] func(next Func[In, Out]) Func[In, Out]

// MethodMiddleware is the method-shaped counterpart of Middleware.
type MethodMiddleware[S, In, Out any] func(next MethodFunc[S, In, Out]) MethodFunc[S, In, Out]

// Chain wraps fn with the given middlewares, onion style: the first middleware
// is outermost, the last one runs closest to fn.
func Chain[In, Out any](fn Func[In, Out], middlewares ...Middleware[In, Out]) Func[In, Out] {
	for i := len(middlewares) - 1; i >= 0; i-- {
		fn = middlewares[i](fn)
	}

	return fn
}

// ChainMethod wraps a method expression with the given middlewares, with the
// same ordering as Chain.
func ChainMethod[S, In, Out any](fn MethodFunc[S, In, Out], middlewares ...MethodMiddleware[S, In, Out]) MethodFunc[S, In, Out] {
	for i := len(middlewares) - 1; i >= 0; i-- {
		fn = middlewares[i](fn)
	}

	return fn
}

// Bind fixes the receiver of a MethodFunc, yielding a plain Func.
func Bind[S, In, Out any](s S, fn MethodFunc[S, In, Out]) Func[In, Out] {
	return func(ctx context.Context, in In) (Out, error) {
		return fn(s, ctx, in)
	}
}

// OnMethod lifts a receiver-agnostic Middleware to a MethodMiddleware, so
// free-function policies can be stacked on methods.
func OnMethod[S, In, Out any](middleware Middleware[In, Out]) MethodMiddleware[S, In, Out] {
	return func(next MethodFunc[S, In, Out]) MethodFunc[S, In, Out] {
		return func(s S, ctx context.Context, in In) (Out, error) {
			return middleware(Bind(s, next))(ctx, in)
		}
	}
}
