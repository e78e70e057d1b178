package agent

import (
	"context"

	"github.com/bornholm/aspect/wrap"
	"github.com/pkg/errors"
)

// Fixed per-call cost recorded by TrackCost.
const trackedCostTokens = 42

// TrackCost records token usage on the receiver after a successful call. It
// can be attached to any method whose receiver provides the Observable
// capability, regardless of the receiver's concrete type.
func TrackCost[S Observable, In, Out any](next wrap.MethodFunc[S, In, Out]) wrap.MethodFunc[S, In, Out] {
	return func(s S, ctx context.Context, in In) (Out, error) {
		out, err := next(s, ctx, in)
		if err != nil {
			return out, errors.WithStack(err)
		}

		s.RecordCost(trackedCostTokens)

		return out, nil
	}
}

// InjectHistory reads the receiver's conversation history before delegating.
// The history is read but not threaded into the call itself.
//
// Attaching it to a receiver without the MemoryAware capability does not
// compile:
//
//	// *SummarisationAgent does not satisfy MemoryAware (missing method History)
//	InjectHistory[*SummarisationAgent, string, Summary]
func InjectHistory[S MemoryAware, In, Out any](next wrap.MethodFunc[S, In, Out]) wrap.MethodFunc[S, In, Out] {
	return func(s S, ctx context.Context, in In) (Out, error) {
		_ = s.History()

		return next(s, ctx, in)
	}
}

// ValidateOutput re-invokes the wrapped method while the receiver's validity
// predicate rejects the result, up to MaxValidationRetries-1 additional
// attempts. The first valid result is returned, or the last computed one if
// none validate. Errors abort the loop and propagate.
func ValidateOutput[S Validating[Out], In, Out any](next wrap.MethodFunc[S, In, Out]) wrap.MethodFunc[S, In, Out] {
	return func(s S, ctx context.Context, in In) (Out, error) {
		result, err := next(s, ctx, in)
		if err != nil {
			return result, errors.WithStack(err)
		}

		for i := 0; i < s.MaxValidationRetries()-1; i++ {
			if s.IsValid(result) {
				return result, nil
			}

			result, err = next(s, ctx, in)
			if err != nil {
				return result, errors.WithStack(err)
			}
		}

		return result, nil
	}
}
