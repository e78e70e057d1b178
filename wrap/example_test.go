package wrap_test

import (
	"context"
	"fmt"

	"github.com/bornholm/aspect/wrap"
	"github.com/pkg/errors"
)

func ExampleRetry() {
	attempts := 0

	fetch := func(ctx context.Context, url string) (string, error) {
		attempts++
		if attempts < 3 {
			return "", errors.New("transient failure")
		}

		return "data", nil
	}

	wrapped := wrap.Retry[string, string](5)(fetch)

	out, _ := wrapped(context.Background(), "https://example.net")

	fmt.Println(out)
	// Output: data
}

func ExampleChain() {
	shout := func(ctx context.Context, in string) (string, error) {
		return in + "!", nil
	}

	// The wrapped callable has the exact same type as the original.
	wrapped := wrap.Chain(shout,
		wrap.Timed[string, string]("shout"),
		wrap.Retry[string, string](3),
	)

	out, _ := wrapped(context.Background(), "hello")

	fmt.Println(out)
	// Output: hello!
}
