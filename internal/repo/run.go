// Package repo exposes the repositories: one per backend resource family,
// each wrapping its endpoint service in the tri-state result lifecycle. The
// repositories are the only surface UI code may depend on, behind the
// capability interfaces declared next to each repository.
//
// Contract for every method: the returned channel carries one Loading value
// immediately, then exactly one terminal Success or Error, then closes. A
// cancelled context closes the channel without a terminal value; nothing is
// ever emitted after the invoking scope is gone. Concurrent invocations are
// independent state machines with no ordering between their terminals.
package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mkarimli/go-adboard-client/internal/resource"
	"github.com/mkarimli/go-adboard-client/internal/services"
)

// run executes one request lifecycle. The Loading value is placed into the
// buffered channel before run returns, so the first receive is always
// Loading. delay is the optional UX smoothing pause before the terminal
// state; it is skipped once the context is cancelled.
func run[T any](ctx context.Context, delay time.Duration, op string, call func(context.Context) (T, error)) <-chan resource.Result[T] {
	out := make(chan resource.Result[T], 2)
	out <- resource.Loading[T]()

	go func() {
		defer close(out)

		v, err := call(ctx)

		if delay > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
			}
		}
		if ctx.Err() != nil {
			// Scope torn down: abandon without a terminal emission.
			return
		}

		out <- settle(op, v, err)
	}()

	return out
}

// settle maps a service outcome to the terminal result. Classified service
// errors pass their message through untouched; anything else (which would be
// a programming error or a context fault surfacing late) is wrapped with the
// operation name.
func settle[T any](op string, v T, err error) resource.Result[T] {
	if err == nil {
		return resource.Success(v)
	}
	var se *services.Error
	if errors.As(err, &se) {
		return resource.Failure[T](se.Message)
	}
	return resource.Failure[T](fmt.Sprintf("failed to %s: %v", op, err))
}
