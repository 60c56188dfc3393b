package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mkarimli/go-adboard-client/internal/resource"
	"github.com/mkarimli/go-adboard-client/internal/services"
)

// collect drains the channel and returns every observed state.
func collect[T any](ch <-chan resource.Result[T]) []resource.Result[T] {
	var out []resource.Result[T]
	for r := range ch {
		out = append(out, r)
	}
	return out
}

func TestRun_LoadingThenSuccess(t *testing.T) {
	ch := run(context.Background(), 0, "fetch", func(ctx context.Context) (int, error) {
		return 7, nil
	})

	got := collect(ch)
	if len(got) != 2 {
		t.Fatalf("states = %d, want 2", len(got))
	}
	if !got[0].IsLoading() {
		t.Fatalf("first state = %+v, want Loading", got[0])
	}
	if !got[1].IsSuccess() || got[1].Value != 7 {
		t.Fatalf("terminal = %+v", got[1])
	}
}

func TestRun_ClassifiedErrorMessagePassesThrough(t *testing.T) {
	ch := run(context.Background(), 0, "fetch", func(ctx context.Context) (int, error) {
		return 0, &services.Error{Status: 409, Message: "email or username already exists"}
	})

	got := collect(ch)
	if len(got) != 2 || !got[1].IsError() {
		t.Fatalf("states = %+v", got)
	}
	if got[1].Message != "email or username already exists" {
		t.Fatalf("message = %q", got[1].Message)
	}
}

func TestRun_UnclassifiedErrorGetsOperationPrefix(t *testing.T) {
	ch := run(context.Background(), 0, "update profile", func(ctx context.Context) (int, error) {
		return 0, errors.New("boom")
	})

	got := collect(ch)
	if got[1].Message != "failed to update profile: boom" {
		t.Fatalf("message = %q", got[1].Message)
	}
}

func TestRun_CancelledContextEmitsNoTerminal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{})

	ch := run(ctx, 0, "fetch", func(ctx context.Context) (int, error) {
		close(started)
		<-ctx.Done()
		return 0, ctx.Err()
	})

	<-started
	cancel()

	got := collect(ch)
	if len(got) != 1 || !got[0].IsLoading() {
		t.Fatalf("states after cancellation = %+v, want only Loading", got)
	}
}

func TestRun_DelayHonoredBeforeTerminal(t *testing.T) {
	const delay = 30 * time.Millisecond
	start := time.Now()

	ch := run(context.Background(), delay, "fetch", func(ctx context.Context) (int, error) {
		return 1, nil
	})

	got := collect(ch)
	if elapsed := time.Since(start); elapsed < delay {
		t.Fatalf("terminal arrived after %v, want >= %v", elapsed, delay)
	}
	if len(got) != 2 || !got[1].IsSuccess() {
		t.Fatalf("states = %+v", got)
	}
}

func TestRun_ConcurrentInvocationsAreIndependent(t *testing.T) {
	call := func(v int) <-chan resource.Result[int] {
		return run(context.Background(), 0, "fetch", func(ctx context.Context) (int, error) {
			return v, nil
		})
	}

	a := call(1)
	b := call(2)

	ga, gb := collect(a), collect(b)
	if ga[1].Value != 1 || gb[1].Value != 2 {
		t.Fatalf("cross-talk between invocations: %+v %+v", ga, gb)
	}
}
