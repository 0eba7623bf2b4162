package shutdown_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gonotes/pkg/shutdown"
)

func waitAsync(ctx context.Context, timeout time.Duration, hooks ...shutdown.Hook) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		shutdown.Wait(ctx, timeout, hooks...)
		close(done)
	}()
	return done
}

func TestWaitExecutesHooks(t *testing.T) {
	var calls atomic.Int32
	hook := func(context.Context) error {
		calls.Add(1)
		return nil
	}
	failing := func(context.Context) error {
		calls.Add(1)
		return errors.New("close failed")
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := waitAsync(ctx, time.Second, hook, failing)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait did not return")
	}
	assert.Equal(t, int32(2), calls.Load())
}

func TestWaitRespectsTimeout(t *testing.T) {
	var completed atomic.Bool
	slowHook := func(ctx context.Context) error {
		select {
		case <-time.After(2 * time.Second):
			completed.Store(true)
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	start := time.Now()
	done := waitAsync(ctx, 200*time.Millisecond, slowHook)
	cancel()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("Wait did not return within the expected time")
	}

	assert.Less(t, time.Since(start), time.Second)
	assert.False(t, completed.Load())
}

func TestWaitRunsHooksConcurrently(t *testing.T) {
	sleepy := func(context.Context) error {
		time.Sleep(300 * time.Millisecond)
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	start := time.Now()
	done := waitAsync(ctx, time.Second, sleepy, sleepy, sleepy)
	cancel()

	<-done
	assert.Less(t, time.Since(start), 800*time.Millisecond, "hooks appear to run sequentially")
}
