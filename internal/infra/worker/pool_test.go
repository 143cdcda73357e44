//go:build !integration

package worker_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"telegram-weather-bot/internal/infra/worker"
)

func newTestLogger() *zerolog.Logger {
	l := zerolog.New(io.Discard)
	return &l
}

func TestPool(t *testing.T) {
	t.Run("should run submitted tasks", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		t.Cleanup(cancel)

		pool := worker.NewPool(2, newTestLogger())
		pool.Start(ctx)
		t.Cleanup(pool.Stop)

		done := make(chan struct{})
		err := pool.Submit(func(ctx context.Context) error {
			close(done)
			return nil
		})
		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("task was never executed")
		}
	})

	t.Run("should reject nil tasks", func(t *testing.T) {
		pool := worker.NewPool(1, newTestLogger())
		if err := pool.Submit(nil); err == nil {
			t.Fatal("Submit(nil) expected error, got nil")
		}
	})

	t.Run("should drop tasks when saturated", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		t.Cleanup(cancel)

		pool := worker.NewPool(1, newTestLogger())
		pool.Start(ctx)

		gate := make(chan struct{})
		started := make(chan struct{})
		if err := pool.Submit(func(ctx context.Context) error {
			close(started)
			<-gate
			return nil
		}); err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		<-started

		// Queue capacity is workers*4; fill it while the single worker is held.
		for i := 0; i < 4; i++ {
			if err := pool.Submit(func(ctx context.Context) error { return nil }); err != nil {
				t.Fatalf("Submit() #%d error = %v", i, err)
			}
		}
		if err := pool.Submit(func(ctx context.Context) error { return nil }); err == nil {
			t.Fatal("Submit() on a full queue expected error, got nil")
		}

		close(gate)
		pool.Stop()
	})
}
