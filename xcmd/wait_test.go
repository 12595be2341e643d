//go:build unix

package xcmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// guardSignals keeps the test process alive if a signal is raised before the
// code under test starts listening.
func guardSignals(t *testing.T) {
	t.Helper()

	guard := make(chan os.Signal, 16)
	signal.Notify(guard, unix.SIGUSR1, unix.SIGUSR2)
	t.Cleanup(func() { signal.Stop(guard) })
}

// raiseUntilDone keeps sending sig to the current process until ctx is done,
// so the test does not depend on when signal.Notify was registered.
func raiseUntilDone(ctx context.Context, t *testing.T, sig unix.Signal) {
	t.Helper()

	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			assert.NoError(t, unix.Kill(unix.Getpid(), sig))
		}
	}
}

func TestWaitInterrupted(t *testing.T) {
	guardSignals(t)

	t.Run("returns the received signal", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		done := make(chan error, 1)
		go func() {
			done <- WaitInterrupted(ctx, unix.SIGUSR1)
		}()

		raiseCtx, stopRaising := context.WithCancel(ctx)
		defer stopRaising()
		go raiseUntilDone(raiseCtx, t, unix.SIGUSR1)

		err := <-done
		var sigErr *SignalError
		require.ErrorAs(t, err, &sigErr)
		assert.Equal(t, unix.SIGUSR1, sigErr.Signal)
		assert.Contains(t, err.Error(), "interrupted by signal")
	})

	t.Run("context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := WaitInterrupted(ctx, unix.SIGUSR2)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("default signals", func(t *testing.T) {
		assert.Equal(t, []os.Signal{unix.SIGINT, unix.SIGTERM}, defaultSignals())
	})
}

func TestRunWithSignals(t *testing.T) {
	guardSignals(t)

	t.Run("returns the function result", func(t *testing.T) {
		err := RunWithSignals(context.Background(), func(_ context.Context) error {
			return nil
		}, unix.SIGUSR2)
		require.NoError(t, err)

		expected := errors.New("recovery failed")
		err = RunWithSignals(context.Background(), func(_ context.Context) error {
			return expected
		}, unix.SIGUSR2)
		assert.Equal(t, expected, err)
	})

	t.Run("signal cancels the function", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		err := RunWithSignals(ctx, func(ctx context.Context) error {
			raiseUntilDone(ctx, t, unix.SIGUSR2)
			return ctx.Err()
		}, unix.SIGUSR2)

		var sigErr *SignalError
		require.ErrorAs(t, err, &sigErr)
		assert.Equal(t, unix.SIGUSR2, sigErr.Signal)
	})

	t.Run("parent cancellation is not a signal", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := RunWithSignals(ctx, func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}, unix.SIGUSR2)
		assert.ErrorIs(t, err, context.Canceled)

		var sigErr *SignalError
		assert.False(t, errors.As(err, &sigErr))
	})
}
