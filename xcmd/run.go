package xcmd

import (
	"context"
	"errors"
	"os"
)

// RunWithSignals calls fn with a context that is cancelled when one of signals
// arrives (SIGINT and SIGTERM by default). If fn stops because of the signal,
// the returned error is the *SignalError rather than context.Canceled.
func RunWithSignals(ctx context.Context, fn func(ctx context.Context) error, signals ...os.Signal) error {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	go func() {
		var sigErr *SignalError
		if err := WaitInterrupted(ctx, signals...); errors.As(err, &sigErr) {
			cancel(sigErr)
		}
	}()

	err := fn(ctx)

	var sigErr *SignalError
	if err != nil && errors.Is(err, context.Canceled) && errors.As(context.Cause(ctx), &sigErr) {
		return sigErr
	}

	return err
}
