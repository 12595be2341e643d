// Package xcmd holds process-level helpers for the command line tools.
package xcmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

// SignalError reports the signal that interrupted a wait.
type SignalError struct {
	Signal os.Signal
}

func (e *SignalError) Error() string {
	return fmt.Sprintf("interrupted by signal: %s", e.Signal)
}

// WaitInterrupted blocks until one of signals arrives or ctx is done.
// Without signals it waits for SIGINT and SIGTERM.
func WaitInterrupted(ctx context.Context, signals ...os.Signal) error {
	if len(signals) == 0 {
		signals = defaultSignals()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, signals...)
	defer signal.Stop(sigChan)

	select {
	case sig := <-sigChan:
		return &SignalError{Signal: sig}

	case <-ctx.Done():
		return ctx.Err()
	}
}
