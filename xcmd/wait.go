package xcmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
)

// WaitInterrupted blocks until one of signals arrives (SIGINT and SIGTERM by
// default) or ctx is done. A received signal is returned as an error.
func WaitInterrupted(ctx context.Context, signals ...os.Signal) error {
	sigChan := make(chan os.Signal, 1)

	if signals == nil {
		signals = append(signals, syscall.SIGINT, syscall.SIGTERM)
	}

	signal.Notify(sigChan, signals...)
	defer signal.Stop(sigChan)

	select {
	case v := <-sigChan:
		return errors.New(v.String())

	case <-ctx.Done():
		return ctx.Err()
	}
}

// SignalContext returns a context that is canceled when one of signals arrives.
// The signal is available through context.Cause. Calling the returned function
// releases the signal handler.
func SignalContext(ctx context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(ctx)

	go func() {
		cancel(WaitInterrupted(ctx, signals...))
	}()

	return ctx, func() { cancel(context.Canceled) }
}
