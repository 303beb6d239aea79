package httpnotify

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

// listenerBuffer is the number of pending reports kept before dropping.
const listenerBuffer = 100

// Listener catches errors from work nobody waits on.
//
// Reported errors that carry response information are passed to the
// handler's HandleError; all others are only logged. Reports are dropped
// when the buffer is full so reporting never blocks.
type Listener struct {
	handler *Handler
	logger  *zap.Logger
	reports chan error
	wg      sync.WaitGroup
}

// NewListener creates a listener feeding h.
func NewListener(h *Handler, logger *zap.Logger) *Listener {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Listener{
		handler: h,
		logger:  logger,
		reports: make(chan error, listenerBuffer),
	}
}

// Report hands an unhandled error to the listener. nil is ignored.
func (l *Listener) Report(err error) {
	if err == nil {
		return
	}
	select {
	case l.reports <- err:
	default:
		// Channel full, drop report to avoid blocking
		l.logger.Warn("dropping unhandled error", zap.Error(err))
	}
}

// Go runs fn in a new goroutine and reports the error it returns.
func (l *Listener) Go(ctx context.Context, fn func(ctx context.Context) error) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		l.Report(fn(ctx))
	}()
}

// Wait blocks until every function started with Go has returned.
func (l *Listener) Wait() {
	l.wg.Wait()
}

// Run processes reports until ctx is done, then drains what is pending.
func (l *Listener) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			l.Drain()
			return
		case err := <-l.reports:
			l.handle(err)
		}
	}
}

// Drain processes every pending report without waiting for new ones.
func (l *Listener) Drain() {
	for {
		select {
		case err := <-l.reports:
			l.handle(err)
		default:
			return
		}
	}
}

func (l *Listener) handle(err error) {
	var serr *StatusError
	if errors.As(err, &serr) {
		l.handler.HandleError(err)
		return
	}
	l.logger.Warn("unhandled error", zap.Error(err))
}
