package hookrelay

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/hookrelay/hookrelay-go/event"
	"github.com/hookrelay/hookrelay-go/outcome"
)

// invoke runs the callback, enforcing the optional timeout. Without a
// timeout the callback runs on the request goroutine, bounded only by the
// host server. With one, it runs on its own goroutine and the deadline wins
// the race; a callback that ignores its context is abandoned, not killed.
func (s *SDK) invoke(ctx context.Context, fn HandlerFunc, evt *event.Event, timeout time.Duration) error {
	if timeout <= 0 {
		return safeInvoke(ctx, fn, evt)
	}

	tctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- safeInvoke(tctx, fn, evt)
	}()

	select {
	case err := <-done:
		return err
	case <-tctx.Done():
		return tctx.Err()
	}
}

// safeInvoke converts a callback panic into an error carrying the stack.
func safeInvoke(ctx context.Context, fn HandlerFunc, evt *event.Event) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = &panicError{value: v, stack: debug.Stack()}
		}
	}()
	return fn(ctx, evt)
}

// panicError wraps a recovered callback panic.
type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	if err, ok := e.value.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(e.value)
}

// errorDetail shapes a callback failure into the outcome report's error
// record. Recovered panics carry their stack; plain errors do not.
func errorDetail(err error) *outcome.ErrorDetail {
	var pe *panicError
	if errors.As(err, &pe) {
		return &outcome.ErrorDetail{
			Name:    "Error",
			Message: pe.Error(),
			Stack:   string(pe.stack),
		}
	}
	return &outcome.ErrorDetail{
		Name:    "Error",
		Message: err.Error(),
	}
}
