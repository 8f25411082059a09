package httpserver

import (
	"context"
	"sync"
)

// drainer collects background work started by handlers that outlives the
// request, such as Telegram replies sent after the webhook was acknowledged.
type drainer struct {
	mu    sync.Mutex
	waits []func()
}

func (d *drainer) add(wait func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.waits = append(d.waits, wait)
}

// wait blocks until every registered wait returns or ctx is done.
func (d *drainer) wait(ctx context.Context) error {
	d.mu.Lock()
	waits := append([]func(){}, d.waits...)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for _, w := range waits {
			w()
		}
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
