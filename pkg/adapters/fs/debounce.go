package fs

import (
	"sync"
	"time"

	"github.com/dsrlabs/nbgen/pkg/core"
)

// debouncer coalesces bursts of filesystem events per path. Editors often
// emit several writes for one save; only the last event within the interval
// fires.
type debouncer struct {
	interval time.Duration

	mu      sync.Mutex
	pending map[string]*time.Timer
	wg      sync.WaitGroup
	stopped bool
}

func newDebouncer(interval time.Duration) *debouncer {
	return &debouncer{
		interval: interval,
		pending:  make(map[string]*time.Timer),
	}
}

// add schedules fire(e) after the interval, resetting any pending timer
// for the same path.
func (d *debouncer) add(e core.Event, fire func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	if t, ok := d.pending[e.Path]; ok {
		if t.Stop() {
			d.wg.Done()
		}
	}

	d.wg.Add(1)
	d.pending[e.Path] = time.AfterFunc(d.interval, func() {
		defer d.wg.Done()

		d.mu.Lock()
		delete(d.pending, e.Path)
		stopped := d.stopped
		d.mu.Unlock()

		if stopped {
			return
		}
		fire(e)
	})
}

// stopAndWait rejects new events and waits (bounded) for in-flight timers,
// so shutdown can safely close downstream channels.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	for path, t := range d.pending {
		if t.Stop() {
			d.wg.Done()
		}
		delete(d.pending, path)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
	}
}
