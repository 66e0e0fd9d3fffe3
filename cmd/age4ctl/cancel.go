package main

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"time"
)

// stopWatcher polls for a sentinel file named "stop" in a directory on a
// background goroutine and exposes the result as an atomic flag, so the
// hot loop that checks it between work units never touches the filesystem
// itself.
type stopWatcher struct {
	stopped atomic.Bool
	done    chan struct{}
}

// watchStop starts polling dir for a "stop" file every interval. Call
// Close when the caller is done with it to stop the background goroutine.
func watchStop(dir string, interval time.Duration) *stopWatcher {
	w := &stopWatcher{done: make(chan struct{})}

	sentinel := filepath.Join(dir, "stop")
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if _, err := os.Stat(sentinel); err == nil {
					w.stopped.Store(true)
					return
				}
			case <-w.done:
				return
			}
		}
	}()

	return w
}

// Stopped reports whether a stop file has been observed.
func (w *stopWatcher) Stopped() bool {
	return w.stopped.Load()
}

// Close stops the background polling goroutine.
func (w *stopWatcher) Close() {
	close(w.done)
}
