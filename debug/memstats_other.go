//go:build !windows

package debug

import (
	"log/slog"
	"runtime"
	"time"
)

// StartMemLogger logs Go heap stats every interval until stop is closed.
func StartMemLogger(interval time.Duration, logger *slog.Logger, stop <-chan struct{}) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
			}
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			logger.Info("memstats", heapAttrs(&ms, runtime.NumGoroutine())...)
		}
	}()
}
