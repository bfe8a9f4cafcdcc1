package debug

import (
	"log/slog"
	"runtime"

	"github.com/dustin/go-humanize"
)

func heapAttrs(ms *runtime.MemStats, goroutines int) []any {
	return []any{
		slog.Int("goroutines", goroutines),
		slog.String("heap_alloc", humanize.IBytes(ms.HeapAlloc)),
		slog.String("heap_inuse", humanize.IBytes(ms.HeapInuse)),
		slog.String("heap_idle", humanize.IBytes(ms.HeapIdle)),
		slog.String("heap_sys", humanize.IBytes(ms.HeapSys)),
		slog.String("next_gc", humanize.IBytes(ms.NextGC)),
		slog.Uint64("num_gc", uint64(ms.NumGC)),
	}
}
