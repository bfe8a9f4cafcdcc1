package debug

import (
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/Shengwang-Community/ShengwangBeautyView/domain/effects"
)

// EngineStats is satisfied by the simulated engine.
type EngineStats interface {
	Stats() effects.Stats
}

// StartEngineLogger logs engine call counters and the per-interval write
// rate until stop is closed.
func StartEngineLogger(interval time.Duration, logger *slog.Logger, engine EngineStats, stop <-chan struct{}) {
	if engine == nil || logger == nil {
		return
	}
	if interval <= 0 {
		interval = 5 * time.Second
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		var prev effects.Stats
		for {
			select {
			case <-stop:
				return
			case <-t.C:
			}
			st := engine.Stats()
			logger.Info("engine-stats", EngineAttrs(st, prev)...)
			prev = st
		}
	}()
}

// EngineAttrs formats st as log attributes; writes_delta is measured
// against prev.
func EngineAttrs(st, prev effects.Stats) []any {
	return []any{
		slog.String("adds", humanize.Comma(int64(st.Adds))),
		slog.String("removes", humanize.Comma(int64(st.Removes))),
		slog.String("actions", humanize.Comma(int64(st.Actions))),
		slog.String("reads", humanize.Comma(int64(st.Reads))),
		slog.String("writes", humanize.Comma(int64(st.Writes))),
		slog.Uint64("writes_delta", st.Writes-prev.Writes),
		slog.Uint64("restored", st.Restore),
	}
}
