package capture

import (
	"log/slog"
	"sync/atomic"
	"time"
)

const captureStatsLogInterval = 5 * time.Second

// CaptureService runs a background loop pulling frames from the active
// source and exposes the latest one alongside instrumentation data. Use
// NewCaptureService to construct an instance.
type CaptureService interface {
	Start()
	Stop()
	LatestFrame() FrameSnapshot
	Running() bool
	Stats() CaptureStats
	// Switch activates the next source and returns its name.
	Switch() string
	SourceName() string
}

type captureService struct {
	running      atomic.Bool
	generation   atomic.Uint64
	latest       atomic.Pointer[FrameSnapshot]
	sources      []Source
	active       atomic.Uint64
	interval     time.Duration
	logger       *slog.Logger
	captures     atomic.Uint64
	skipped      atomic.Uint64
	switches     atomic.Uint64
	captureNanos atomic.Uint64
	sequence     atomic.Uint64
}

func newCaptureService(logger *slog.Logger, interval time.Duration, sources []Source) *captureService {
	if interval <= 0 {
		interval = 33 * time.Millisecond
	}
	return &captureService{sources: sources, interval: interval, logger: logger}
}

// NewCaptureService constructs a service cycling through sources, first one
// active. interval paces the loop.
func NewCaptureService(logger *slog.Logger, interval time.Duration, sources ...Source) CaptureService {
	return newCaptureService(logger, interval, sources)
}

func (s *captureService) LatestFrame() FrameSnapshot {
	snap := s.latest.Load()
	if snap == nil {
		return FrameSnapshot{}
	}
	return *snap
}

func (s *captureService) Running() bool { return s.running.Load() }

func (s *captureService) source() Source {
	if len(s.sources) == 0 {
		return nil
	}
	return s.sources[s.active.Load()%uint64(len(s.sources))]
}

func (s *captureService) SourceName() string {
	if src := s.source(); src != nil {
		return src.Name()
	}
	return ""
}

func (s *captureService) Switch() string {
	if len(s.sources) == 0 {
		return ""
	}
	s.active.Add(1)
	s.switches.Add(1)
	name := s.SourceName()
	if s.logger != nil {
		s.logger.Info("camera switched", "source", name)
	}
	return name
}

func (s *captureService) Stats() CaptureStats {
	captures := s.captures.Load()
	skipped := s.skipped.Load()
	total := s.captureNanos.Load()
	var avg time.Duration
	avgMicros := 0.0
	if captures > 0 && total > 0 {
		avg = time.Duration(total / captures)
		avgMicros = float64(avg) / float64(time.Microsecond)
	}
	snapshot := s.LatestFrame()
	age := time.Duration(0)
	if !snapshot.CapturedAt.IsZero() {
		age = time.Since(snapshot.CapturedAt)
	}
	return CaptureStats{
		Captures:         captures,
		Skipped:          skipped,
		Switches:         s.switches.Load(),
		AvgCapture:       avg,
		AvgCaptureMicros: avgMicros,
		LastCapture:      snapshot.CapturedAt,
		LatestFrameAge:   age,
		Sequence:         snapshot.Sequence,
		Source:           s.SourceName(),
	}
}

func (s *captureService) Start() {
	if !s.running.CompareAndSwap(false, true) {
		return
	}
	// A loop left over from a quick Stop/Start exits on the generation check.
	gen := s.generation.Add(1)
	go s.loop(gen)
}

func (s *captureService) Stop() {
	s.running.Store(false)
}

func (s *captureService) alive(gen uint64) bool {
	return s.running.Load() && s.generation.Load() == gen
}

func (s *captureService) loop(gen uint64) {
	logTicker := time.NewTicker(captureStatsLogInterval)
	defer logTicker.Stop()
	for s.alive(gen) {
		s.captureOnce()

		select {
		case <-logTicker.C:
			s.logStats()
		default:
		}

		time.Sleep(s.interval)
	}
}

// captureOnce grabs one frame from the active source. It reports whether a
// frame was stored.
func (s *captureService) captureOnce() bool {
	src := s.source()
	if src == nil {
		s.skipped.Add(1)
		return false
	}
	start := time.Now()
	seq := s.sequence.Load() + 1
	frame, err := src.Grab(seq)
	if err != nil || frame.Image == nil {
		s.skipped.Add(1)
		if err != nil && s.logger != nil {
			s.logger.Error("capture frame", "source", src.Name(), "error", err)
		}
		return false
	}
	elapsed := time.Since(start)
	s.captureNanos.Add(uint64(elapsed.Nanoseconds()))
	s.captures.Add(1)
	seq = s.sequence.Add(1)
	s.latest.Store(&FrameSnapshot{
		Image:      frame.Image,
		Face:       frame.Face,
		Source:     src.Name(),
		CapturedAt: time.Now(),
		Sequence:   seq,
	})
	return true
}

func (s *captureService) logStats() {
	if s.logger == nil {
		return
	}
	stats := s.Stats()
	s.logger.Debug("capture.stats",
		"source", stats.Source,
		"captures", stats.Captures,
		"skipped", stats.Skipped,
		"avg_capture", stats.AvgCapture,
		"age", stats.LatestFrameAge,
	)
}
