package capture

import (
	"image"
	"time"
)

// Frame is one image produced by a Source. Face is where the source believes
// the face is; zero when unknown.
type Frame struct {
	Image *image.RGBA
	Face  image.Rectangle
}

// FrameSnapshot carries the latest captured frame and metadata.
type FrameSnapshot struct {
	Image      *image.RGBA
	Face       image.Rectangle
	Source     string
	CapturedAt time.Time
	Sequence   uint64
}

// CaptureStats summarises capture loop behaviour for instrumentation.
type CaptureStats struct {
	Captures         uint64
	Skipped          uint64
	Switches         uint64
	AvgCapture       time.Duration
	AvgCaptureMicros float64
	LastCapture      time.Time
	LatestFrameAge   time.Duration
	Sequence         uint64
	Source           string
}

// FrameSource provides read-only access to captured frames.
type FrameSource interface {
	LatestFrame() FrameSnapshot
	Running() bool
}
