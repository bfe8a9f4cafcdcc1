package model

import "sync/atomic"

// PreviewModel tracks whether the live preview is running and how many frames
// it has rendered. The zero value is stopped and usable. Atomic because the
// capture goroutine and UI callbacks both read it.
type PreviewModel struct {
	enabled  atomic.Bool
	rendered atomic.Uint64
	lastSeq  atomic.Uint64
}

func (m *PreviewModel) Enabled() bool {
	if m == nil {
		return false
	}
	return m.enabled.Load()
}

func (m *PreviewModel) SetEnabled(b bool) {
	if m == nil {
		return
	}
	m.enabled.Store(b)
}

// MarkRendered records that frame seq was shown. It reports false when seq
// was already rendered.
func (m *PreviewModel) MarkRendered(seq uint64) bool {
	if m == nil {
		return false
	}
	if m.lastSeq.Swap(seq) == seq {
		return false
	}
	m.rendered.Add(1)
	return true
}

// Rendered returns the number of frames shown so far.
func (m *PreviewModel) Rendered() uint64 {
	if m == nil {
		return 0
	}
	return m.rendered.Load()
}
