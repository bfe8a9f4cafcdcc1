package capture

import (
	"errors"
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	name string
	err  error
	seqs []uint64
}

var _ Source = (*stubSource)(nil)

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Grab(seq uint64) (Frame, error) {
	s.seqs = append(s.seqs, seq)
	if s.err != nil {
		return Frame{}, s.err
	}
	return Frame{Image: image.NewRGBA(image.Rect(0, 0, 4, 4)), Face: image.Rect(1, 1, 3, 3)}, nil
}

func TestCaptureOnce_StoresSnapshot(t *testing.T) {
	src := &stubSource{name: "a"}
	s := newCaptureService(nil, time.Millisecond, []Source{src})

	require.True(t, s.captureOnce())
	require.True(t, s.captureOnce())
	snap := s.LatestFrame()
	assert.EqualValues(t, 2, snap.Sequence)
	assert.Equal(t, "a", snap.Source)
	assert.Equal(t, image.Rect(1, 1, 3, 3), snap.Face)
	assert.Equal(t, []uint64{1, 2}, src.seqs)

	st := s.Stats()
	assert.EqualValues(t, 2, st.Captures)
	assert.EqualValues(t, 0, st.Skipped)
	assert.Equal(t, "a", st.Source)
}

func TestCaptureOnce_SkipsOnError(t *testing.T) {
	s := newCaptureService(nil, time.Millisecond, []Source{&stubSource{name: "bad", err: errors.New("boom")}})
	assert.False(t, s.captureOnce())
	assert.EqualValues(t, 1, s.Stats().Skipped)
	assert.Nil(t, s.LatestFrame().Image)

	empty := newCaptureService(nil, 0, nil)
	assert.False(t, empty.captureOnce())
	assert.Equal(t, "", empty.Switch())
}

func TestSwitch_RotatesSources(t *testing.T) {
	a, b := &stubSource{name: "a"}, &stubSource{name: "b"}
	s := NewCaptureService(nil, time.Millisecond, a, b)
	assert.Equal(t, "a", s.SourceName())
	assert.Equal(t, "b", s.Switch())
	assert.Equal(t, "a", s.Switch())
	assert.EqualValues(t, 2, s.Stats().Switches)
}

func TestStartStop(t *testing.T) {
	s := NewCaptureService(nil, time.Millisecond, NewTestCard(64, 48))
	s.Start()
	s.Start()
	assert.True(t, s.Running())
	assert.Eventually(t, func() bool { return s.LatestFrame().Image != nil }, 2*time.Second, 5*time.Millisecond)
	s.Stop()
	assert.False(t, s.Running())
}

func TestTestCard(t *testing.T) {
	card := NewTestCard(10, 10)
	f, err := card.Grab(1)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 48), f.Image.Bounds(), "minimum size enforced")
	assert.False(t, f.Face.Empty())
	assert.True(t, f.Face.In(f.Image.Bounds()))

	c := f.Image.RGBAAt(f.Face.Min.X+f.Face.Dx()/2, f.Face.Max.Y-2)
	assert.Equal(t, skinTone, c, "face is filled with skin tone")
}

func TestSources(t *testing.T) {
	assert.Equal(t, SourceScreen, Sources(SourceScreen, nil)[0].Name())
	assert.Equal(t, SourceTestCard, Sources("bogus", nil)[0].Name())
	assert.Len(t, Sources(SourceTestCard, nil), 2)
}
