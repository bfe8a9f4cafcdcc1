package presenter

import (
	"image"
	"image/color"
	"image/draw"
	"sync"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shengwang-Community/ShengwangBeautyView/domain/capture"
	"github.com/Shengwang-Community/ShengwangBeautyView/domain/effects"
	"github.com/Shengwang-Community/ShengwangBeautyView/ui/model"
)

type fakeFrames struct {
	mu      sync.Mutex
	running bool
	snap    capture.FrameSnapshot
}

func (f *fakeFrames) Running() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.running
}

func (f *fakeFrames) LatestFrame() capture.FrameSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snap
}

type fakeParams struct{ calls int }

func (p *fakeParams) Params() effects.Params {
	p.calls++
	return effects.Params{}
}

type fakeRenderView struct {
	mu     sync.Mutex
	frames [][]byte
}

func (v *fakeRenderView) UpdatePreview(png []byte) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.frames = append(v.frames, png)
}

func (v *fakeRenderView) count() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.frames)
}

func testFrame(seq uint64) capture.FrameSnapshot {
	img := image.NewRGBA(image.Rect(0, 0, 80, 60))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{R: 120, G: 90, B: 70, A: 255}), image.Point{}, draw.Src)
	return capture.FrameSnapshot{
		Image:    img,
		Face:     image.Rect(20, 10, 60, 50),
		Sequence: seq,
	}
}

func TestExecuteRender_ScalesAndEncodes(t *testing.T) {
	res := executeRender(renderTask{snapshot: testFrame(3), maxW: 40, maxH: 40})
	require.NoError(t, res.err)
	assert.Equal(t, uint64(3), res.sequence)
	require.NotEmpty(t, res.png)
	img, err := imaging.Decode(bytesReader(res.png))
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 30, img.Bounds().Dy())
}

func TestExecuteRender_NilFrame(t *testing.T) {
	res := executeRender(renderTask{})
	assert.Error(t, res.err)
}

func TestRenderPresenter_RendersEachSequenceOnce(t *testing.T) {
	frames := &fakeFrames{running: true, snap: testFrame(1)}
	params := &fakeParams{}
	view := &fakeRenderView{}
	m := &model.PreviewModel{}
	m.SetEnabled(true)
	p := NewRenderPresenter(m.Enabled, frames, params, view, m, 64, 64, nil)
	defer p.Close()

	p.ProcessFrame()
	assert.Eventually(t, func() bool {
		p.ProcessFrame()
		return view.count() == 1
	}, 2*time.Second, 10*time.Millisecond)

	// Same sequence is not dispatched again.
	for i := 0; i < 5; i++ {
		p.ProcessFrame()
	}
	assert.Equal(t, 1, params.calls)
	assert.Equal(t, uint64(1), m.Rendered())
}

func TestRenderPresenter_SkipsWhenDisabledOrStopped(t *testing.T) {
	frames := &fakeFrames{running: false, snap: testFrame(1)}
	params := &fakeParams{}
	m := &model.PreviewModel{}
	m.SetEnabled(true)
	p := NewRenderPresenter(m.Enabled, frames, params, &fakeRenderView{}, m, 64, 64, nil)
	defer p.Close()

	p.ProcessFrame()
	assert.Zero(t, params.calls)

	frames.mu.Lock()
	frames.running = true
	frames.mu.Unlock()
	m.SetEnabled(false)
	p.ProcessFrame()
	assert.Zero(t, params.calls)
}

func TestRenderPresenter_NilSafe(t *testing.T) {
	var p *RenderPresenter
	p.ProcessFrame()
	p.Close()
	NewRenderPresenter(nil, nil, nil, nil, nil, 0, 0, nil).ProcessFrame()
}

func TestRenderPresenter_CloseStopsProcessing(t *testing.T) {
	frames := &fakeFrames{running: true, snap: testFrame(1)}
	params := &fakeParams{}
	p := NewRenderPresenter(func() bool { return true }, frames, params, &fakeRenderView{}, nil, 64, 64, nil)
	p.Close()
	p.Close()
	p.ProcessFrame()
	assert.Zero(t, params.calls)
}
