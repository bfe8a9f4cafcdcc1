package presenter

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/Shengwang-Community/ShengwangBeautyView/domain/capture"
	"github.com/Shengwang-Community/ShengwangBeautyView/domain/effects"
	"github.com/Shengwang-Community/ShengwangBeautyView/domain/render"
	"github.com/Shengwang-Community/ShengwangBeautyView/ui/images"
	"github.com/Shengwang-Community/ShengwangBeautyView/ui/model"
)

// FrameSource supplies the most recent camera frame.
type FrameSource interface {
	Running() bool
	LatestFrame() capture.FrameSnapshot
}

// ParamSource snapshots the engine parameters the renderer applies.
type ParamSource interface {
	Params() effects.Params
}

// RenderView displays encoded preview frames.
type RenderView interface {
	UpdatePreview(png []byte)
}

type renderTask struct {
	snapshot capture.FrameSnapshot
	params   effects.Params
	maxW     int
	maxH     int
}

type renderResult struct {
	sequence uint64
	png      []byte
	err      error
	duration time.Duration
}

// RenderPresenter schedules preview rendering on a worker goroutine and hands
// finished frames to the view. ProcessFrame must be called from the UI
// goroutine. Only the newest pending task and result are kept.
type RenderPresenter struct {
	Enabled func() bool
	Source  FrameSource
	Params  ParamSource
	View    RenderView
	Model   *model.PreviewModel
	MaxW    int
	MaxH    int
	logger  *slog.Logger

	workerOnce sync.Once
	closeOnce  sync.Once
	workCh     chan renderTask
	resultCh   chan renderResult

	lastSeq uint64
}

// NewRenderPresenter constructs a render presenter.
func NewRenderPresenter(enabled func() bool, source FrameSource, params ParamSource, view RenderView, m *model.PreviewModel, maxW, maxH int, logger *slog.Logger) *RenderPresenter {
	return &RenderPresenter{
		Enabled:  enabled,
		Source:   source,
		Params:   params,
		View:     view,
		Model:    m,
		MaxW:     maxW,
		MaxH:     maxH,
		logger:   logger,
		workCh:   make(chan renderTask, 1),
		resultCh: make(chan renderResult, 1),
	}
}

// ProcessFrame hands finished renders to the view and schedules the latest
// frame when it has not been rendered yet.
func (p *RenderPresenter) ProcessFrame() {
	if p == nil || p.Enabled == nil || p.Source == nil || p.Params == nil || p.View == nil {
		return
	}

	p.ensureWorker()

	for drained := false; !drained; {
		select {
		case res := <-p.resultCh:
			p.handleResult(res)
		default:
			drained = true
		}
	}

	if !p.Enabled() || !p.Source.Running() {
		return
	}
	snapshot := p.Source.LatestFrame()
	if snapshot.Image == nil || snapshot.Sequence == 0 || snapshot.Sequence == p.lastSeq {
		return
	}
	p.lastSeq = snapshot.Sequence
	p.dispatchTask(renderTask{
		snapshot: snapshot,
		params:   p.Params.Params(),
		maxW:     p.MaxW,
		maxH:     p.MaxH,
	})
}

// Close stops the worker. Further ProcessFrame calls are ignored.
func (p *RenderPresenter) Close() {
	if p == nil {
		return
	}
	p.workerOnce.Do(func() {})
	p.closeOnce.Do(func() {
		close(p.workCh)
		p.Enabled = nil
	})
}

func (p *RenderPresenter) ensureWorker() {
	p.workerOnce.Do(func() {
		go p.runWorker()
	})
}

func (p *RenderPresenter) runWorker() {
	for task := range p.workCh {
		res := executeRender(task)
		select {
		case p.resultCh <- res:
		default:
			select {
			case <-p.resultCh:
			default:
			}
			select {
			case p.resultCh <- res:
			default:
			}
		}
	}
}

func (p *RenderPresenter) dispatchTask(task renderTask) {
	select {
	case p.workCh <- task:
	default:
		select {
		case <-p.workCh:
		default:
		}
		select {
		case p.workCh <- task:
		default:
		}
	}
}

func executeRender(task renderTask) renderResult {
	res := renderResult{sequence: task.snapshot.Sequence}
	frame := task.snapshot.Image
	if frame == nil {
		res.err = errors.New("nil frame")
		return res
	}
	start := time.Now()
	out := render.Apply(frame, task.snapshot.Face, task.params)
	scaled := images.ScaleToFit(out, task.maxW, task.maxH)
	res.png = images.EncodePNG(scaled)
	res.duration = time.Since(start)
	return res
}

func (p *RenderPresenter) handleResult(res renderResult) {
	if res.err != nil {
		if p.logger != nil {
			p.logger.Error("render preview", "error", res.err)
		}
		return
	}
	if p.Model != nil && !p.Model.MarkRendered(res.sequence) {
		return
	}
	if len(res.png) > 0 {
		p.View.UpdatePreview(res.png)
	}
	if p.logger != nil {
		p.logger.Debug("preview rendered", "sequence", res.sequence, "duration", res.duration)
	}
}
