package presenter

// PreviewModel provides enabled state access.
type PreviewModel interface {
	Enabled() bool
	SetEnabled(bool)
}

// LifecycleContract narrows what the presenter needs from the capture layer.
type LifecycleContract interface {
	Start()
	Stop()
}

// PreviewView updates UI elements affected by preview toggling.
type PreviewView interface {
	PreviewReset()
	PreviewEnabled(bool)
}

// PreviewPresenter owns presentation logic for toggling the live preview.
type PreviewPresenter struct {
	model   PreviewModel
	service LifecycleContract
	view    PreviewView
}

func NewPreviewPresenter(model PreviewModel, service LifecycleContract, view PreviewView) *PreviewPresenter {
	return &PreviewPresenter{model: model, service: service, view: view}
}

func (c *PreviewPresenter) ready() bool {
	return c != nil && c.model != nil && c.service != nil && c.view != nil
}

// Enable starts the capture service. Idempotent.
func (c *PreviewPresenter) Enable() {
	if !c.ready() || c.model.Enabled() {
		return
	}
	c.service.Start()
	c.model.SetEnabled(true)
	c.view.PreviewEnabled(true)
}

// Disable stops the capture service and clears the preview. Idempotent.
func (c *PreviewPresenter) Disable() {
	if !c.ready() || !c.model.Enabled() {
		return
	}
	c.service.Stop()
	c.model.SetEnabled(false)
	c.view.PreviewReset()
	c.view.PreviewEnabled(false)
}

// Toggle flips enabled state delegating to Enable/Disable.
func (c *PreviewPresenter) Toggle() {
	if !c.ready() {
		return
	}
	if c.model.Enabled() {
		c.Disable()
		return
	}
	c.Enable()
}
