package presenter

import (
	"log/slog"

	"github.com/Shengwang-Community/ShengwangBeautyView/domain/beauty"
	"github.com/Shengwang-Community/ShengwangBeautyView/ui/model"
)

// Effects is the facade surface driven by the control panel.
type Effects interface {
	EffectState
	SetScalar(id beauty.ParamID, v float64)
	SetStrength(m beauty.Module, v float64)
	CachedStrength(m beauty.Module, template string) (float64, bool)
	SetTemplate(m beauty.Module, name string)
	ClearTemplate(m beauty.Module)
	ResetModule(m beauty.Module)
	SaveModule(m beauty.Module)
	SetBeautyEnabled(on bool)
	SetFaceShapeEnabled(on bool)
	Enable(on bool)
	EffectsEnabled() bool
	Subscribe(fn func()) beauty.Subscription
	Unsubscribe(sub beauty.Subscription) bool
}

// SliderState is what the shared slider shows for the selected item.
type SliderState struct {
	Visible bool
	Min     float64
	Max     float64
	Value   float64
	Stepped bool
	Label   string
}

// PanelView renders pages, items and the slider.
type PanelView interface {
	// SetPages replaces every tab and item widget.
	SetPages(pages []*model.PageInfo)
	// RefreshPages updates existing widgets from the same page instances.
	RefreshPages(pages []*model.PageInfo)
	ShowPage(index int)
	SetSlider(s SliderState)
}

// CommitRecorder counts committed slider edits.
type CommitRecorder interface {
	RecordCommit()
}

// BeautyPresenter owns the control panel state: which page and item are
// selected and what the slider shows. All methods run on the UI goroutine.
//
// Facade notifications that arrive while a gesture is being handled are
// coalesced into one rebuild once the gesture completes.
type BeautyPresenter struct {
	fx       Effects
	builders []PageBuilder
	view     PanelView
	commits  CommitRecorder
	logger   *slog.Logger

	pages        []*model.PageInfo
	selectedPage int
	slider       SliderState

	sliderUpdating bool
	handling       int
	pendingRebuild bool

	sub      beauty.Subscription
	attached bool
}

func NewBeautyPresenter(fx Effects, builders []PageBuilder, view PanelView, commits CommitRecorder, logger *slog.Logger) *BeautyPresenter {
	if logger == nil {
		logger = slog.Default()
	}
	return &BeautyPresenter{fx: fx, builders: builders, view: view, commits: commits, logger: logger}
}

// Attach subscribes to facade changes and performs the initial build with the
// first page selected.
func (p *BeautyPresenter) Attach() {
	if p == nil || p.fx == nil {
		return
	}
	if !p.attached {
		p.sub = p.fx.Subscribe(p.onEffectsChanged)
		p.attached = true
	}
	p.Rebuild()
}

// Detach stops listening for facade changes.
func (p *BeautyPresenter) Detach() {
	if p == nil || !p.attached {
		return
	}
	p.fx.Unsubscribe(p.sub)
	p.attached = false
}

func (p *BeautyPresenter) onEffectsChanged() {
	if p.handling > 0 {
		p.pendingRebuild = true
		return
	}
	p.Rebuild()
}

func (p *BeautyPresenter) begin() { p.handling++ }

func (p *BeautyPresenter) end() {
	p.handling--
	if p.handling == 0 && p.pendingRebuild {
		p.pendingRebuild = false
		p.Rebuild()
	}
}

// Pages returns the current page list. Callers must not retain it across
// rebuilds that change the structure.
func (p *BeautyPresenter) Pages() []*model.PageInfo {
	if p == nil {
		return nil
	}
	return p.pages
}

func (p *BeautyPresenter) SelectedPage() int {
	if p == nil {
		return 0
	}
	return p.selectedPage
}

// CurrentModule returns the module of the visible page.
func (p *BeautyPresenter) CurrentModule() (beauty.Module, bool) {
	if p == nil || p.selectedPage < 0 || p.selectedPage >= len(p.pages) {
		return 0, false
	}
	return p.pages[p.selectedPage].Module, true
}

// SelectedItem returns the selected item of the visible page.
func (p *BeautyPresenter) SelectedItem() (*model.ItemInfo, int) {
	if p == nil || p.selectedPage < 0 || p.selectedPage >= len(p.pages) {
		return nil, -1
	}
	page := p.pages[p.selectedPage]
	idx := page.SelectedIndex()
	return page.Item(idx), idx
}

func (p *BeautyPresenter) Slider() SliderState {
	if p == nil {
		return SliderState{}
	}
	return p.slider
}

// Rebuild re-runs every page builder. The selected page index survives. When
// the page and item layout is unchanged the existing instances are refreshed
// in place so widgets and an in-flight drag keep their identity.
func (p *BeautyPresenter) Rebuild() {
	if p == nil {
		return
	}
	fresh := make([]*model.PageInfo, 0, len(p.builders))
	for _, b := range p.builders {
		if page := b.Build(); page != nil {
			fresh = append(fresh, page)
		}
	}
	if p.selectedPage < 0 || p.selectedPage >= len(fresh) {
		p.selectedPage = 0
	}
	if sameLayout(p.pages, fresh) {
		for i, page := range p.pages {
			refreshPage(page, fresh[i])
		}
		p.markSelectedPage()
		if p.view != nil {
			p.view.RefreshPages(p.pages)
		}
	} else {
		p.pages = fresh
		p.markSelectedPage()
		if p.view != nil {
			p.view.SetPages(p.pages)
		}
	}
	p.logger.Debug("control panel rebuilt", "pages", len(p.pages), "selected", p.selectedPage)
	if p.view != nil && len(p.pages) > 0 {
		p.view.ShowPage(p.selectedPage)
	}
	p.updateSlider()
}

func sameLayout(old, fresh []*model.PageInfo) bool {
	if len(old) == 0 || len(old) != len(fresh) {
		return false
	}
	for i := range old {
		if old[i].Name != fresh[i].Name || len(old[i].Items) != len(fresh[i].Items) {
			return false
		}
		for j := range old[i].Items {
			if old[i].Items[j].Name != fresh[i].Items[j].Name {
				return false
			}
		}
	}
	return true
}

// refreshPage copies fresh data into dst. On the beauty page the user's item
// selection is kept since it is not derived from engine state.
func refreshPage(dst, fresh *model.PageInfo) {
	keep := -1
	if dst.Module == beauty.ModuleBeauty {
		if idx := dst.SelectedIndex(); idx >= 0 && dst.Items[idx].Kind == model.KindNormal {
			keep = idx
		}
	}
	for j, it := range dst.Items {
		*it = *fresh.Items[j]
		if keep >= 0 {
			it.Selected = j == keep
		}
	}
}

func (p *BeautyPresenter) markSelectedPage() {
	for i, page := range p.pages {
		page.Selected = i == p.selectedPage
	}
}

// SelectTab makes page index visible. Out of range indices are ignored.
func (p *BeautyPresenter) SelectTab(index int) {
	if p == nil || index < 0 || index >= len(p.pages) {
		return
	}
	p.selectedPage = index
	p.markSelectedPage()
	if p.view != nil {
		p.view.ShowPage(index)
	}
	p.updateSlider()
}

// ActivateItem handles a tap on item index of page. Reset and toggle items run
// their command without moving the selection; other items become selected.
func (p *BeautyPresenter) ActivateItem(page, index int) {
	if p == nil || page < 0 || page >= len(p.pages) {
		return
	}
	item := p.pages[page].Item(index)
	if item == nil {
		return
	}
	if page != p.selectedPage {
		p.SelectTab(page)
	}
	p.logger.Debug("item activated", "page", p.pages[page].Name, "item", item.Name, "kind", item.Kind.String())

	p.begin()
	defer p.end()
	switch item.Kind {
	case model.KindReset, model.KindToggle:
		p.run(item, item.Activate, item.Value)
	default:
		for _, other := range p.pages[page].Items {
			other.Selected = false
		}
		item.Selected = true
		p.run(item, item.Activate, item.Value)
		if p.view != nil {
			p.view.RefreshPages(p.pages)
		}
		p.updateSlider()
	}
}

// DragSlider tracks the slider during a drag. Only the label and the item
// value change; the engine is written on CommitSlider.
func (p *BeautyPresenter) DragSlider(v float64) {
	item, _ := p.SelectedItem()
	if item == nil || !item.ShowSlider {
		return
	}
	item.Value = item.Range.Snap(item.Range.Clamp(v))
	p.updateSlider()
}

// CommitSlider stores v on the selected item and runs its commit command.
func (p *BeautyPresenter) CommitSlider(v float64) {
	item, _ := p.SelectedItem()
	if item == nil || !item.ShowSlider {
		return
	}
	item.Value = item.Range.Snap(item.Range.Clamp(v))
	p.begin()
	p.run(item, item.Commit, item.Value)
	if p.commits != nil {
		p.commits.RecordCommit()
	}
	p.end()
	p.updateSlider()
}

// UpdateItem lets callers edit an item programmatically. The first item for
// which updater returns true has its commit command re-run with its value.
func (p *BeautyPresenter) UpdateItem(updater func(*model.ItemInfo) bool) bool {
	if p == nil || updater == nil {
		return false
	}
	for _, page := range p.pages {
		for _, item := range page.Items {
			if !updater(item) {
				continue
			}
			p.begin()
			p.run(item, item.Commit, item.Value)
			p.end()
			p.updateSlider()
			return true
		}
	}
	return false
}

// ResetModule restores m's defaults and rebuilds the pages.
func (p *BeautyPresenter) ResetModule(m beauty.Module) {
	if p == nil || p.fx == nil {
		return
	}
	p.begin()
	p.fx.ResetModule(m)
	p.pendingRebuild = true
	p.end()
}

// ToggleEffects flips the master switch for every module and returns the new
// state. Any enabled module counts as on.
func (p *BeautyPresenter) ToggleEffects() bool {
	if p == nil || p.fx == nil {
		return false
	}
	on := !p.fx.EffectsEnabled()
	p.begin()
	p.fx.Enable(on)
	p.pendingRebuild = true
	p.end()
	p.logger.Debug("effects toggled", "enabled", on)
	return on
}

// SaveModule persists m's current parameters.
func (p *BeautyPresenter) SaveModule(m beauty.Module) {
	if p == nil || p.fx == nil {
		return
	}
	p.fx.SaveModule(m)
}

// run interprets cmd for item. v is the value committed by the slider.
func (p *BeautyPresenter) run(item *model.ItemInfo, cmd model.Command, v float64) {
	if p.fx == nil {
		return
	}
	switch cmd.Kind {
	case model.CmdSetScalar:
		p.fx.SetScalar(cmd.Param, v)
	case model.CmdSetStrength:
		p.fx.SetStrength(cmd.Module, v)
	case model.CmdSelectTemplate:
		cached, ok := p.fx.CachedStrength(cmd.Module, cmd.Template)
		p.fx.SetTemplate(cmd.Module, cmd.Template)
		if ok {
			p.fx.SetStrength(cmd.Module, cached)
		}
		item.Value = p.fx.Strength(cmd.Module)
	case model.CmdClearTemplate:
		p.fx.ClearTemplate(cmd.Module)
	case model.CmdResetModule:
		p.fx.ResetModule(cmd.Module)
		p.pendingRebuild = true
	case model.CmdToggleEnable:
		on := !item.Toggled
		p.fx.SetBeautyEnabled(on)
		p.fx.SetFaceShapeEnabled(on)
		item.Toggled = on
		p.pendingRebuild = true
	}
}

// updateSlider pushes the selected item's value and range to the slider.
// sliderUpdating stops a view callback fired by SetSlider from re-entering.
func (p *BeautyPresenter) updateSlider() {
	if p.sliderUpdating {
		return
	}
	p.sliderUpdating = true
	defer func() { p.sliderUpdating = false }()

	item, _ := p.SelectedItem()
	s := SliderState{}
	if item != nil && item.ShowSlider {
		v := item.Range.Snap(item.Value)
		s = SliderState{
			Visible: true,
			Min:     item.Range.Min,
			Max:     item.Range.Max,
			Value:   v,
			Stepped: item.Range.Stepped(),
			Label:   item.Range.Format(v),
		}
	}
	p.slider = s
	if p.view != nil {
		p.view.SetSlider(s)
	}
}

// SliderUpdating reports whether the presenter is currently pushing slider
// state. Views ignore slider callbacks while it is true.
func (p *BeautyPresenter) SliderUpdating() bool {
	return p != nil && p.sliderUpdating
}
