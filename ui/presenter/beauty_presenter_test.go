package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shengwang-Community/ShengwangBeautyView/domain/beauty"
	"github.com/Shengwang-Community/ShengwangBeautyView/domain/effects"
	"github.com/Shengwang-Community/ShengwangBeautyView/ui/model"
)

type fakePanel struct {
	setPages  int
	refreshes int
	shown     []int
	slider    SliderState
	sliders   int

	p              *BeautyPresenter
	sawReentryFlag bool
}

var _ PanelView = (*fakePanel)(nil)

func (v *fakePanel) SetPages([]*model.PageInfo)     { v.setPages++ }
func (v *fakePanel) RefreshPages([]*model.PageInfo) { v.refreshes++ }
func (v *fakePanel) ShowPage(i int)                 { v.shown = append(v.shown, i) }
func (v *fakePanel) SetSlider(s SliderState) {
	v.sliders++
	v.slider = s
	if v.p != nil && v.p.SliderUpdating() {
		v.sawReentryFlag = true
	}
}

const (
	pageBeauty = iota
	pageMakeup
	pageFilter
	pageSticker
)

// Item indexes on the beauty page.
const (
	idxToggle     = 0
	idxReset      = 1
	idxSmoothness = 2
	idxRedness    = 4
	idxChin       = 13
)

type fixture struct {
	fx    *beauty.Facade
	sim   *effects.Simulator
	panel *fakePanel
	sess  *model.SessionModel
	p     *BeautyPresenter
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	sim, err := effects.NewSimulator(effects.Options{AllowVirtual: true})
	require.NoError(t, err)
	fx := beauty.NewFacade(nil, nil, nil)
	require.NoError(t, fx.Initialize(sim))
	return attach(fx, sim)
}

func attach(fx *beauty.Facade, sim *effects.Simulator) *fixture {
	panel := &fakePanel{}
	sess := model.NewSessionModel()
	p := NewBeautyPresenter(fx, DefaultPageBuilders(fx), panel, sess, nil)
	panel.p = p
	p.Attach()
	return &fixture{fx: fx, sim: sim, panel: panel, sess: sess, p: p}
}

func (f *fixture) filterStrength() float64 {
	return f.sim.FloatParam(beauty.OptionFilter, beauty.KeyStrength)
}

func TestBeautyPresenter_InitialBuild(t *testing.T) {
	f := newFixture(t)
	pages := f.p.Pages()
	require.Len(t, pages, 4)
	assert.Equal(t, []string{PageBeauty, PageMakeup, PageFilter, PageSticker},
		[]string{pages[0].Name, pages[1].Name, pages[2].Name, pages[3].Name})
	assert.True(t, pages[pageBeauty].Selected)
	assert.Equal(t, 0, f.p.SelectedPage())
	assert.Equal(t, 1, f.panel.setPages)

	item, idx := f.p.SelectedItem()
	require.NotNil(t, item)
	assert.Equal(t, idxSmoothness, idx)
	assert.Equal(t, "beauty_effect_smoothness", item.Name)

	s := f.p.Slider()
	assert.True(t, s.Visible)
	assert.False(t, s.Stepped)
	assert.Equal(t, "0.70", s.Label)
}

func TestBeautyPresenter_SereneUrbanScenario(t *testing.T) {
	f := newFixture(t)
	f.p.SelectTab(pageFilter)
	assert.False(t, f.p.Slider().Visible, "none item selected")

	f.p.ActivateItem(pageFilter, 1) // Serene
	serene := f.p.Pages()[pageFilter].Items[1]
	assert.Equal(t, 0.65, serene.Value)
	assert.Equal(t, "0.65", f.p.Slider().Label)

	f.p.CommitSlider(0.3)
	assert.Equal(t, 0.3, f.filterStrength())

	f.p.ActivateItem(pageFilter, 2) // Urban
	assert.Equal(t, 0.8, f.p.Pages()[pageFilter].Items[2].Value)
	assert.Equal(t, 0.8, f.filterStrength())

	f.p.ActivateItem(pageFilter, 1) // Serene again: cached strength wins over node default
	assert.Equal(t, 0.3, f.filterStrength())
	assert.Equal(t, 0.3, serene.Value)
	assert.Equal(t, "0.30", f.p.Slider().Label)
	name, _ := f.fx.Template(beauty.ModuleFilter)
	assert.Equal(t, beauty.FilterSerene, name)
	assert.Equal(t, 1, f.sess.Stats().Commits)
}

func TestBeautyPresenter_ExternalChangeRefreshesInPlace(t *testing.T) {
	f := newFixture(t)
	f.p.SelectTab(pageFilter)
	before := f.p.Pages()[pageFilter]
	urban := before.Items[2]
	refreshes := f.panel.refreshes

	f.fx.ApplyFilter(beauty.FilterUrban, 0.4)

	assert.Equal(t, pageFilter, f.p.SelectedPage(), "page index survives rebuild")
	assert.Same(t, before, f.p.Pages()[pageFilter])
	assert.Same(t, urban, f.p.Pages()[pageFilter].Items[2])
	assert.True(t, urban.Selected)
	assert.Equal(t, 0.4, urban.Value)
	assert.Equal(t, 1, f.panel.setPages)
	assert.Equal(t, refreshes+1, f.panel.refreshes)
	assert.True(t, f.p.Slider().Visible)
	assert.Equal(t, "0.40", f.p.Slider().Label)
}

func TestBeautyPresenter_ResetRestoresDefaultsAndKeepsSelection(t *testing.T) {
	f := newFixture(t)
	f.p.CommitSlider(0.2)
	assert.Equal(t, 0.2, f.fx.Scalar(beauty.ParamSmoothness))

	f.p.ActivateItem(pageBeauty, idxReset)
	assert.Equal(t, 0.7, f.fx.Scalar(beauty.ParamSmoothness))
	item, idx := f.p.SelectedItem()
	assert.Equal(t, idxSmoothness, idx, "reset does not move the selection")
	assert.Equal(t, 0.7, item.Value)
	assert.Equal(t, "0.70", f.p.Slider().Label)
}

func TestBeautyPresenter_ToggleReflectsBothSwitches(t *testing.T) {
	cases := []struct {
		beauty, face bool
		want         bool
	}{
		{true, true, true},
		{true, false, true},
		{false, true, true},
		{false, false, false},
	}
	for _, tc := range cases {
		f := newFixture(t)
		f.fx.SetBeautyEnabled(tc.beauty)
		f.fx.SetFaceShapeEnabled(tc.face)
		toggle := f.p.Pages()[pageBeauty].Items[idxToggle]
		assert.Equal(t, tc.want, toggle.Toggled, "beauty=%v face=%v", tc.beauty, tc.face)

		f.p.ActivateItem(pageBeauty, idxToggle)
		assert.Equal(t, !tc.want, f.fx.BeautyEnabled())
		assert.Equal(t, !tc.want, f.fx.FaceShapeEnabled())
		assert.Equal(t, !tc.want, toggle.Toggled)
		_, idx := f.p.SelectedItem()
		assert.Equal(t, idxSmoothness, idx, "toggle does not move the selection")
	}
}

func TestBeautyPresenter_ToggleRebuildsOnce(t *testing.T) {
	f := newFixture(t)
	refreshes := f.panel.refreshes
	f.p.ActivateItem(pageBeauty, idxToggle)
	assert.Equal(t, refreshes+1, f.panel.refreshes, "two notifications coalesce into one rebuild")
}

func TestBeautyPresenter_ToggleEffects(t *testing.T) {
	f := newFixture(t)
	toggle := f.p.Pages()[pageBeauty].Items[idxToggle]
	require.True(t, toggle.Toggled)

	refreshes := f.panel.refreshes
	assert.False(t, f.p.ToggleEffects())
	assert.Equal(t, refreshes+1, f.panel.refreshes)
	assert.False(t, f.sim.Params().Loaded(beauty.ModuleBeauty))
	assert.False(t, toggle.Toggled, "beauty toggle follows the master switch")

	assert.True(t, f.p.ToggleEffects())
	assert.True(t, f.sim.Params().Loaded(beauty.ModuleBeauty))
	assert.True(t, toggle.Toggled)

	var nilPresenter *BeautyPresenter
	assert.False(t, nilPresenter.ToggleEffects())
}

func TestBeautyPresenter_SteppedSlider(t *testing.T) {
	f := newFixture(t)
	f.p.ActivateItem(pageBeauty, idxChin)
	s := f.p.Slider()
	assert.True(t, s.Visible)
	assert.True(t, s.Stepped)
	assert.Equal(t, -100.0, s.Min)
	assert.Equal(t, 100.0, s.Max)
	assert.Equal(t, "0", s.Label)

	f.p.CommitSlider(42.9)
	assert.Equal(t, 42, f.sim.FaceShapeArea(beauty.AreaChin))
	assert.Equal(t, "42", f.p.Slider().Label)

	f.p.DragSlider(10.5)
	assert.Equal(t, "10", f.p.Slider().Label)
	assert.Equal(t, 42, f.sim.FaceShapeArea(beauty.AreaChin), "drag does not reach the engine")

	f.p.CommitSlider(500)
	assert.Equal(t, 100, f.sim.FaceShapeArea(beauty.AreaChin), "clamped to range")
}

func TestBeautyPresenter_OutOfRangeIsIgnored(t *testing.T) {
	f := newFixture(t)
	sliders := f.panel.sliders
	f.p.SelectTab(9)
	f.p.SelectTab(-1)
	f.p.ActivateItem(pageBeauty, 999)
	f.p.ActivateItem(-1, 0)
	f.p.ActivateItem(7, 0)
	assert.Equal(t, 0, f.p.SelectedPage())
	assert.Equal(t, sliders, f.panel.sliders)
}

func TestBeautyPresenter_UpdateItem(t *testing.T) {
	f := newFixture(t)
	ok := f.p.UpdateItem(func(it *model.ItemInfo) bool {
		if it.Name != "beauty_effect_redness" {
			return false
		}
		it.Value = 0.9
		return true
	})
	assert.True(t, ok)
	assert.Equal(t, 0.9, f.fx.Scalar(beauty.ParamRedness))
	assert.Equal(t, 0.9, f.p.Pages()[pageBeauty].Items[idxRedness].Value)

	assert.False(t, f.p.UpdateItem(func(*model.ItemInfo) bool { return false }))
	assert.False(t, f.p.UpdateItem(nil))
}

func TestBeautyPresenter_StickerAndNone(t *testing.T) {
	f := newFixture(t)
	f.p.ActivateItem(pageSticker, 1)
	assert.Equal(t, pageSticker, f.p.SelectedPage())
	assert.False(t, f.p.Slider().Visible, "stickers have no slider")
	name, ok := f.fx.Template(beauty.ModuleSticker)
	assert.True(t, ok)
	assert.Equal(t, beauty.StickerChristmas, name)

	f.p.ActivateItem(pageSticker, 0)
	_, ok = f.fx.Template(beauty.ModuleSticker)
	assert.False(t, ok)
	item, idx := f.p.SelectedItem()
	assert.Equal(t, 0, idx)
	assert.Equal(t, model.KindNone, item.Kind)
	assert.False(t, f.p.Slider().Visible)
}

func TestBeautyPresenter_ResetAndSaveModule(t *testing.T) {
	f := newFixture(t)
	f.p.ActivateItem(pageFilter, 2)
	f.p.CommitSlider(0.1)
	f.p.ResetModule(beauty.ModuleFilter)
	assert.Equal(t, 0.8, f.filterStrength())
	assert.Equal(t, 0.1, f.p.Pages()[pageFilter].Items[2].Value, "cached strength is shown after reset")

	before := f.sim.Stats().Actions
	f.p.SaveModule(beauty.ModuleFilter)
	assert.Equal(t, before+1, f.sim.Stats().Actions)

	m, ok := f.p.CurrentModule()
	assert.True(t, ok)
	assert.Equal(t, beauty.ModuleFilter, m)
}

func TestBeautyPresenter_SliderGuardVisibleToView(t *testing.T) {
	f := newFixture(t)
	f.p.SelectTab(pageBeauty)
	assert.True(t, f.panel.sawReentryFlag)
	assert.False(t, f.p.SliderUpdating())
}

func TestBeautyPresenter_Detach(t *testing.T) {
	f := newFixture(t)
	f.p.Detach()
	refreshes := f.panel.refreshes
	f.fx.ApplyFilter(beauty.FilterGlow, 0.5)
	assert.Equal(t, refreshes, f.panel.refreshes)
	assert.Equal(t, 0, f.fx.Subscribers())
}

func TestBeautyPresenter_InertFacade(t *testing.T) {
	fx := beauty.NewFacade(nil, nil, nil)
	f := attach(fx, nil)
	toggle := f.p.Pages()[pageBeauty].Items[idxToggle]
	assert.False(t, toggle.Toggled)
	assert.Equal(t, 0.7, f.p.Pages()[pageBeauty].Items[idxSmoothness].Value)
	_, idx := f.p.SelectedItem()
	assert.Equal(t, -1, idx, "smoothness follows the beauty switch")
	assert.False(t, f.p.Slider().Visible)

	f.p.ActivateItem(pageFilter, 1)
	assert.Equal(t, 0.0, f.p.Pages()[pageFilter].Items[1].Value)
	f.p.CommitSlider(0.5)
	f.p.ActivateItem(pageBeauty, idxToggle)
}

func TestBeautyPresenter_NilSafe(t *testing.T) {
	var p *BeautyPresenter
	p.Attach()
	p.Rebuild()
	p.SelectTab(0)
	p.ActivateItem(0, 0)
	p.DragSlider(1)
	p.CommitSlider(1)
	p.ResetModule(beauty.ModuleBeauty)
	assert.Nil(t, p.Pages())
	assert.False(t, p.UpdateItem(func(*model.ItemInfo) bool { return true }))
}
