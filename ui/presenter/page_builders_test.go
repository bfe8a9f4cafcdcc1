package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Shengwang-Community/ShengwangBeautyView/domain/beauty"
	"github.com/Shengwang-Community/ShengwangBeautyView/ui/model"
)

type stubState struct {
	beautyOn, faceOn bool
	templates        map[beauty.Module]string
	strength         float64
}

var _ EffectState = (*stubState)(nil)

func (s *stubState) Scalar(id beauty.ParamID) float64 {
	p, _ := beauty.LookupParam(id)
	return p.Default
}
func (s *stubState) BeautyEnabled() bool    { return s.beautyOn }
func (s *stubState) FaceShapeEnabled() bool { return s.faceOn }
func (s *stubState) Template(m beauty.Module) (string, bool) {
	n, ok := s.templates[m]
	return n, ok
}
func (s *stubState) Strength(beauty.Module) float64 { return s.strength }

func TestBeautyPageBuilder_Layout(t *testing.T) {
	page := NewBeautyPageBuilder(&stubState{beautyOn: true}).Build()
	assert.Equal(t, PageBeauty, page.Name)
	assert.Equal(t, beauty.ModuleBeauty, page.Module)
	assert.Len(t, page.Items, 2+9+29+4)

	assert.Equal(t, ItemEnable, page.Items[0].Name)
	assert.Equal(t, model.KindToggle, page.Items[0].Kind)
	assert.True(t, page.Items[0].Toggled)
	assert.Equal(t, ItemReset, page.Items[1].Name)
	assert.Equal(t, model.CmdResetModule, page.Items[1].Activate.Kind)

	assert.Equal(t, "beauty_effect_smoothness", page.Items[2].Name)
	assert.True(t, page.Items[2].Selected)
	assert.Equal(t, "beauty_face_shape_face_contour", page.Items[11].Name)
	assert.True(t, page.Items[11].Range.Stepped())
	assert.Equal(t, "beauty_effect_brightness", page.Items[len(page.Items)-1].Name)
	assert.Equal(t, model.ValueRange{Min: -1, Max: 1}, page.Items[len(page.Items)-1].Range)

	for _, it := range page.Items[2:] {
		assert.True(t, it.ShowSlider, it.Name)
		assert.Equal(t, model.CmdSetScalar, it.Commit.Kind, it.Name)
	}
}

func TestBeautyPageBuilder_ToggleEitherSwitch(t *testing.T) {
	page := NewBeautyPageBuilder(&stubState{faceOn: true}).Build()
	assert.True(t, page.Items[0].Toggled)
	assert.False(t, page.Items[2].Selected)
	assert.Equal(t, -1, page.SelectedIndex())
}

func TestTemplatePageBuilders(t *testing.T) {
	st := &stubState{templates: map[beauty.Module]string{beauty.ModuleFilter: beauty.FilterUrban}, strength: 0.4}

	filter := NewFilterPageBuilder(st).Build()
	assert.Equal(t, PageFilter, filter.Name)
	assert.Len(t, filter.Items, 1+37)
	assert.Equal(t, ItemNone, filter.Items[0].Name)
	assert.False(t, filter.Items[0].Selected)
	assert.Equal(t, "beauty_filter_urban", filter.Items[2].Name)
	assert.True(t, filter.Items[2].Selected)
	assert.Equal(t, 0.4, filter.Items[2].Value)
	assert.Equal(t, 2, filter.SelectedIndex())
	assert.Equal(t, model.SelectTemplate(beauty.ModuleFilter, beauty.FilterUrban), filter.Items[2].Activate)

	makeup := NewMakeupPageBuilder(st).Build()
	assert.Len(t, makeup.Items, 1+10)
	assert.True(t, makeup.Items[0].Selected)
	assert.False(t, makeup.Items[0].ShowSlider)
	assert.Equal(t, "beauty_makeup_young", makeup.Items[1].Name)
	assert.True(t, makeup.Items[1].ShowSlider)

	sticker := NewStickerPageBuilder(st).Build()
	assert.Len(t, sticker.Items, 1+12)
	for _, it := range sticker.Items {
		assert.False(t, it.ShowSlider, it.Name)
	}
	assert.Equal(t, "beauty_sticker_christmas", sticker.Items[1].Name)
}

func TestDefaultPageBuildersOrder(t *testing.T) {
	bs := DefaultPageBuilders(&stubState{})
	var names []string
	for _, b := range bs {
		names = append(names, b.Build().Name)
	}
	assert.Equal(t, []string{PageBeauty, PageMakeup, PageFilter, PageSticker}, names)
}
