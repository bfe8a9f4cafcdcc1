package presenter

import (
	"github.com/Shengwang-Community/ShengwangBeautyView/domain/beauty"
	"github.com/Shengwang-Community/ShengwangBeautyView/ui/model"
)

// EffectState is the read side of the effect facade used to build pages.
type EffectState interface {
	Scalar(id beauty.ParamID) float64
	BeautyEnabled() bool
	FaceShapeEnabled() bool
	Template(m beauty.Module) (string, bool)
	Strength(m beauty.Module) float64
}

// PageBuilder projects the current effect state into one page.
type PageBuilder interface {
	Build() *model.PageInfo
}

// Page and item display keys.
const (
	PageBeauty  = "beauty_group_beauty"
	PageMakeup  = "beauty_group_makeup"
	PageFilter  = "beauty_group_filter"
	PageSticker = "beauty_group_sticker"

	ItemEnable = "beauty_effect_enable"
	ItemReset  = "beauty_effect_reset"
	ItemNone   = "beauty_effect_none"
)

// BeautyPageBuilder lists the enable toggle, reset, skin, face-shape and
// quality controls.
type BeautyPageBuilder struct {
	fx EffectState
}

func NewBeautyPageBuilder(fx EffectState) *BeautyPageBuilder {
	return &BeautyPageBuilder{fx: fx}
}

func (b *BeautyPageBuilder) Build() *model.PageInfo {
	page := &model.PageInfo{Name: PageBeauty, Module: beauty.ModuleBeauty}
	beautyOn := b.fx.BeautyEnabled()
	page.Items = append(page.Items,
		&model.ItemInfo{
			Name:     ItemEnable,
			Icon:     "beauty_ic_effect_enable",
			Kind:     model.KindToggle,
			Toggled:  beautyOn || b.fx.FaceShapeEnabled(),
			Activate: model.ToggleEnable(),
		},
		&model.ItemInfo{
			Name:     ItemReset,
			Icon:     "beauty_ic_effect_reset",
			Kind:     model.KindReset,
			Activate: model.ResetModule(beauty.ModuleBeauty),
		},
	)
	for _, p := range beauty.Params() {
		prefix := "effect_"
		if p.Group == beauty.GroupFaceShape {
			prefix = "face_shape_"
		}
		item := &model.ItemInfo{
			Name:       "beauty_" + prefix + string(p.ID),
			Icon:       "beauty_ic_" + prefix + string(p.ID),
			Value:      b.fx.Scalar(p.ID),
			Range:      model.ValueRange{Min: p.Min, Max: p.Max},
			ShowSlider: true,
			Kind:       model.KindNormal,
			Commit:     model.SetScalar(p.ID),
		}
		if p.ID == beauty.ParamSmoothness {
			item.Selected = beautyOn
		}
		page.Items = append(page.Items, item)
	}
	return page
}

// TemplatePageBuilder lists a "none" item followed by one item per template
// of a template-valued module.
type TemplatePageBuilder struct {
	fx     EffectState
	module beauty.Module
	name   string
	prefix string
	slider bool
}

func NewMakeupPageBuilder(fx EffectState) *TemplatePageBuilder {
	return &TemplatePageBuilder{fx: fx, module: beauty.ModuleStyleMakeup, name: PageMakeup, prefix: "makeup", slider: true}
}

func NewFilterPageBuilder(fx EffectState) *TemplatePageBuilder {
	return &TemplatePageBuilder{fx: fx, module: beauty.ModuleFilter, name: PageFilter, prefix: "filter", slider: true}
}

// NewStickerPageBuilder builds sticker items without a slider.
func NewStickerPageBuilder(fx EffectState) *TemplatePageBuilder {
	return &TemplatePageBuilder{fx: fx, module: beauty.ModuleSticker, name: PageSticker, prefix: "sticker", slider: false}
}

func (b *TemplatePageBuilder) Build() *model.PageInfo {
	current, applied := b.fx.Template(b.module)
	page := &model.PageInfo{Name: b.name, Module: b.module}
	page.Items = append(page.Items, &model.ItemInfo{
		Name:     ItemNone,
		Icon:     "beauty_ic_none",
		Selected: !applied,
		Kind:     model.KindNone,
		Activate: model.ClearTemplate(b.module),
	})
	strength := b.fx.Strength(b.module)
	for _, t := range beauty.Templates(b.module) {
		page.Items = append(page.Items, &model.ItemInfo{
			Name:       "beauty_" + b.prefix + "_" + t.Slug,
			Icon:       "beauty_ic_" + b.prefix + "_" + t.Slug,
			Value:      strength,
			Range:      model.UnitRange,
			Selected:   applied && current == t.Name,
			ShowSlider: b.slider,
			Kind:       model.KindNormal,
			Commit:     model.SetStrength(b.module),
			Activate:   model.SelectTemplate(b.module, t.Name),
		})
	}
	return page
}

// DefaultPageBuilders returns the four builders in tab order.
func DefaultPageBuilders(fx EffectState) []PageBuilder {
	return []PageBuilder{
		NewBeautyPageBuilder(fx),
		NewMakeupPageBuilder(fx),
		NewFilterPageBuilder(fx),
		NewStickerPageBuilder(fx),
	}
}
