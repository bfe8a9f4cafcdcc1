package view

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Shengwang-Community/ShengwangBeautyView/assets"
	"github.com/Shengwang-Community/ShengwangBeautyView/ui/images"
	"github.com/Shengwang-Community/ShengwangBeautyView/ui/model"
	"github.com/Shengwang-Community/ShengwangBeautyView/ui/presenter"
	"github.com/Shengwang-Community/ShengwangBeautyView/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// PanelHandlers route user gestures to the control presenter.
type PanelHandlers struct {
	SelectTab      func(index int)
	ActivateItem   func(page, index int)
	DragSlider     func(v float64)
	CommitSlider   func(v float64)
	SliderUpdating func() bool
}

const itemColumns = 6

// BeautyPanel draws the tab strip, the shared slider and the item grid of the
// visible page. Only the visible page has widgets; switching tabs recreates
// the grid.
type BeautyPanel struct {
	icons  *images.IconCache
	h      PanelHandlers
	logger *slog.Logger

	tabFrame  *FrameWidget
	itemFrame *FrameWidget
	tabs      []*TButtonWidget
	items     []*TButtonWidget
	photos    []*Img

	sliderName *TLabelWidget
	scale      *TScaleWidget
	valueLbl   *TLabelWidget

	pages  []*model.PageInfo
	shown  int
	slider presenter.SliderState
}

var _ presenter.PanelView = (*BeautyPanel)(nil)

func NewBeautyPanel(icons *images.IconCache, h PanelHandlers, logger *slog.Logger) *BeautyPanel {
	return &BeautyPanel{icons: icons, h: h, logger: logger, shown: -1}
}

// Build places the panel starting at row and returns the next free row.
func (v *BeautyPanel) Build(row int) int {
	v.tabFrame = Frame()
	Grid(v.tabFrame, Row(row), Column(0), Columnspan(5), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++

	sliderFrame := Frame()
	Grid(sliderFrame, Row(row), Column(0), Columnspan(5), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	v.sliderName = TLabel(Txt(""), Width(18), Anchor("w"))
	Grid(v.sliderName, In(sliderFrame), Row(0), Column(0), Sticky("w"))
	v.scale = TScale(Orient("horizontal"), From(0), To(1), Length("70m"), Command(v.onDrag))
	Grid(v.scale, In(sliderFrame), Row(0), Column(1), Sticky("we"), Padx("0.3m"))
	Bind(v.scale, "<ButtonRelease-1>", Command(v.onRelease))
	v.valueLbl = TLabel(Txt(""), Width(6), Style(theme.StyleValueLabel))
	Grid(v.valueLbl, In(sliderFrame), Row(0), Column(2), Sticky("e"))
	row++

	v.itemFrame = Frame()
	Grid(v.itemFrame, Row(row), Column(0), Columnspan(5), Sticky("nwe"), Padx("0.4m"), Pady("0.3m"))
	row++
	v.SetSlider(presenter.SliderState{})
	return row
}

func (v *BeautyPanel) scaleValue() (float64, bool) {
	if v.scale == nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v.scale.Get()), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func (v *BeautyPanel) ignoreSlider() bool {
	return !v.slider.Visible || (v.h.SliderUpdating != nil && v.h.SliderUpdating())
}

func (v *BeautyPanel) onDrag() {
	if v.ignoreSlider() || v.h.DragSlider == nil {
		return
	}
	if f, ok := v.scaleValue(); ok {
		v.h.DragSlider(f)
	}
}

func (v *BeautyPanel) onRelease() {
	if v.ignoreSlider() || v.h.CommitSlider == nil {
		return
	}
	if f, ok := v.scaleValue(); ok {
		v.h.CommitSlider(f)
	}
}

// SetPages recreates the tab strip and forces the item grid to be redrawn.
func (v *BeautyPanel) SetPages(pages []*model.PageInfo) {
	for _, t := range v.tabs {
		Destroy(t)
	}
	v.tabs = v.tabs[:0]
	v.pages = pages
	v.shown = -1
	for i, p := range pages {
		idx := i
		b := TButton(Txt(assets.Label(p.Name)), Style(theme.ItemStyle(true, p.Selected)), Command(func() {
			if v.h.SelectTab != nil {
				v.h.SelectTab(idx)
			}
		}))
		Grid(b, In(v.tabFrame), Row(0), Column(i), Sticky("w"), Padx("0.2m"))
		v.tabs = append(v.tabs, b)
	}
}

// RefreshPages restyles existing tabs and items from pages.
func (v *BeautyPanel) RefreshPages(pages []*model.PageInfo) {
	if len(pages) != len(v.tabs) {
		v.SetPages(pages)
		return
	}
	v.pages = pages
	for i, p := range pages {
		v.tabs[i].Configure(Style(theme.ItemStyle(true, p.Selected)))
	}
	if v.shown < 0 || v.shown >= len(pages) {
		return
	}
	page := pages[v.shown]
	if len(page.Items) != len(v.items) {
		v.drawItems(v.shown)
		return
	}
	v.releasePhotos()
	for j, it := range page.Items {
		photo := v.photo(it)
		v.items[j].Configure(Image(photo), Txt(itemText(it)), Style(theme.ItemStyle(false, it.Selected)))
	}
}

// ShowPage draws the item grid of page index.
func (v *BeautyPanel) ShowPage(index int) {
	if index < 0 || index >= len(v.pages) {
		return
	}
	for i, p := range v.pages {
		v.tabs[i].Configure(Style(theme.ItemStyle(true, p.Selected)))
	}
	if index == v.shown {
		return
	}
	v.drawItems(index)
}

func (v *BeautyPanel) drawItems(index int) {
	for _, b := range v.items {
		Destroy(b)
	}
	v.items = v.items[:0]
	v.releasePhotos()
	v.shown = index
	page := v.pages[index]
	for j, it := range page.Items {
		item := j
		b := TButton(
			Image(v.photo(it)),
			Txt(itemText(it)),
			Compound("top"),
			Width(10),
			Style(theme.ItemStyle(false, it.Selected)),
			Command(func() {
				if v.h.ActivateItem != nil {
					v.h.ActivateItem(index, item)
				}
			}),
		)
		Grid(b, In(v.itemFrame), Row(j/itemColumns), Column(j%itemColumns), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
		v.items = append(v.items, b)
	}
	if v.logger != nil {
		v.logger.Debug("item grid drawn", "page", page.Name, "items", len(page.Items))
	}
}

func itemText(it *model.ItemInfo) string {
	label := assets.Label(it.Name)
	if it.Kind == model.KindToggle {
		state := "off"
		if it.Toggled {
			state = "on"
		}
		return fmt.Sprintf("%s (%s)", label, state)
	}
	return label
}

func (v *BeautyPanel) photo(it *model.ItemInfo) *Img {
	var data []byte
	if v.icons != nil {
		data = v.icons.Icon(it)
	}
	if len(data) == 0 {
		return nil
	}
	p := NewPhoto(Data(data))
	v.photos = append(v.photos, p)
	return p
}

func (v *BeautyPanel) releasePhotos() {
	for _, p := range v.photos {
		p.Delete()
	}
	v.photos = v.photos[:0]
}

// SetSlider moves the scale to s. Callbacks fired by the move are ignored
// through SliderUpdating.
func (v *BeautyPanel) SetSlider(s presenter.SliderState) {
	v.slider = s
	if v.scale == nil {
		return
	}
	if !s.Visible {
		v.scale.Configure(State("disabled"))
		v.sliderName.Configure(Txt(""))
		v.valueLbl.Configure(Txt(""))
		return
	}
	name := ""
	if v.shown >= 0 && v.shown < len(v.pages) {
		if idx := v.pages[v.shown].SelectedIndex(); idx >= 0 {
			name = assets.Label(v.pages[v.shown].Items[idx].Name)
		}
	}
	v.scale.Configure(State("normal"), From(s.Min), To(s.Max), Value(s.Value))
	v.sliderName.Configure(Txt(name))
	v.valueLbl.Configure(Txt(s.Label))
}
