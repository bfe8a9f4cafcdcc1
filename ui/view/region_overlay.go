package view

import (
	"fmt"
	"image"
	"log/slog"
	"sync/atomic"

	"github.com/Shengwang-Community/ShengwangBeautyView/config"
	"github.com/Shengwang-Community/ShengwangBeautyView/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders
	. "modernc.org/tk9.0"
)

// RegionOverlay lets the user frame the part of the desktop the screen camera
// captures. The window is see-through; its geometry becomes the region.
type RegionOverlay interface {
	OpenOrFocus()
	Clear()
	// ActiveRect is safe to call from the capture goroutine.
	ActiveRect() *image.Rectangle
}

type regionOverlay struct {
	logger  *slog.Logger
	cfg     *config.Config
	cfgPath string
	region  atomic.Pointer[image.Rectangle]
	win     *ToplevelWidget
}

// NewRegionOverlay restores the region saved in cfg.
func NewRegionOverlay(cfg *config.Config, cfgPath string, logger *slog.Logger) RegionOverlay {
	v := &regionOverlay{logger: logger, cfg: cfg, cfgPath: cfgPath}
	if r := cfg.ScreenRegion(); r != nil {
		v.region.Store(r)
	}
	return v
}

const overlayKey = "#008080"

func (v *regionOverlay) OpenOrFocus() {
	if v.win != nil {
		WmGeometry(v.win.Window)
		return
	}
	win := App.Toplevel(Borderwidth(2), Background(overlayKey))
	win.WmTitle("Screen Camera Region")
	v.win = win
	geom := "640x360+200+200"
	if r := v.ActiveRect(); r != nil {
		geom = fmt.Sprintf("%dx%d+%d+%d", r.Dx(), r.Dy(), r.Min.X, r.Min.Y)
	}
	WmGeometry(win.Window, geom)
	WmAttributes(win.Window, "-topmost", 1)
	WmAttributes(win.Window, "-transparentcolor", overlayKey)
	GridRowConfigure(win.Window, 0, Weight(1))
	GridColumnConfigure(win.Window, 0, Weight(1))
	center := win.Frame(Background(overlayKey))
	Grid(center, Row(0), Column(0), Sticky("nsew"))
	controls := win.Frame()
	Grid(controls, Row(1), Column(0), Sticky("we"))
	confirm := win.Button(Txt("Use Region [Enter]"), Command(v.confirm))
	Grid(confirm, In(controls), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	cancel := win.Button(Txt("Cancel [Esc]"), Command(v.destroy))
	Grid(cancel, In(controls), Row(0), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	clear := win.Button(Txt("Whole Screen"), Command(func() {
		v.Clear()
		v.destroy()
	}))
	Grid(clear, In(controls), Row(0), Column(2), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	Bind(win, "<Return>", Command(v.confirm))
	Bind(win, "<Escape>", Command(v.destroy))
}

func (v *regionOverlay) Clear() {
	v.region.Store(nil)
	v.persist(image.Rectangle{})
}

func (v *regionOverlay) confirm() {
	if v.win == nil {
		return
	}
	if r, ok := images.ParseGeometry(WmGeometry(v.win.Window)); ok {
		v.region.Store(&r)
		v.persist(r)
	}
	v.destroy()
}

func (v *regionOverlay) persist(r image.Rectangle) {
	if v.cfg == nil {
		return
	}
	v.cfg.SetScreenRegion(r)
	if err := v.cfg.Save(v.cfgPath); err != nil && v.logger != nil {
		v.logger.Error("save screen region", "error", err)
	}
}

func (v *regionOverlay) destroy() {
	if v.win != nil {
		Destroy(v.win)
		v.win = nil
	}
}

func (v *regionOverlay) ActiveRect() *image.Rectangle {
	r := v.region.Load()
	if r == nil || r.Empty() {
		return nil
	}
	c := *r
	return &c
}
