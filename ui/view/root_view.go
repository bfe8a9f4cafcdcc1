package view

import (
	"log/slog"

	"github.com/Shengwang-Community/ShengwangBeautyView/config"
	"github.com/Shengwang-Community/ShengwangBeautyView/ui/images"
	"github.com/Shengwang-Community/ShengwangBeautyView/ui/model"
	"github.com/Shengwang-Community/ShengwangBeautyView/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootHandlers are invoked on toolbar actions.
type RootHandlers struct {
	SwitchCamera  func()
	SaveAll       func()
	ResetCurrent  func()
	TogglePreview func()
	ToggleEffects func()
	ToggleDark    func()
	PickRegion    func()
	Exit          func()
}

// RootView composes the window: toolbar, status row, preview, settings and
// the beauty panel. It satisfies the presenters' view contracts.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	Session  SessionStats
	Settings SettingsPanel
	Preview  Preview
	Panel    *BeautyPanel
	Region   RegionOverlay

	StatusLabel *TLabelWidget
	CameraLabel *LabelWidget
	previewBtn  *TButtonWidget
}

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the layout. onSettings runs after the settings form is
// saved.
func (rv *RootView) Build(h RootHandlers, panel PanelHandlers, icons *images.IconCache, onSettings func(*config.Config)) {
	if rv == nil {
		return
	}
	// Row 0: toolbar
	bar := Frame()
	Grid(bar, Row(0), Column(0), Columnspan(6), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
	col := 0
	addButton := func(text, style string, fn func()) *TButtonWidget {
		if fn == nil {
			fn = func() {}
		}
		b := TButton(Txt(text), Command(fn))
		if style != "" {
			b.Configure(Style(style))
		}
		Grid(b, In(bar), Row(0), Column(col), Sticky("we"), Padx("0.2m"))
		col++
		return b
	}
	addButton("Switch Camera", "", h.SwitchCamera)
	addButton("Save", theme.StylePrimaryButton, h.SaveAll)
	addButton("Reset", theme.StyleDangerButton, h.ResetCurrent)
	rv.previewBtn = addButton("Preview On", "", h.TogglePreview)
	addButton("Effects On/Off", "", h.ToggleEffects)
	addButton("Dark Mode", "", h.ToggleDark)
	addButton("Screen Region", "", h.PickRegion)
	addButton("Exit", "", h.Exit)
	rv.CameraLabel = Label(Txt("Camera: "+rv.cfg.CameraSource), Anchor("w"))
	Grid(rv.CameraLabel, In(bar), Row(0), Column(col), Sticky("w"), Padx("0.6m"))

	// Row 1: session stats and status
	statusRow := Frame()
	Grid(statusRow, Row(1), Column(0), Columnspan(6), Sticky("we"), Padx("0.3m"))
	rv.Session = NewSessionStats(statusRow, 0, 0)
	rv.StatusLabel = TLabel(Txt(""), Style(theme.StyleStatusLabel))
	Grid(rv.StatusLabel, In(statusRow), Row(0), Column(4), Sticky("e"), Padx("0.3m"))

	// Row 2+: preview on the left, settings on the right
	rv.Preview = NewPreview(2, rv.cfg.PreviewMaxWidth, rv.cfg.PreviewMaxHeight)
	rv.Settings = NewSettingsPanel(rv.cfg, rv.cfgPath, rv.logger, onSettings)
	end := rv.Settings.Build(2, 4)
	if end < 3 {
		end = 3
	}
	rv.Panel = NewBeautyPanel(icons, panel, rv.logger)
	rv.Panel.Build(end)
	rv.Region = NewRegionOverlay(rv.cfg, rv.cfgPath, rv.logger)
}

// SetSession updates durations and the commit count.
func (rv *RootView) SetSession(s model.SessionStats) {
	if rv != nil && rv.Session != nil {
		rv.Session.SetSession(s)
	}
}

// SetTemplates shows the active templates summary.
func (rv *RootView) SetTemplates(text string) {
	if rv != nil && rv.Session != nil {
		rv.Session.SetTemplates(text)
	}
}

// SetStatus updates the transient status label.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.StatusLabel != nil {
		rv.StatusLabel.Configure(Txt(text))
	}
}

// SetCamera shows the active camera source.
func (rv *RootView) SetCamera(name string) {
	if rv != nil && rv.CameraLabel != nil {
		rv.CameraLabel.Configure(Txt("Camera: " + name))
	}
}

// UpdatePreview shows a rendered frame.
func (rv *RootView) UpdatePreview(png []byte) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.UpdatePreview(png)
	}
}

// PreviewReset clears the preview.
func (rv *RootView) PreviewReset() {
	if rv != nil && rv.Preview != nil {
		rv.Preview.Reset()
	}
}

// PreviewEnabled relabels the preview toggle.
func (rv *RootView) PreviewEnabled(on bool) {
	if rv == nil || rv.previewBtn == nil {
		return
	}
	if on {
		rv.previewBtn.Configure(Txt("Preview Off"))
		return
	}
	rv.previewBtn.Configure(Txt("Preview On"))
}
