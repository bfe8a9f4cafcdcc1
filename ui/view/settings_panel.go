package view

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Shengwang-Community/ShengwangBeautyView/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// SettingsPanel edits the persisted configuration. Changes to the material
// path, store path and camera take effect on the next start.
type SettingsPanel interface {
	Build(startRow, column int) (endRow int)
	ApplyChanges() error
}

type settingsPanel struct {
	cfg      *config.Config
	cfgPath  string
	logger   *slog.Logger
	onApply  func(*config.Config)
	applyBtn *ButtonWidget
	widgets  map[string]*TextWidget
}

// NewSettingsPanel binds the form to cfg. onApply runs after a successful
// save and may be nil.
func NewSettingsPanel(cfg *config.Config, cfgPath string, logger *slog.Logger, onApply func(*config.Config)) SettingsPanel {
	return &settingsPanel{cfg: cfg, cfgPath: cfgPath, logger: logger, onApply: onApply, widgets: make(map[string]*TextWidget)}
}

func (v *settingsPanel) Build(startRow, column int) (row int) {
	c := v.cfg
	row = startRow
	makeRow := func(id, label, value string) {
		lbl := Label(Txt(label), Anchor("w"))
		Grid(lbl, Row(row), Column(column), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(22))
		Grid(w, Row(row), Column(column+1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		v.widgets[id] = w
		row++
	}
	makeRow("materialPath", "Material Path", c.MaterialPath)
	makeRow("storePath", "Snapshot Store", c.StorePath)
	makeRow("cameraSource", "Camera (testcard/screen)", c.CameraSource)
	makeRow("previewInterval", "Preview Interval ms", fmt.Sprintf("%d", c.PreviewIntervalMS))
	makeRow("previewMaxWidth", "Preview Max Width", fmt.Sprintf("%d", c.PreviewMaxWidth))
	makeRow("previewMaxHeight", "Preview Max Height", fmt.Sprintf("%d", c.PreviewMaxHeight))
	makeRow("logLevel", "Log Level", c.LogLevel)
	makeRow("saveOnExit", "Save On Exit (true/false)", fmt.Sprintf("%t", c.SaveOnExit))
	v.applyBtn = Button(Txt("Apply Settings"), Command(func() {
		if err := v.ApplyChanges(); err != nil && v.logger != nil {
			v.logger.Error("apply settings", "error", err)
		}
	}))
	Grid(v.applyBtn, Row(row), Column(column), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	return row
}

func (v *settingsPanel) text(id string) (string, bool) {
	w := v.widgets[id]
	if w == nil {
		return "", false
	}
	return strings.TrimSpace(strings.Join(w.Get("1.0", END), "")), true
}

func (v *settingsPanel) ApplyChanges() error {
	if v.cfg == nil {
		return nil
	}
	cfg := *v.cfg
	assignString := func(id string, dst *string) {
		if s, ok := v.text(id); ok {
			*dst = s
		}
	}
	assignInt := func(id string, dst *int) {
		if s, ok := v.text(id); ok {
			if i, err := strconv.Atoi(s); err == nil {
				*dst = i
			}
		}
	}
	assignBool := func(id string, dst *bool) {
		if s, ok := v.text(id); ok {
			if b, ok := parseBoolLoose(s); ok {
				*dst = b
			}
		}
	}
	assignString("materialPath", &cfg.MaterialPath)
	assignString("storePath", &cfg.StorePath)
	assignString("cameraSource", &cfg.CameraSource)
	assignInt("previewInterval", &cfg.PreviewIntervalMS)
	assignInt("previewMaxWidth", &cfg.PreviewMaxWidth)
	assignInt("previewMaxHeight", &cfg.PreviewMaxHeight)
	assignString("logLevel", &cfg.LogLevel)
	assignBool("saveOnExit", &cfg.SaveOnExit)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate settings: %w", err)
	}
	*v.cfg = cfg
	if err := v.cfg.Save(v.cfgPath); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	if v.logger != nil {
		v.logger.Info("settings saved", "path", v.cfgPath)
	}
	if v.onApply != nil {
		v.onApply(v.cfg)
	}
	return nil
}

func parseBoolLoose(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "on", "t":
		return true, true
	case "false", "0", "no", "n", "off", "f":
		return false, true
	default:
		return false, false
	}
}
