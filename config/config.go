package config

import (
	"encoding/json"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPath is the config file used when no --config flag is given.
const DefaultPath = "beautyview.json"

// Camera sources accepted in CameraSource.
const (
	CameraTestCard = "testcard"
	CameraScreen   = "screen"
)

// Config holds runtime configuration for the effects session and the window.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug    bool   `json:"debug"`
	LogLevel string `json:"log_level"`
	// LogFile enables a rotating log file alongside stdout when set.
	LogFile string `json:"log_file"`

	WindowWidth  int `json:"window_width"`
	WindowHeight int `json:"window_height"`

	// MaterialPath points at the effects material bundle. Empty runs the
	// engine without materials.
	MaterialPath string `json:"material_path"`
	StorePath    string `json:"store_path"`

	// Preview
	CameraSource      string `json:"camera_source"`
	PreviewIntervalMS int    `json:"preview_interval_ms"`
	PreviewMaxWidth   int    `json:"preview_max_width"`
	PreviewMaxHeight  int    `json:"preview_max_height"`

	// Screen camera region (global coordinates). Zero size captures the
	// whole primary display.
	ScreenX int `json:"screen_x"`
	ScreenY int `json:"screen_y"`
	ScreenW int `json:"screen_w"`
	ScreenH int `json:"screen_h"`

	DarkMode   bool `json:"dark_mode"`
	SaveOnExit bool `json:"save_on_exit"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:             false,
		LogLevel:          "info",
		LogFile:           "",
		WindowWidth:       1024,
		WindowHeight:      720,
		MaterialPath:      "",
		StorePath:         filepath.Join("data", "snapshots.db"),
		CameraSource:      CameraTestCard,
		PreviewIntervalMS: 66,
		PreviewMaxWidth:   640,
		PreviewMaxHeight:  360,
		DarkMode:          false,
		SaveOnExit:        false,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		c.LogLevel = "info"
	}
	if c.WindowWidth < 640 {
		c.WindowWidth = 640
	}
	if c.WindowHeight < 480 {
		c.WindowHeight = 480
	}
	if c.StorePath == "" {
		c.StorePath = filepath.Join("data", "snapshots.db")
	}
	c.CameraSource = strings.ToLower(strings.TrimSpace(c.CameraSource))
	if c.CameraSource != CameraScreen {
		c.CameraSource = CameraTestCard
	}
	if c.PreviewIntervalMS < 16 {
		c.PreviewIntervalMS = 16
	}
	if c.PreviewIntervalMS > 1000 {
		c.PreviewIntervalMS = 1000
	}
	if c.PreviewMaxWidth < 160 {
		c.PreviewMaxWidth = 160
	}
	if c.PreviewMaxHeight < 120 {
		c.PreviewMaxHeight = 120
	}
	if c.ScreenW < 0 || c.ScreenH < 0 {
		c.ScreenW, c.ScreenH = 0, 0
	}
	return nil
}

// ScreenRegion returns the configured screen camera region, or nil when the
// whole display is captured.
func (c *Config) ScreenRegion() *image.Rectangle {
	if c == nil || c.ScreenW <= 0 || c.ScreenH <= 0 {
		return nil
	}
	r := image.Rect(c.ScreenX, c.ScreenY, c.ScreenX+c.ScreenW, c.ScreenY+c.ScreenH)
	return &r
}

// SetScreenRegion stores r, or clears the region when r is empty.
func (c *Config) SetScreenRegion(r image.Rectangle) {
	if r.Empty() {
		c.ScreenW, c.ScreenH = 0, 0
		return
	}
	c.ScreenX, c.ScreenY = r.Min.X, r.Min.Y
	c.ScreenW, c.ScreenH = r.Dx(), r.Dy()
}

// Level returns the slog level for LogLevel; Debug forces debug.
func (c *Config) Level() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
