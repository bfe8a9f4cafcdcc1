package app

import (
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/Shengwang-Community/ShengwangBeautyView/config"
	"github.com/Shengwang-Community/ShengwangBeautyView/debug"
	"github.com/Shengwang-Community/ShengwangBeautyView/ui/theme"
	"github.com/Shengwang-Community/ShengwangBeautyView/ui/view"
)

const debugLogInterval = 10 * time.Second

type app struct {
	c        *AppContainer
	logger   *slog.Logger
	interval time.Duration
	afterID  string
	stop     chan struct{}
	closed   bool
}

// NewApp prepares the main window for c.
func NewApp(title string, c *AppContainer) *app {
	a := &app{
		c:        c,
		logger:   c.Logger,
		interval: time.Duration(c.Config.PreviewIntervalMS) * time.Millisecond,
		stop:     make(chan struct{}),
	}
	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", c.Config.WindowWidth, c.Config.WindowHeight))
	return a
}

// Start builds the UI, attaches the effects session and blocks in the Tk
// event loop until the window closes.
func (a *app) Start() error {
	c := a.c
	theme.SetDark(c.Config.DarkMode)
	c.RootView.Build(a.toolbar(), c.PanelHandlers(), c.Icons, a.onSettings)
	c.WirePresenters(a.scheduleUpdate)

	if err := c.Facade.Initialize(c.Engine); err != nil {
		return fmt.Errorf("attach effects session: %w", err)
	}
	c.Beauty.Attach()
	c.RootView.SetCamera(c.Capture.SourceName())
	c.PreviewPresenter.Enable()

	if c.Config.Debug {
		debug.StartGoroutineLogger(debugLogInterval, a.logger, a.stop)
		debug.StartMemLogger(debugLogInterval, a.logger, a.stop)
		debug.StartEngineLogger(debugLogInterval, a.logger, c.Engine, a.stop)
	}

	a.scheduleUpdate()
	App.Wait()
	a.shutdown()
	return nil
}

func (a *app) toolbar() view.RootHandlers {
	c := a.c
	return view.RootHandlers{
		SwitchCamera: func() {
			name := c.Capture.Switch()
			c.RootView.SetCamera(name)
			c.Status.Post("Camera: " + name)
		},
		SaveAll: func() {
			c.SaveAll()
			c.Status.Post("Saved all modules")
		},
		ResetCurrent: func() {
			m, ok := c.Beauty.CurrentModule()
			if !ok {
				return
			}
			c.Beauty.ResetModule(m)
			c.Status.Post("Reset " + m.String())
		},
		TogglePreview: func() { c.PreviewPresenter.Toggle() },
		ToggleEffects: func() {
			if c.Beauty.ToggleEffects() {
				c.Status.Post("Effects on")
			} else {
				c.Status.Post("Effects off")
			}
		},
		ToggleDark: func() {
			c.Config.DarkMode = theme.ToggleDark()
			if err := c.Config.Save(c.ConfigPath); err != nil {
				a.logger.Error("save config", "error", err)
			}
		},
		PickRegion: func() {
			if c.RootView.Region != nil {
				c.RootView.Region.OpenOrFocus()
			}
		},
		Exit: a.exitHandler,
	}
}

func (a *app) onSettings(cfg *config.Config) {
	a.c.Render.MaxW = cfg.PreviewMaxWidth
	a.c.Render.MaxH = cfg.PreviewMaxHeight
	a.c.Status.Post("Settings saved")
}

func (a *app) scheduleUpdate() {
	// TclAfter keeps the loop on Tk's event loop thread.
	a.afterID = TclAfter(a.interval, func() { a.c.Loop.Tick() })
}

func (a *app) exitHandler() {
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
		a.afterID = ""
	}
	a.shutdown()
	Destroy(App)
}

func (a *app) shutdown() {
	if a.closed {
		return
	}
	a.closed = true
	close(a.stop)
	c := a.c
	if c.Config.SaveOnExit && c.Beauty != nil {
		c.SaveAll()
		a.logger.Info("modules saved on exit")
	}
	c.Close()
}
