package app

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/Shengwang-Community/ShengwangBeautyView/config"
	"github.com/Shengwang-Community/ShengwangBeautyView/domain/beauty"
	"github.com/Shengwang-Community/ShengwangBeautyView/domain/capture"
	"github.com/Shengwang-Community/ShengwangBeautyView/domain/effects"
	"github.com/Shengwang-Community/ShengwangBeautyView/domain/store"
	"github.com/Shengwang-Community/ShengwangBeautyView/ui/images"
	"github.com/Shengwang-Community/ShengwangBeautyView/ui/model"
	"github.com/Shengwang-Community/ShengwangBeautyView/ui/presenter"
	"github.com/Shengwang-Community/ShengwangBeautyView/ui/view"
)

const (
	iconCacheSize = 256
	statusTTL     = 4 * time.Second
)

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config     *config.Config
	ConfigPath string
	Logger     *slog.Logger

	Store   *store.SQLiteStore
	Engine  *effects.Simulator
	Facade  *beauty.Facade
	Capture capture.CaptureService
	Icons   *images.IconCache

	Preview *model.PreviewModel
	Session *model.SessionModel

	RootView *view.RootView

	// Presenters, wired by WirePresenters once the view is built.
	Beauty           *presenter.BeautyPresenter
	PreviewPresenter *presenter.PreviewPresenter
	Render           *presenter.RenderPresenter
	SessionPresenter *presenter.SessionPresenter
	Status           *presenter.StatusPresenter
	Loop             *presenter.Loop

	templatesSub beauty.Subscription
}

// BuildContainer opens the snapshot store and the engine and constructs the
// models and the root view. The caller owns Close.
func BuildContainer(cfg *config.Config, cfgPath string, logger *slog.Logger) (*AppContainer, error) {
	c := &AppContainer{Config: cfg, ConfigPath: cfgPath, Logger: logger}

	st, err := store.NewSQLiteStore(cfg.StorePath)
	if err != nil {
		return nil, fmt.Errorf("open snapshot store: %w", err)
	}
	c.Store = st

	c.Engine, err = effects.NewSimulator(effects.Options{
		MaterialPath: cfg.MaterialPath,
		AllowVirtual: cfg.MaterialPath == "",
		Store:        st,
		Logger:       logger,
	})
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("create engine: %w", err)
	}

	c.Icons, err = images.NewIconCache(images.DefaultIconSize, iconCacheSize, logger)
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("icon cache: %w", err)
	}

	c.Facade = beauty.NewFacade(logger, nil, nil)
	c.Preview = &model.PreviewModel{}
	c.Session = model.NewSessionModel()
	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	interval := time.Duration(cfg.PreviewIntervalMS) * time.Millisecond
	c.Capture = capture.NewCaptureService(logger, interval, capture.Sources(cfg.CameraSource, c.screenRegion)...)
	return c, nil
}

// screenRegion is called from the capture goroutine.
func (c *AppContainer) screenRegion() *image.Rectangle {
	if c.RootView != nil && c.RootView.Region != nil {
		return c.RootView.Region.ActiveRect()
	}
	return nil
}

// WirePresenters connects presenters to the built view. schedule queues the
// next loop tick.
func (c *AppContainer) WirePresenters(schedule func()) {
	rv := c.RootView
	c.Beauty = presenter.NewBeautyPresenter(c.Facade, presenter.DefaultPageBuilders(c.Facade), rv.Panel, c.Session, c.Logger)
	c.PreviewPresenter = presenter.NewPreviewPresenter(c.Preview, c.Capture, rv)
	c.Render = presenter.NewRenderPresenter(c.Preview.Enabled, c.Capture, c.Engine, rv, c.Preview,
		c.Config.PreviewMaxWidth, c.Config.PreviewMaxHeight, c.Logger)
	c.SessionPresenter = presenter.NewSessionPresenter(c.Session, c.Facade, rv)
	c.Status = presenter.NewStatusPresenter(rv, statusTTL)
	c.Loop = presenter.NewLoop(c.SessionPresenter, c.Status, c.Render, schedule)
	c.templatesSub = c.Facade.Subscribe(c.refreshTemplates)
}

func (c *AppContainer) refreshTemplates() {
	if c.RootView != nil {
		c.RootView.SetTemplates(presenter.FormatTemplates(c.Facade.Summary()))
	}
}

// PanelHandlers routes beauty panel gestures to the control presenter.
func (c *AppContainer) PanelHandlers() view.PanelHandlers {
	return view.PanelHandlers{
		SelectTab:      func(i int) { c.Beauty.SelectTab(i) },
		ActivateItem:   func(page, index int) { c.Beauty.ActivateItem(page, index) },
		DragSlider:     func(v float64) { c.Beauty.DragSlider(v) },
		CommitSlider:   func(v float64) { c.Beauty.CommitSlider(v) },
		SliderUpdating: func() bool { return c.Beauty.SliderUpdating() },
	}
}

// SaveAll persists every module's parameters.
func (c *AppContainer) SaveAll() {
	for _, m := range beauty.Modules {
		c.Beauty.SaveModule(m)
	}
}

// Close releases the session and the store. Safe to call once.
func (c *AppContainer) Close() {
	if c.Render != nil {
		c.Render.Close()
	}
	if c.Capture != nil {
		c.Capture.Stop()
	}
	if c.Beauty != nil {
		c.Beauty.Detach()
	}
	if c.Facade != nil {
		c.Facade.Unsubscribe(c.templatesSub)
		c.Facade.Uninitialize()
	}
	if c.Store != nil {
		if err := c.Store.Close(); err != nil && c.Logger != nil {
			c.Logger.Error("close snapshot store", "error", err)
		}
	}
}
