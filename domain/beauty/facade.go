package beauty

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"
)

// ErrNoSession is returned when a session is started without an engine.
var ErrNoSession = errors.New("beauty: no active effects session")

// Facade is the single path from UI gestures to engine mutations and the
// source of truth for module enable state. Without an attached engine every
// accessor returns defaults and every mutator is a no-op.
//
// Facade is not safe for concurrent use; it lives on the UI goroutine.
type Facade struct {
	logger    *slog.Logger
	engine    Engine
	sessionID string

	enabled   map[Module]bool
	templates map[Module]string // absent key means no template applied
	// beautyTemplate names the beauty node's material; empty selects the
	// default material.
	beautyTemplate string

	filterCache *ParamCache
	makeupCache *ParamCache

	subs []subscriber
}

// NewFacade returns an inert facade. Nil caches are replaced with fresh ones.
func NewFacade(logger *slog.Logger, filterCache, makeupCache *ParamCache) *Facade {
	if filterCache == nil {
		filterCache = NewParamCache()
	}
	if makeupCache == nil {
		makeupCache = NewParamCache()
	}
	return &Facade{
		logger:      logger,
		enabled:     make(map[Module]bool),
		templates:   make(map[Module]string),
		filterCache: filterCache,
		makeupCache: makeupCache,
	}
}

// Initialize attaches engine as the live session, enables every module and
// notifies subscribers.
func (f *Facade) Initialize(engine Engine) error {
	if f == nil || engine == nil {
		return ErrNoSession
	}
	if f.engine != nil {
		f.Uninitialize()
	}
	f.engine = engine
	f.sessionID = uuid.NewString()
	f.info("effects session started", "session", f.sessionID)
	f.enableAll(true)
	f.notify()
	return nil
}

// Uninitialize disables every module, detaches the engine and drops all
// per-session state including both strength caches.
func (f *Facade) Uninitialize() {
	if f == nil {
		return
	}
	f.enableAll(false)
	if f.engine != nil {
		f.info("effects session ended", "session", f.sessionID)
	}
	f.engine = nil
	f.sessionID = ""
	clear(f.enabled)
	clear(f.templates)
	f.beautyTemplate = ""
	f.filterCache.Clear()
	f.makeupCache.Clear()
	f.notify()
}

// Active reports whether an engine is attached.
func (f *Facade) Active() bool { return f != nil && f.engine != nil }

// SessionID identifies the current session, empty when inert.
func (f *Facade) SessionID() string {
	if f == nil {
		return ""
	}
	return f.sessionID
}

// Enable toggles all four modules together.
func (f *Facade) Enable(on bool) {
	if f == nil {
		return
	}
	if f.enableAll(on) {
		f.notify()
	}
}

// EnableModule toggles one module. Requests matching the current state are
// ignored.
func (f *Facade) EnableModule(m Module, on bool) {
	if f == nil {
		return
	}
	if f.enableModule(m, on) {
		f.notify()
	}
}

// EffectsEnabled reports whether any module is enabled.
func (f *Facade) EffectsEnabled() bool {
	if f == nil {
		return false
	}
	for _, m := range Modules {
		if f.enabled[m] {
			return true
		}
	}
	return false
}

// ModuleEnabled reports the module's enable flag.
func (f *Facade) ModuleEnabled(m Module) bool {
	if f == nil {
		return false
	}
	return f.enabled[m]
}

func (f *Facade) enableAll(on bool) bool {
	changed := false
	for _, m := range Modules {
		if f.enableModule(m, on) {
			changed = true
		}
	}
	return changed
}

// enableModule adds or removes the module's node to match the accumulated
// template state. It returns whether the flag changed.
func (f *Facade) enableModule(m Module, on bool) bool {
	if f.engine == nil || !m.Valid() {
		return false
	}
	if m == ModuleBeauty && on && f.enabled[m] {
		// The node is loaded but the toggle switched both effects off.
		return f.restoreBeautySwitches()
	}
	if f.enabled[m] == on {
		return false
	}
	if on {
		if m == ModuleBeauty {
			f.addOrUpdate(m, f.beautyTemplate)
		} else if name, ok := f.templates[m]; ok {
			f.addOrUpdate(m, name)
		}
	} else {
		f.remove(m)
	}
	f.enabled[m] = on
	if m == ModuleBeauty && on {
		f.restoreBeautySwitches()
	}
	f.debug("module enable", "module", m.String(), "enabled", on)
	return true
}

// restoreBeautySwitches turns skin/quality and face shape back on when both
// are off, so a master enable always leaves beauty visibly on.
func (f *Facade) restoreBeautySwitches() bool {
	if f.engine.BoolParam(OptionBeauty, KeyEnable) || f.engine.BoolParam(OptionFaceShape, KeyEnable) {
		return false
	}
	f.engine.SetBoolParam(OptionBeauty, KeyEnable, true)
	f.engine.SetBoolParam(OptionFaceShape, KeyEnable, true)
	f.debug("beauty switches restored")
	return true
}

// loadBeauty adds the beauty node when the master switch removed it.
func (f *Facade) loadBeauty() {
	if f.enabled[ModuleBeauty] {
		return
	}
	f.addOrUpdate(ModuleBeauty, f.beautyTemplate)
	f.enabled[ModuleBeauty] = true
}

// Template returns the module's applied template name.
func (f *Facade) Template(m Module) (string, bool) {
	if f == nil {
		return "", false
	}
	name, ok := f.templates[m]
	return name, ok
}

// SetTemplate selects name for m. Selecting the active name again does
// nothing. The node is only touched while the module is enabled; otherwise the
// name is kept for the next enable.
func (f *Facade) SetTemplate(m Module, name string) {
	if f == nil || m == ModuleBeauty || !m.Valid() {
		return
	}
	if cur, ok := f.templates[m]; ok && cur == name {
		return
	}
	f.templates[m] = name
	f.debug("template selected", "module", m.String(), "template", name)
	if f.enabled[m] {
		f.addOrUpdate(m, name)
	}
}

// ClearTemplate removes m's template and its node.
func (f *Facade) ClearTemplate(m Module) {
	if f == nil || m == ModuleBeauty || !m.Valid() {
		return
	}
	if _, ok := f.templates[m]; !ok {
		return
	}
	delete(f.templates, m)
	f.debug("template cleared", "module", m.String())
	f.remove(m)
}

// SetBeautyTemplate selects the beauty node's material; empty is the default.
func (f *Facade) SetBeautyTemplate(name string) {
	if f == nil || f.beautyTemplate == name {
		return
	}
	f.beautyTemplate = name
	f.addOrUpdate(ModuleBeauty, name)
}

func (f *Facade) cacheFor(m Module) *ParamCache {
	switch m {
	case ModuleFilter:
		return f.filterCache
	case ModuleStyleMakeup:
		return f.makeupCache
	}
	return nil
}

func strengthKey(m Module) (option, key string) {
	switch m {
	case ModuleFilter:
		return OptionFilter, KeyStrength
	case ModuleStyleMakeup:
		return OptionMakeup, KeyStyleIntensity
	case ModuleSticker:
		return OptionSticker, KeyStrength
	}
	return "", ""
}

// Strength returns the strength of m's current template. Filter and makeup
// consult the cache first and memoise native reads into it. Without a template
// or a session the result is 0.
func (f *Facade) Strength(m Module) float64 {
	if f == nil {
		return 0
	}
	option, key := strengthKey(m)
	if option == "" {
		return 0
	}
	cache := f.cacheFor(m)
	if cache == nil {
		if f.engine == nil {
			return 0
		}
		return f.engine.FloatParam(option, key)
	}
	name, ok := f.templates[m]
	if !ok {
		return 0
	}
	if v, hit := cache.Get(name); hit {
		return v
	}
	if f.engine == nil {
		return 0
	}
	v := f.engine.FloatParam(option, key)
	cache.Set(name, v)
	f.debug("strength memoised", "module", m.String(), "template", name, "value", v)
	return v
}

// SetStrength records v for m's current template and writes it to the engine.
func (f *Facade) SetStrength(m Module, v float64) {
	if f == nil {
		return
	}
	option, key := strengthKey(m)
	if option == "" {
		return
	}
	if cache := f.cacheFor(m); cache != nil {
		name, ok := f.templates[m]
		if !ok {
			return
		}
		cache.Set(name, v)
	}
	if f.engine != nil {
		f.engine.SetFloatParam(option, key, v)
	}
}

// CachedStrength returns the cached strength for template without touching
// the engine.
func (f *Facade) CachedStrength(m Module, template string) (float64, bool) {
	if f == nil {
		return 0, false
	}
	return f.cacheFor(m).Get(template)
}

// Scalar reads a beauty scalar, falling back to its default when inert.
func (f *Facade) Scalar(id ParamID) float64 {
	p, ok := LookupParam(id)
	if !ok {
		return 0
	}
	if f == nil || f.engine == nil {
		return p.Default
	}
	if p.Kind == ParamFaceArea {
		return float64(f.engine.FaceShapeArea(p.Area))
	}
	return f.engine.FloatParam(p.Option, p.Key)
}

// SetScalar writes a beauty scalar. Face-shape areas are truncated to int.
func (f *Facade) SetScalar(id ParamID, v float64) {
	p, ok := LookupParam(id)
	if !ok || f == nil || f.engine == nil {
		return
	}
	switch {
	case p.Kind == ParamFaceArea:
		f.engine.SetFaceShapeArea(p.Area, int(v))
	case id == ParamLightness:
		// Natural whitening needs the LUT cleared first.
		f.engine.SetStringParam(p.Option, KeyWhitenLUTPath, "")
		f.engine.SetFloatParam(p.Option, p.Key, v)
	default:
		f.engine.SetFloatParam(p.Option, p.Key, v)
	}
}

// BeautyEnabled reports the skin/quality switch. It is off while the beauty
// node is disabled.
func (f *Facade) BeautyEnabled() bool {
	if f == nil || f.engine == nil || !f.enabled[ModuleBeauty] {
		return false
	}
	return f.engine.BoolParam(OptionBeauty, KeyEnable)
}

// SetBeautyEnabled flips the skin/quality switch and notifies subscribers.
// Turning it on reloads a disabled beauty node.
func (f *Facade) SetBeautyEnabled(on bool) {
	if f == nil || f.engine == nil {
		return
	}
	if on {
		f.loadBeauty()
	}
	f.engine.SetBoolParam(OptionBeauty, KeyEnable, on)
	f.notify()
}

// FaceShapeEnabled reports the face-shape switch. It is off while the beauty
// node is disabled.
func (f *Facade) FaceShapeEnabled() bool {
	if f == nil || f.engine == nil || !f.enabled[ModuleBeauty] {
		return false
	}
	return f.engine.BoolParam(OptionFaceShape, KeyEnable)
}

// SetFaceShapeEnabled flips the face-shape switch and notifies subscribers.
// Turning it on reloads a disabled beauty node.
func (f *Facade) SetFaceShapeEnabled(on bool) {
	if f == nil || f.engine == nil {
		return
	}
	if on {
		f.loadBeauty()
	}
	f.engine.SetBoolParam(OptionFaceShape, KeyEnable, on)
	f.notify()
}

// FaceShapeStyle is -1 for none, 0 goddess, 1 god, 2 natural.
func (f *Facade) FaceShapeStyle() int {
	if f == nil || f.engine == nil {
		return 0
	}
	return f.engine.IntParam(OptionFaceShape, KeyFaceStyle)
}

func (f *Facade) SetFaceShapeStyle(style int) {
	if f == nil || f.engine == nil {
		return
	}
	f.engine.SetIntParam(OptionFaceShape, KeyFaceStyle, style)
}

// FaceShapeIntensity is the style intensity in [0,100].
func (f *Facade) FaceShapeIntensity() int {
	if f == nil || f.engine == nil {
		return 0
	}
	return f.engine.IntParam(OptionFaceShape, KeyFaceIntensity)
}

func (f *Facade) SetFaceShapeIntensity(v int) {
	if f == nil || f.engine == nil {
		return
	}
	f.engine.SetIntParam(OptionFaceShape, KeyFaceIntensity, v)
}

// MakeupFilterStrength is the colour filter strength bundled with style makeup.
func (f *Facade) MakeupFilterStrength() float64 {
	if f == nil || f.engine == nil {
		return 0
	}
	return f.engine.FloatParam(OptionMakeup, KeyFilterStrength)
}

func (f *Facade) SetMakeupFilterStrength(v float64) {
	if f == nil || f.engine == nil {
		return
	}
	f.engine.SetFloatParam(OptionMakeup, KeyFilterStrength, v)
}

// ResetModule restores m's template defaults on the engine. Cached strengths
// are left alone.
func (f *Facade) ResetModule(m Module) {
	f.perform(m, ActionReset)
}

// SaveModule asks the engine to persist m's current parameters.
func (f *Facade) SaveModule(m Module) {
	f.perform(m, ActionSave)
}

// ApplyFilter selects template at strength and makes sure the filter module
// is enabled. An empty template removes the filter and disables the module.
func (f *Facade) ApplyFilter(template string, strength float64) {
	if f == nil {
		return
	}
	if template == "" {
		f.ClearTemplate(ModuleFilter)
		f.enableModule(ModuleFilter, false)
		f.notify()
		return
	}
	f.ensureApplied(ModuleFilter, template)
	// Node loads reset the strength, so write it last.
	f.SetStrength(ModuleFilter, strength)
	f.notify()
}

// ApplySticker selects template and makes sure the sticker module is enabled.
// An empty template removes the sticker and disables the module.
func (f *Facade) ApplySticker(template string) {
	if f == nil {
		return
	}
	if template == "" {
		f.ClearTemplate(ModuleSticker)
		f.enableModule(ModuleSticker, false)
		f.notify()
		return
	}
	f.ensureApplied(ModuleSticker, template)
	f.notify()
}

// ensureApplied selects template and enables m. When m is already enabled
// with the same template the node is reloaded anyway.
func (f *Facade) ensureApplied(m Module, template string) {
	cur, had := f.templates[m]
	f.SetTemplate(m, template)
	if !f.enabled[m] {
		f.enableModule(m, true)
		return
	}
	if had && cur == template {
		f.addOrUpdate(m, template)
	}
}

// Summary is a point-in-time view of the facade's state.
type Summary struct {
	Active    bool
	SessionID string
	Enabled   map[Module]bool
	Templates map[Module]string
	Cached    map[Module]map[string]float64
}

// Summary snapshots enable flags, templates and cache contents.
func (f *Facade) Summary() Summary {
	s := Summary{
		Enabled:   make(map[Module]bool),
		Templates: make(map[Module]string),
		Cached:    make(map[Module]map[string]float64),
	}
	if f == nil {
		return s
	}
	s.Active = f.engine != nil
	s.SessionID = f.sessionID
	for _, m := range Modules {
		s.Enabled[m] = f.enabled[m]
		if name, ok := f.templates[m]; ok {
			s.Templates[m] = name
		}
	}
	s.Cached[ModuleFilter] = f.filterCache.Snapshot()
	s.Cached[ModuleStyleMakeup] = f.makeupCache.Snapshot()
	return s
}

func (f *Facade) addOrUpdate(m Module, template string) {
	if f.engine == nil {
		return
	}
	if err := f.engine.AddOrUpdateEffect(m, template); err != nil {
		f.logErr("add or update effect", "module", m.String(), "template", template, "error", err)
	}
}

func (f *Facade) remove(m Module) {
	if f.engine == nil {
		return
	}
	if err := f.engine.RemoveEffect(m); err != nil {
		f.logErr("remove effect", "module", m.String(), "error", err)
	}
}

func (f *Facade) perform(m Module, a Action) {
	if f == nil || f.engine == nil || !m.Valid() {
		return
	}
	f.debug("module action", "module", m.String(), "action", a.String())
	if err := f.engine.PerformAction(m, a); err != nil {
		f.logErr("perform action", "module", m.String(), "action", a.String(), "error", err)
	}
}

func (f *Facade) debug(msg string, args ...any) {
	if f.logger != nil {
		f.logger.Debug(msg, args...)
	}
}

func (f *Facade) info(msg string, args ...any) {
	if f.logger != nil {
		f.logger.Info(msg, args...)
	}
}

func (f *Facade) logErr(msg string, args ...any) {
	if f.logger != nil {
		f.logger.Error(msg, args...)
	}
}
