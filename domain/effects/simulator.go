package effects

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Shengwang-Community/ShengwangBeautyView/domain/beauty"
	"github.com/Shengwang-Community/ShengwangBeautyView/domain/store"
)

// ErrMaterialPath is returned when the material bundle cannot be used.
var ErrMaterialPath = errors.New("effects: invalid material path")

// ErrNoStore is returned by the save action when no snapshot store is set.
var ErrNoStore = errors.New("effects: no snapshot store")

// FunctionalDir is the material subdirectory preferred when present.
const FunctionalDir = "beauty_material_functional"

const storeTimeout = 2 * time.Second

// SnapshotStore persists saved module parameters.
type SnapshotStore interface {
	SaveSnapshot(ctx context.Context, snap store.Snapshot) (store.Snapshot, error)
	LatestSnapshot(ctx context.Context, m beauty.Module) (store.Snapshot, error)
}

// Options configures a Simulator.
type Options struct {
	MaterialPath string
	// AllowVirtual permits an empty material path (test card, CLI dumps).
	AllowVirtual bool
	Store        SnapshotStore
	// Defaults overrides the embedded defaults when non-nil.
	Defaults *Defaults
	Logger   *slog.Logger
}

// Stats counts calls made against the simulator.
type Stats struct {
	Adds    uint64
	Removes uint64
	Actions uint64
	Reads   uint64
	Writes  uint64
	Restore uint64 // snapshots reapplied on node load
}

// Params is a copy of every engine value.
type Params struct {
	Floats  map[string]float64
	Bools   map[string]bool
	Ints    map[string]int
	Strings map[string]string
	Areas   map[beauty.FaceArea]int
	Nodes   map[beauty.Module]string
}

// Float returns Floats[option/key].
func (p Params) Float(option, key string) float64 {
	return p.Floats[Key(option, key)]
}

// Loaded reports whether node is loaded.
func (p Params) Loaded(node beauty.Module) bool {
	_, ok := p.Nodes[node]
	return ok
}

// Simulator is an in-process effects engine. It keeps every parameter in
// memory, loads template defaults when a node is added and persists saved
// parameters through a SnapshotStore. Safe for concurrent use: the UI writes
// while the preview renderer reads.
type Simulator struct {
	logger       *slog.Logger
	materialPath string
	defaults     Defaults
	store        SnapshotStore

	mu      sync.RWMutex
	floats  map[string]float64
	bools   map[string]bool
	ints    map[string]int
	strings map[string]string
	areas   map[beauty.FaceArea]int
	nodes   map[beauty.Module]string
	stats   Stats
	reads   atomic.Uint64
}

var _ beauty.Engine = (*Simulator)(nil)

// NewSimulator validates the material path and returns an engine with no
// nodes loaded.
func NewSimulator(opts Options) (*Simulator, error) {
	path, err := resolveMaterialPath(opts.MaterialPath, opts.AllowVirtual, opts.Logger)
	if err != nil {
		return nil, err
	}
	var defaults Defaults
	if opts.Defaults != nil {
		defaults = *opts.Defaults
	} else if defaults, err = BuiltinDefaults(); err != nil {
		return nil, err
	}
	return &Simulator{
		logger:       opts.Logger,
		materialPath: path,
		defaults:     defaults,
		store:        opts.Store,
		floats:       make(map[string]float64),
		bools:        make(map[string]bool),
		ints:         make(map[string]int),
		strings:      make(map[string]string),
		areas:        make(map[beauty.FaceArea]int),
		nodes:        make(map[beauty.Module]string),
	}, nil
}

func resolveMaterialPath(path string, allowVirtual bool, logger *slog.Logger) (string, error) {
	if path == "" {
		if allowVirtual {
			return "", nil
		}
		return "", fmt.Errorf("%w: empty", ErrMaterialPath)
	}
	fi, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMaterialPath, err)
	}
	if !fi.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrMaterialPath, path)
	}
	functional := filepath.Join(path, FunctionalDir)
	if fi, err := os.Stat(functional); err == nil && fi.IsDir() {
		return functional, nil
	}
	if logger != nil {
		logger.Info(FunctionalDir+" not found, using material path directly", "path", path)
	}
	return path, nil
}

// MaterialPath returns the resolved material directory, empty when virtual.
func (s *Simulator) MaterialPath() string { return s.materialPath }

func (s *Simulator) AddOrUpdateEffect(node beauty.Module, template string) error {
	if !node.Valid() {
		return fmt.Errorf("add effect: invalid node %d", int(node))
	}
	s.mu.Lock()
	s.stats.Adds++
	s.nodes[node] = template
	for _, set := range s.defaults.For(node, template) {
		s.applyLocked(set)
	}
	s.mu.Unlock()

	s.restore(node, template)
	s.debug("effect loaded", "node", node.String(), "template", template)
	return nil
}

// restore reapplies the latest saved snapshot of node when it was taken with
// the same template.
func (s *Simulator) restore(node beauty.Module, template string) {
	if s.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	snap, err := s.store.LatestSnapshot(ctx, node)
	if errors.Is(err, store.ErrNotFound) {
		return
	}
	if err != nil {
		if s.logger != nil {
			s.logger.Error("load snapshot failed", "node", node.String(), "error", err)
		}
		return
	}
	if snap.Template != template {
		return
	}
	s.mu.Lock()
	s.applyLocked(ParamSet{Floats: snap.Floats, Ints: snap.Ints, Areas: snap.Areas})
	s.stats.Restore++
	s.mu.Unlock()
	s.debug("snapshot restored", "node", node.String(), "id", snap.ID, "values", snap.Len())
}

func (s *Simulator) applyLocked(set ParamSet) {
	maps.Copy(s.floats, set.Floats)
	maps.Copy(s.bools, set.Bools)
	maps.Copy(s.ints, set.Ints)
	for a, v := range set.Areas {
		s.areas[beauty.FaceArea(a)] = v
	}
}

func (s *Simulator) RemoveEffect(node beauty.Module) error {
	if !node.Valid() {
		return fmt.Errorf("remove effect: invalid node %d", int(node))
	}
	s.mu.Lock()
	s.stats.Removes++
	delete(s.nodes, node)
	s.mu.Unlock()
	s.debug("effect removed", "node", node.String())
	return nil
}

func (s *Simulator) PerformAction(node beauty.Module, action beauty.Action) error {
	if !node.Valid() {
		return fmt.Errorf("perform %s: invalid node %d", action, int(node))
	}
	s.mu.Lock()
	s.stats.Actions++
	s.mu.Unlock()
	switch action {
	case beauty.ActionReset:
		s.reset(node)
		return nil
	case beauty.ActionSave:
		return s.save(node)
	}
	return fmt.Errorf("perform: unknown action %d", int(action))
}

// nodeOptions lists the option groups owned by node.
func nodeOptions(node beauty.Module) []string {
	switch node {
	case beauty.ModuleBeauty:
		return []string{beauty.OptionBeauty, beauty.OptionBuffing, beauty.OptionFaceShape}
	case beauty.ModuleStyleMakeup:
		return []string{beauty.OptionMakeup}
	case beauty.ModuleFilter:
		return []string{beauty.OptionFilter}
	case beauty.ModuleSticker:
		return []string{beauty.OptionSticker}
	}
	return nil
}

func ownedBy(node beauty.Module, key string) bool {
	for _, opt := range nodeOptions(node) {
		if strings.HasPrefix(key, opt+"/") {
			return true
		}
	}
	return false
}

// reset restores node's numeric parameters to the defaults of its current
// template. Enable switches are left alone.
func (s *Simulator) reset(node beauty.Module) {
	s.mu.Lock()
	defer s.mu.Unlock()
	template := s.nodes[node]
	for k := range s.floats {
		if ownedBy(node, k) {
			delete(s.floats, k)
		}
	}
	for k := range s.ints {
		if ownedBy(node, k) {
			delete(s.ints, k)
		}
	}
	if node == beauty.ModuleBeauty {
		clear(s.areas)
	}
	for _, set := range s.defaults.For(node, template) {
		set.Bools = nil
		s.applyLocked(set)
	}
	s.debug("effect reset", "node", node.String(), "template", template)
}

func (s *Simulator) save(node beauty.Module) error {
	if s.store == nil {
		return ErrNoStore
	}
	s.mu.RLock()
	snap := store.Snapshot{
		Module:   node,
		Template: s.nodes[node],
		Floats:   make(map[string]float64),
		Ints:     make(map[string]int),
	}
	for k, v := range s.floats {
		if ownedBy(node, k) {
			snap.Floats[k] = v
		}
	}
	for k, v := range s.ints {
		if ownedBy(node, k) {
			snap.Ints[k] = v
		}
	}
	if node == beauty.ModuleBeauty {
		snap.Areas = make(map[int]int, len(s.areas))
		for a, v := range s.areas {
			snap.Areas[int(a)] = v
		}
	}
	s.mu.RUnlock()

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	saved, err := s.store.SaveSnapshot(ctx, snap)
	if err != nil {
		return fmt.Errorf("save %s: %w", node, err)
	}
	s.debug("effect saved", "node", node.String(), "id", saved.ID, "values", saved.Len())
	return nil
}

func (s *Simulator) FloatParam(option, key string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.countRead()
	return s.floats[Key(option, key)]
}

func (s *Simulator) SetFloatParam(option, key string, v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats.Writes++
	s.floats[Key(option, key)] = v
}

func (s *Simulator) BoolParam(option, key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.countRead()
	return s.bools[Key(option, key)]
}

func (s *Simulator) SetBoolParam(option, key string, v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats.Writes++
	s.bools[Key(option, key)] = v
}

func (s *Simulator) IntParam(option, key string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.countRead()
	return s.ints[Key(option, key)]
}

func (s *Simulator) SetIntParam(option, key string, v int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats.Writes++
	s.ints[Key(option, key)] = v
}

func (s *Simulator) SetStringParam(option, key, v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats.Writes++
	s.strings[Key(option, key)] = v
}

func (s *Simulator) FaceShapeArea(area beauty.FaceArea) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.countRead()
	return s.areas[area]
}

func (s *Simulator) SetFaceShapeArea(area beauty.FaceArea, intensity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats.Writes++
	s.areas[area] = intensity
}

// countRead is called under the read lock, hence the atomic.
func (s *Simulator) countRead() {
	s.reads.Add(1)
}

// Stats returns call counters.
func (s *Simulator) Stats() Stats {
	s.mu.RLock()
	st := s.stats
	s.mu.RUnlock()
	st.Reads = s.reads.Load()
	return st
}

// Params returns a copy of every value for renderers.
func (s *Simulator) Params() Params {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Params{
		Floats:  maps.Clone(s.floats),
		Bools:   maps.Clone(s.bools),
		Ints:    maps.Clone(s.ints),
		Strings: maps.Clone(s.strings),
		Areas:   maps.Clone(s.areas),
		Nodes:   maps.Clone(s.nodes),
	}
}

func (s *Simulator) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
