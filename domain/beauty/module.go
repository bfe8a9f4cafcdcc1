package beauty

import (
	"fmt"
	"strings"
)

// Module enumerates the independently toggleable effect categories. Values are
// the native node identifiers.
type Module int

const (
	ModuleBeauty      Module = 1
	ModuleStyleMakeup Module = 2
	ModuleFilter      Module = 4
	ModuleSticker     Module = 8
)

// Modules lists every module in tab order.
var Modules = []Module{ModuleBeauty, ModuleStyleMakeup, ModuleFilter, ModuleSticker}

func (m Module) String() string {
	switch m {
	case ModuleBeauty:
		return "beauty"
	case ModuleStyleMakeup:
		return "makeup"
	case ModuleFilter:
		return "filter"
	case ModuleSticker:
		return "sticker"
	default:
		return "unknown"
	}
}

// Valid reports whether m is one of the four known modules.
func (m Module) Valid() bool {
	switch m {
	case ModuleBeauty, ModuleStyleMakeup, ModuleFilter, ModuleSticker:
		return true
	}
	return false
}

// ParseModule accepts a module name ("beauty", "makeup", "filter", "sticker")
// or its numeric node id.
func ParseModule(s string) (Module, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beauty", "1":
		return ModuleBeauty, nil
	case "makeup", "style_makeup", "stylemakeup", "2":
		return ModuleStyleMakeup, nil
	case "filter", "4":
		return ModuleFilter, nil
	case "sticker", "8":
		return ModuleSticker, nil
	}
	return 0, fmt.Errorf("unknown module %q", s)
}

// Action is a native node action.
type Action int

const (
	// ActionReset restores the node's template defaults.
	ActionReset Action = iota + 1
	// ActionSave persists the node's current parameters; they are reapplied the
	// next time the node is loaded.
	ActionSave
)

func (a Action) String() string {
	switch a {
	case ActionReset:
		return "reset"
	case ActionSave:
		return "save"
	default:
		return "unknown"
	}
}
