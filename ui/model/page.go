package model

import (
	"fmt"
	"math"

	"github.com/Shengwang-Community/ShengwangBeautyView/domain/beauty"
)

// ItemKind distinguishes how an item reacts to taps.
type ItemKind int

const (
	KindNormal ItemKind = iota
	KindToggle
	KindReset
	KindNone
)

func (k ItemKind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindToggle:
		return "toggle"
	case KindReset:
		return "reset"
	case KindNone:
		return "none"
	default:
		return "unknown"
	}
}

// ValueRange is a closed interval.
type ValueRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// UnitRange is the [0,1] strength interval.
var UnitRange = ValueRange{Min: 0, Max: 1}

func isWhole(v float64) bool { return v == math.Trunc(v) }

// Stepped reports whether the slider moves in whole numbers: the upper bound
// exceeds 1 and both the span and the lower bound are whole.
func (r ValueRange) Stepped() bool {
	return r.Max > 1 && isWhole(r.Max-r.Min) && isWhole(r.Min)
}

// Clamp limits v to the range.
func (r ValueRange) Clamp(v float64) float64 {
	return math.Max(r.Min, math.Min(r.Max, v))
}

// Snap truncates v to an integer on stepped ranges.
func (r ValueRange) Snap(v float64) float64 {
	if r.Stepped() {
		return math.Trunc(v)
	}
	return v
}

// Format renders v for the slider label.
func (r ValueRange) Format(v float64) string {
	if r.Stepped() {
		return fmt.Sprintf("%d", int(v))
	}
	return fmt.Sprintf("%.2f", v)
}

// CommandKind tags what a Command does.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdSetScalar
	CmdSetStrength
	CmdSelectTemplate
	CmdClearTemplate
	CmdResetModule
	CmdToggleEnable
)

func (k CommandKind) String() string {
	switch k {
	case CmdNone:
		return "none"
	case CmdSetScalar:
		return "set_scalar"
	case CmdSetStrength:
		return "set_strength"
	case CmdSelectTemplate:
		return "select_template"
	case CmdClearTemplate:
		return "clear_template"
	case CmdResetModule:
		return "reset_module"
	case CmdToggleEnable:
		return "toggle_enable"
	default:
		return "unknown"
	}
}

// Command describes an item behaviour as data. The presenter interprets it.
type Command struct {
	Kind     CommandKind
	Module   beauty.Module
	Param    beauty.ParamID
	Template string
}

func SetScalar(id beauty.ParamID) Command { return Command{Kind: CmdSetScalar, Param: id} }

func SetStrength(m beauty.Module) Command { return Command{Kind: CmdSetStrength, Module: m} }

func SelectTemplate(m beauty.Module, template string) Command {
	return Command{Kind: CmdSelectTemplate, Module: m, Template: template}
}

func ClearTemplate(m beauty.Module) Command { return Command{Kind: CmdClearTemplate, Module: m} }

func ResetModule(m beauty.Module) Command { return Command{Kind: CmdResetModule, Module: m} }

func ToggleEnable() Command { return Command{Kind: CmdToggleEnable} }

// ItemInfo is one control within a page. Only Value and Selected change after
// a build.
type ItemInfo struct {
	Name       string
	Icon       string
	Value      float64
	Range      ValueRange
	Selected   bool
	ShowSlider bool
	Kind       ItemKind
	// Toggled carries the state of a KindToggle item.
	Toggled bool
	// Commit runs when a slider drag is released.
	Commit Command
	// Activate runs once per tap.
	Activate Command
}

// PageInfo is one tab.
type PageInfo struct {
	Name     string
	Module   beauty.Module
	Items    []*ItemInfo
	Selected bool
}

// SelectedIndex returns the index of the selected item or -1.
func (p *PageInfo) SelectedIndex() int {
	if p == nil {
		return -1
	}
	for i, it := range p.Items {
		if it != nil && it.Selected {
			return i
		}
	}
	return -1
}

// Item returns the item at i or nil when out of range.
func (p *PageInfo) Item(i int) *ItemInfo {
	if p == nil || i < 0 || i >= len(p.Items) {
		return nil
	}
	return p.Items[i]
}
