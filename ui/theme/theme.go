package theme

// Palette constants and ttk style setup for the control panel and preview
// window. InitStyles applies the current mode; SetDark switches it.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

const (
	ColorBg        = "#f7f9fb"
	ColorSurface   = "#ffffff"
	ColorBorder    = "#d0d7de"
	ColorPrimary   = "#d9467a" // tabs, selected items
	ColorPrimaryHi = "#b83262"
	ColorDanger    = "#dc2626"
	ColorAccent    = "#10b981"
	ColorText      = "#1e293b"
	ColorTextMuted = "#64748b"
)

// PaletteSnapshot represents resolved colors for the active mode.
type PaletteSnapshot struct {
	AppBg     string
	Surface   string
	Border    string
	Primary   string
	Danger    string
	Accent    string
	Text      string
	TextMuted string
}

var (
	light = PaletteSnapshot{
		AppBg:     ColorBg,
		Surface:   ColorSurface,
		Border:    ColorBorder,
		Primary:   ColorPrimary,
		Danger:    ColorDanger,
		Accent:    ColorAccent,
		Text:      ColorText,
		TextMuted: ColorTextMuted,
	}
	dark = PaletteSnapshot{
		AppBg:     "#0f172a",
		Surface:   "#1e293b",
		Border:    "#334155",
		Primary:   "#f0719f",
		Danger:    "#ef4444",
		Accent:    "#10b981",
		Text:      "#f1f5f9",
		TextMuted: "#94a3b8",
	}
)

// paletteFor returns the colors for the given mode.
func paletteFor(isDark bool) PaletteSnapshot {
	if isDark {
		return dark
	}
	return light
}

// CurrentPalette returns colors for the current dark/light mode.
func CurrentPalette() PaletteSnapshot { return paletteFor(darkMode) }

// Style names used with Style(...).
const (
	StylePrimaryButton = "primary.TButton"
	StyleDangerButton  = "danger.TButton"
	StyleTab           = "tab.TButton"
	StyleTabSelected   = "tabsel.TButton"
	StyleItem          = "item.TButton"
	StyleItemSelected  = "itemsel.TButton"
	StyleStatusLabel   = "status.TLabel"
	StyleValueLabel    = "value.TLabel"
)

var darkMode bool

// InitStyles (re)applies styles for the current mode.
func InitStyles() { applyStyles(CurrentPalette()) }

// SetDark switches mode and reapplies styles. Returns the new mode.
func SetDark(d bool) bool {
	darkMode = d
	applyStyles(CurrentPalette())
	return darkMode
}

// ToggleDark flips dark mode and reapplies styles. Returns the new mode.
func ToggleDark() bool { return SetDark(!darkMode) }

// IsDark reports current mode.
func IsDark() bool { return darkMode }

// ItemStyle picks the button style for an item or tab.
func ItemStyle(tab, selected bool) string {
	switch {
	case tab && selected:
		return StyleTabSelected
	case tab:
		return StyleTab
	case selected:
		return StyleItemSelected
	default:
		return StyleItem
	}
}

func applyStyles(p PaletteSnapshot) {
	_ = ActivateTheme("azure light")
	App.Configure(Background(p.AppBg))

	StyleConfigure(StylePrimaryButton,
		Background(p.Primary), Foreground("white"),
		Padding("4p 3p"), Borderwidth(1), Relief("ridge"))
	StyleConfigure(StyleDangerButton,
		Background(p.Danger), Foreground("white"),
		Padding("4p 3p"), Borderwidth(1), Relief("ridge"))

	StyleConfigure(StyleTab,
		Background(p.Surface), Foreground(p.TextMuted),
		Padding("6p 3p"), Borderwidth(0), Relief("flat"))
	StyleConfigure(StyleTabSelected,
		Background(p.Surface), Foreground(p.Primary),
		Padding("6p 3p"), Borderwidth(0), Relief("flat"))

	StyleConfigure(StyleItem,
		Background(p.Surface), Foreground(p.Text),
		Padding("2p 2p"), Borderwidth(1), Relief("flat"))
	StyleConfigure(StyleItemSelected,
		Background(p.Surface), Foreground(p.Primary),
		Padding("2p 2p"), Borderwidth(2), Relief("solid"))

	StyleConfigure(StyleStatusLabel,
		Background(p.Accent), Foreground("white"),
		Padding("4p 2p"), Borderwidth(1), Relief("groove"))
	StyleConfigure(StyleValueLabel,
		Background(p.Surface), Foreground(p.Primary),
		Padding("2p 1p"))
}
