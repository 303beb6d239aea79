// Package icons resolves symbolic icon names to glyphs for the active style.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// set maps symbolic icon names to glyphs.
type set map[string]string

var (
	nerdIcons = set{
		"check-circle":         "\uf058",     // nf-fa-check_circle
		"info-circle":          "\uf05a",     // nf-fa-info_circle
		"arrow-right":          "\uf061",     // nf-fa-arrow_right
		"exclamation-triangle": "\uf071",     // nf-fa-exclamation_triangle
		"times-circle":         "\uf057",     // nf-fa-times_circle
		"lock":                 "\uf023",     // nf-fa-lock
		"ban":                  "\uf05e",     // nf-fa-ban
		"search":               "\uf002",     // nf-fa-search
		"clock":                "\uf017",     // nf-fa-clock_o
		"hourglass":            "\uf254",     // nf-fa-hourglass
		"server":               "\uf233",     // nf-fa-server
		"wifi-off":             "\U000f05aa", // nf-md-wifi_off
	}

	unicodeIcons = set{
		"check-circle":         "✅",
		"info-circle":          "ℹ️",
		"arrow-right":          "➡️",
		"exclamation-triangle": "⚠️",
		"times-circle":         "❌",
		"lock":                 "🔒",
		"ban":                  "🚫",
		"search":               "🔍",
		"clock":                "🕒",
		"hourglass":            "⏳",
		"server":               "🖥️",
		"wifi-off":             "📡",
	}

	noneIcons = set{
		"check-circle":         "[ok]",
		"info-circle":          "[i]",
		"arrow-right":          "[>]",
		"exclamation-triangle": "[!]",
		"times-circle":         "[x]",
		"lock":                 "[!]",
		"ban":                  "[x]",
		"search":               "[?]",
		"clock":                "[!]",
		"hourglass":            "[!]",
		"server":               "[x]",
		"wifi-off":             "[x]",
	}

	// current holds the active icon set
	current = noneIcons
	// currentStyle is the style current was built from
	currentStyle = StyleNone
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current, currentStyle = nerdIcons, StyleNerd
	case StyleUnicode:
		current, currentStyle = unicodeIcons, StyleUnicode
	case StyleNone:
		current, currentStyle = noneIcons, StyleNone
	default:
		current, currentStyle = noneIcons, StyleNone
	}
}

// Current returns the active style.
func Current() Style {
	return currentStyle
}

// Glyph returns the glyph for a symbolic icon name, or "" if the name is unknown.
func Glyph(name string) string {
	return current[name]
}

// Known reports whether name is a recognized icon.
func Known(name string) bool {
	_, ok := nerdIcons[name]
	return ok
}

// FormatTitle prefixes title with the glyph for name.
// Unknown icons leave the title untouched.
func FormatTitle(name, title string) string {
	glyph := Glyph(name)
	if glyph == "" {
		return title
	}
	if title == "" {
		return glyph
	}
	return glyph + " " + title
}
