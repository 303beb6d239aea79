//nolint:goconst // test cases intentionally repeat strings for readability
package icons

import (
	"testing"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name          string
		style         string
		expectedStyle Style
	}{
		{"nerd style", "nerd", StyleNerd},
		{"unicode style", "unicode", StyleUnicode},
		{"none style", "none", StyleNone},
		{"empty string defaults to none", "", StyleNone},
		{"unknown style defaults to none", "invalid", StyleNone},
		{"case sensitive - NERD defaults to none", "NERD", StyleNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.style)

			if Current() != tt.expectedStyle {
				t.Errorf("Current() = %q, want %q", Current(), tt.expectedStyle)
			}
		})
	}

	// Reset to default
	Init("none")
}

func TestSetsCoverSameNames(t *testing.T) {
	for name := range nerdIcons {
		if _, ok := unicodeIcons[name]; !ok {
			t.Errorf("unicode set missing %q", name)
		}
		if _, ok := noneIcons[name]; !ok {
			t.Errorf("none set missing %q", name)
		}
	}
	if len(unicodeIcons) != len(nerdIcons) || len(noneIcons) != len(nerdIcons) {
		t.Error("icon sets differ in size")
	}
}

func TestGlyph(t *testing.T) {
	defer Init("none")

	Init("none")
	if got := Glyph("check-circle"); got != "[ok]" {
		t.Errorf("Glyph(check-circle) = %q, want %q", got, "[ok]")
	}

	Init("nerd")
	if got := Glyph("check-circle"); got != "\uf058" {
		t.Errorf("Glyph(check-circle) = %q, want nerd glyph", got)
	}

	if got := Glyph("no-such-icon"); got != "" {
		t.Errorf("Glyph(unknown) = %q, want empty", got)
	}
}

func TestFormatTitle(t *testing.T) {
	defer Init("none")
	Init("none")

	tests := []struct {
		name     string
		icon     string
		title    string
		expected string
	}{
		{"known icon", "search", "Not Found", "[?] Not Found"},
		{"unknown icon", "bogus", "Not Found", "Not Found"},
		{"empty icon", "", "Not Found", "Not Found"},
		{"empty title", "search", "", "[?]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTitle(tt.icon, tt.title); got != tt.expected {
				t.Errorf("FormatTitle(%q, %q) = %q, want %q", tt.icon, tt.title, got, tt.expected)
			}
		})
	}
}

func TestKnown(t *testing.T) {
	if !Known("wifi-off") {
		t.Error("Known(wifi-off) = false, want true")
	}
	if Known("music") {
		t.Error("Known(music) = true, want false")
	}
}
