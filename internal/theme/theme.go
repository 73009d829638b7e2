// Package theme holds the palette and gradient helpers used for calcr's
// help banner.
package theme

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// Palette is a pair of endpoint colors in #RRGGBB form.
type Palette struct {
	Primary   string
	Secondary string
}

// Mocha returns the Catppuccin Mocha mauve-to-blue palette.
func Mocha() Palette {
	return Palette{
		Primary:   "#cba6f7",
		Secondary: "#89b4fa",
	}
}

// ApplyGradient colors each rune of text along a gradient from one hex
// color to another. Whitespace is left unstyled.
func ApplyGradient(text, from, to string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	var b strings.Builder
	for i, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' {
			b.WriteRune(r)
			continue
		}
		pos := 0.0
		if len(runes) > 1 {
			pos = float64(i) / float64(len(runes)-1)
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(InterpolateColor(from, to, pos)))
		b.WriteString(style.Render(string(r)))
	}
	return b.String()
}

// InterpolateColor blends colorA into colorB; pos is clamped to [0, 1].
func InterpolateColor(colorA, colorB string, pos float64) string {
	pos = min(max(pos, 0), 1)

	r1, g1, b1 := ParseHexColor(colorA)
	r2, g2, b2 := ParseHexColor(colorB)

	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*(1-pos) + float64(b)*pos)
	}
	return FormatHexColor(mix(r1, r2), mix(g1, g2), mix(b1, b2))
}

// ParseHexColor returns the channels of a #RRGGBB color. Malformed input
// yields black.
func ParseHexColor(hex string) (r, g, b uint8) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0
	}
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return 0, 0, 0
	}
	return r, g, b
}

// FormatHexColor converts RGB values to a #rrggbb string.
func FormatHexColor(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
