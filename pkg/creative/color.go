package creative

import (
	"image/color"
	"strings"
)

// Fallback colors used when a brand color string cannot be parsed. Malformed
// brand data must never abort a batch render, so parsing degrades instead of
// failing. The primary fallback is a saturated blue that stays readable on
// the dark legibility gradient; the secondary fallback is a warm orange so
// that a brief with two broken colors still renders with visible contrast
// between headline and body text.
var (
	FallbackPrimary   = color.NRGBA{R: 0x3B, G: 0x82, B: 0xF6, A: 0xFF}
	FallbackSecondary = color.NRGBA{R: 0xF9, G: 0x73, B: 0x16, A: 0xFF}
)

// ParseHex parses a brand color string like "#FF0000" or "FF0000" into an
// opaque color. Any input that is not exactly six hex digits (after an
// optional leading '#') resolves to FallbackPrimary.
func ParseHex(s string) color.NRGBA {
	return ParseHexOr(s, FallbackPrimary)
}

// ParseHexOr is ParseHex with a caller-chosen fallback. It never fails.
func ParseHexOr(s string, fallback color.NRGBA) color.NRGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return fallback
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexNibble(s[2*i])
		lo, ok2 := hexNibble(s[2*i+1])
		if !ok1 || !ok2 {
			return fallback
		}
		rgb[i] = hi<<4 | lo
	}
	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xFF}
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
