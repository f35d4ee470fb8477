package creative

import (
	"image/color"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Wrap splits text into lines that fit maxWidth pixels when measured with
// face. The wrap is greedy: words are appended to the current line while the
// space-joined candidate still fits. A single word wider than the budget is
// emitted unsplit as its own line rather than hyphenated, which also rules
// out infinite loops on pathological long tokens.
//
// Wrap is stateless and deterministic: the same arguments always yield the
// same lines. An empty or all-whitespace text yields no lines.
func Wrap(text string, face font.Face, maxWidth int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if font.MeasureString(face, candidate).Ceil() <= maxWidth || current == "" {
			current = candidate
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// LineHeight returns the vertical advance for one line of face, taken from
// the font's own line metrics so stacked blocks adapt across fonts and sizes.
func LineHeight(face font.Face) int {
	return face.Metrics().Height.Ceil()
}

// DrawBlock draws lines top-down starting at (x, y) with the given fill and
// per-line spacing, and returns the y coordinate immediately below the block.
// Callers stack blocks (headline, description, CTA) by feeding each returned
// y into the next call; no manual height accumulation is needed.
//
// y is the top of the block; each line's baseline is offset by the face's
// ascent, matching how the block was measured by Wrap.
func DrawBlock(dc *gg.Context, lines []string, face font.Face, x, y float64, spacing float64, fill color.Color) float64 {
	if len(lines) == 0 {
		return y
	}

	ascent := float64(face.Metrics().Ascent.Ceil())
	height := float64(LineHeight(face))

	dc.SetFontFace(face)
	dc.SetColor(fill)
	for _, line := range lines {
		dc.DrawString(line, x, y+ascent)
		y += height + spacing
	}
	return y
}
