package genai

import (
	"context"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/Shadid12/creatives-automation/pkg/creative"
)

// ImageGenerator produces a base product image from a prompt. Implementations
// are the real API client and the local deterministic mock.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) (image.Image, error)
}

// Mock generator layout constants.
const (
	mockSize          = 1024
	mockMargin        = 32
	mockSnippetLength = 140
	mockLineGap       = 8
)

var (
	mockBackground = color.NRGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xFF}
	mockCaptionBox = color.NRGBA{A: 0xB4}
	mockCaption    = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// MockGenerator is a fully local ImageGenerator that renders a readable
// placeholder: a dark background with the prompt snippet captioned near the
// bottom. Output is deterministic for a given prompt, which keeps pipeline
// runs reproducible without network access.
type MockGenerator struct{}

// Generate implements ImageGenerator. It never fails.
func (MockGenerator) Generate(_ context.Context, prompt string) (image.Image, error) {
	canvas := imaging.New(mockSize, mockSize, mockBackground)
	dc := gg.NewContextForImage(canvas)

	snippet := captionSnippet(prompt)

	// The fixed bitmap face keeps the mock independent of host fonts.
	face := basicfont.Face7x13
	lines := creative.Wrap(snippet, face, mockSize-2*mockMargin)

	lineHeight := creative.LineHeight(face) + mockLineGap
	textHeight := len(lines) * lineHeight
	boxTop := float64(mockSize - textHeight - 2*mockMargin)
	boxBottom := float64(mockSize - mockMargin)

	dc.SetColor(mockCaptionBox)
	dc.DrawRectangle(mockMargin/2, boxTop, mockSize-mockMargin, boxBottom-boxTop)
	dc.Fill()

	creative.DrawBlock(dc, lines, face, mockMargin, boxTop+16, mockLineGap, mockCaption)

	return dc.Image(), nil
}

// captionSnippet truncates the prompt for the placeholder caption,
// clamping on a rune boundary so multi-byte text is never split.
func captionSnippet(prompt string) string {
	runes := []rune(prompt)
	if len(runes) <= mockSnippetLength {
		return prompt
	}
	return string(runes[:mockSnippetLength]) + "..."
}

var _ ImageGenerator = MockGenerator{}
var _ ImageGenerator = (*Client)(nil)
