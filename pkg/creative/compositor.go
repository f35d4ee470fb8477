package creative

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/Shadid12/creatives-automation/pkg/errors"
)

// Layout constants tuned against the original campaign templates. The font
// scale factors per aspect bucket are empirical; treat them as configuration,
// not derivable values.
const (
	// gradientCoverage is the fraction of canvas height covered by the
	// bottom legibility gradient.
	gradientCoverage = 0.45
	// gradientMaxAlpha is the gradient alpha at the canvas bottom
	// (220/255, roughly 86% opacity).
	gradientMaxAlpha = 220

	// landscapeCutoff is the width/height ratio above which a canvas is
	// treated as wide landscape for typography and placement.
	landscapeCutoff = 1.5

	// Base font size as a fraction of the canvas's larger dimension.
	baseScaleLandscape = 0.06
	baseScaleDefault   = 0.055

	headlineScale = 1.1
	bodyScale     = 0.5

	// marginRatio is the horizontal text margin on each side.
	marginRatio = 0.07

	// Vertical start of the text block as a fraction of canvas height.
	// Landscape canvases start slightly higher to avoid clipping near the
	// bottom edge.
	textStartLandscape = 0.50
	textStartDefault   = 0.55

	headlineLineSpacing = 8.0
	bodyLineSpacing     = 6.0
	headlineGap         = 6.0
	descriptionGap      = 12.0

	pillPaddingX = 18.0
	pillPaddingY = 8.0
)

// Compositor renders one creative frame per call: it fits the base image
// onto an aspect-ratio canvas, composites the legibility gradient and draws
// headline, description and CTA pill on top.
//
// A Compositor is configured once per campaign (fonts directory and optional
// brand font path) and is safe for concurrent use: Render only reads its
// configuration and allocates fresh buffers.
type Compositor struct {
	Fonts *Resolver
	// FontPath is the campaign's explicit brand font, resolved through the
	// font chain; empty means bundled/system fonts only.
	FontPath string
}

// NewCompositor creates a compositor resolving fonts from fontsDir, with an
// optional explicit brand font path.
func NewCompositor(fontsDir, fontPath string) *Compositor {
	return &Compositor{
		Fonts:    NewResolver(fontsDir),
		FontPath: fontPath,
	}
}

// Render produces the finished frame for one aspect ratio.
//
// Hard preconditions: base must be non-nil and msg must carry a non-empty
// headline; violations return a structured error. Missing optional fields
// (description, CTA) skip their drawing step without error. Everything else,
// such as malformed colors or unloadable fonts, degrades silently.
//
// Render never mutates base; every step works on a fresh buffer, so the same
// inputs always produce pixel-identical output given a stable font
// environment.
func (c *Compositor) Render(base image.Image, ratio AspectRatio, palette BrandPalette, msg Messaging, label string) (*Frame, error) {
	if base == nil {
		return nil, errors.New(errors.ErrCodeMissingImage, "no base image for %q", label)
	}
	if !msg.Validate() {
		return nil, errors.New(errors.ErrCodeMissingHeadline, "empty headline for %q", label)
	}

	w, h := ratio.CanvasSize(BaseCanvasSize)

	// Fit inside and pad: the source is downscaled with Lanczos so it fits
	// entirely within the canvas, then centered on opaque black. Content is
	// never cropped.
	fitted := imaging.Fit(base, w, h, imaging.Lanczos)
	canvas := imaging.New(w, h, color.NRGBA{A: 0xFF})
	canvas = imaging.PasteCenter(canvas, fitted)

	dc := gg.NewContextForImage(canvas)
	c.drawGradient(dc, w, h)

	aspect := float64(w) / float64(h)
	maxSide := float64(w)
	if h > w {
		maxSide = float64(h)
	}
	baseSize := maxSide * baseScaleDefault
	if aspect > landscapeCutoff {
		baseSize = maxSide * baseScaleLandscape
	}

	headlineFace := c.Fonts.Resolve(c.FontPath, baseSize*headlineScale)
	bodyFace := c.Fonts.Resolve(c.FontPath, baseSize*bodyScale)

	primary := ParseHex(palette.Primary)
	secondary := ParseHexOr(palette.Secondary, FallbackSecondary)

	marginX := float64(w) * marginRatio
	maxTextWidth := w - int(2*marginX)

	y := float64(h) * textStartDefault
	if aspect > landscapeCutoff {
		y = float64(h) * textStartLandscape
	}

	y = DrawBlock(dc, Wrap(msg.Headline, headlineFace, maxTextWidth),
		headlineFace, marginX, y, headlineLineSpacing, primary) + headlineGap

	if msg.Description != "" {
		y = DrawBlock(dc, Wrap(msg.Description, bodyFace, maxTextWidth),
			bodyFace, marginX, y, bodyLineSpacing, secondary) + descriptionGap
	}

	if msg.CallToAction != "" {
		drawPill(dc, msg.CallToAction, bodyFace, marginX, y, primary, secondary)
	}

	return &Frame{Image: flatten(dc.Image()), Ratio: ratio}, nil
}

// drawGradient composites the bottom-anchored legibility gradient:
// transparent at its top edge, ramping linearly to a strong dark alpha at the
// canvas bottom. Text contrast is guaranteed regardless of image content, at
// the accepted cost of darkening the lower region.
func (c *Compositor) drawGradient(dc *gg.Context, w, h int) {
	gh := float64(h) * gradientCoverage
	top := float64(h) - gh

	grad := gg.NewLinearGradient(0, top, 0, float64(h))
	grad.AddColorStop(0, color.NRGBA{})
	grad.AddColorStop(1, color.NRGBA{A: gradientMaxAlpha})

	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, top, float64(w), gh)
	dc.Fill()
}

// drawPill draws the rounded call-to-action badge: corner radius is half the
// pill height, fill is the brand primary and the text is centered within the
// padding in the secondary color.
func drawPill(dc *gg.Context, text string, face font.Face, x, y float64, fill, textColor color.NRGBA) {
	m := face.Metrics()
	textW := float64(font.MeasureString(face, text).Ceil())
	textH := float64((m.Ascent + m.Descent).Ceil())

	boxW := textW + 2*pillPaddingX
	boxH := textH + 2*pillPaddingY

	dc.SetColor(fill)
	dc.DrawRoundedRectangle(x, y, boxW, boxH, boxH/2)
	dc.Fill()

	dc.SetFontFace(face)
	dc.SetColor(textColor)
	dc.DrawString(text, x+pillPaddingX, y+pillPaddingY+float64(m.Ascent.Ceil()))
}

// flatten copies the composited canvas onto an opaque buffer, stripping any
// residual alpha so the persisted output has no transparency.
func flatten(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := imaging.New(b.Dx(), b.Dy(), color.NRGBA{A: 0xFF})
	return imaging.Overlay(out, img, image.Point{}, 1.0)
}
