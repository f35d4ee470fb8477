package creative

import (
	"image"
	"strings"
)

// BrandPalette carries the raw brand color strings from a campaign brief.
// Parsing happens at composite time so that malformed values degrade to the
// documented fallbacks instead of failing brief ingestion.
type BrandPalette struct {
	Primary   string
	Secondary string
}

// Messaging is the finalized copy rendered onto a creative. Presence of the
// optional fields is carried by non-emptiness; there is no runtime attribute
// probing. A Messaging value is built once per product and reused unchanged
// across all aspect ratios so the creative set stays consistent.
type Messaging struct {
	Headline     string // required, non-empty
	Description  string // optional
	CallToAction string // optional
}

// Validate checks the hard precondition: a non-empty headline.
func (m Messaging) Validate() bool {
	return strings.TrimSpace(m.Headline) != ""
}

// Frame is a finished creative: the composited image plus the aspect ratio
// it was rendered for. Frames are not mutated after creation.
type Frame struct {
	Image *image.NRGBA
	Ratio AspectRatio
}
