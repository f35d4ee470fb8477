package creative

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Shadid12/creatives-automation/pkg/errors"
)

// BaseCanvasSize is the pixel length of the longer canvas side. The shorter
// side is derived from it by the aspect ratio. The value matches the 1200px
// baseline the campaign templates were tuned against.
const BaseCanvasSize = 1200

// AspectRatio is a target width:height proportion for a rendered frame,
// independent of absolute pixel size.
type AspectRatio struct {
	W int
	H int
}

// DefaultRatios returns the standard creative set: square, story and banner.
func DefaultRatios() []AspectRatio {
	return []AspectRatio{{1, 1}, {9, 16}, {16, 9}}
}

// ParseRatio parses a "W:H" ratio spec such as "16:9".
func ParseRatio(s string) (AspectRatio, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return AspectRatio{}, errors.New(errors.ErrCodeInvalidRatio, "ratio must be W:H, got %q", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return AspectRatio{}, errors.New(errors.ErrCodeInvalidRatio, "invalid ratio width %q", parts[0])
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return AspectRatio{}, errors.New(errors.ErrCodeInvalidRatio, "invalid ratio height %q", parts[1])
	}
	if w <= 0 || h <= 0 {
		return AspectRatio{}, errors.New(errors.ErrCodeInvalidRatio, "ratio sides must be positive, got %d:%d", w, h)
	}
	return AspectRatio{W: w, H: h}, nil
}

// String returns the "W:H" form, e.g. "16:9".
func (r AspectRatio) String() string {
	return fmt.Sprintf("%d:%d", r.W, r.H)
}

// Slug returns a filesystem-safe form, e.g. "16x9".
func (r AspectRatio) Slug() string {
	return fmt.Sprintf("%dx%d", r.W, r.H)
}

// Landscape reports whether the ratio is wider than tall.
func (r AspectRatio) Landscape() bool {
	return r.W > r.H
}

// CanvasSize returns the working canvas dimensions for the ratio. The longer
// side equals base and the shorter side is scaled by the ratio, preserving
// orientation: landscape ratios produce wide canvases, portrait ratios tall
// ones.
func (r AspectRatio) CanvasSize(base int) (width, height int) {
	if r.W >= r.H {
		width = base
		height = int(float64(base) * float64(r.H) / float64(r.W))
	} else {
		height = base
		width = int(float64(base) * float64(r.W) / float64(r.H))
	}
	return width, height
}
