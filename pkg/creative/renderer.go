package creative

import "image"

// Renderer is the facade over the compositor: one finished frame per
// requested aspect ratio. Messaging is computed once per product upstream
// and passed in unchanged, so text stays identical across the whole set.
type Renderer struct {
	Compositor *Compositor
}

// NewRenderer creates a renderer with fonts from fontsDir and an optional
// explicit brand font path.
func NewRenderer(fontsDir, fontPath string) *Renderer {
	return &Renderer{Compositor: NewCompositor(fontsDir, fontPath)}
}

// Render produces the frame for a single aspect ratio.
func (r *Renderer) Render(base image.Image, ratio AspectRatio, palette BrandPalette, msg Messaging, label string) (*Frame, error) {
	return r.Compositor.Render(base, ratio, palette, msg, label)
}

// RenderAll renders one frame per requested ratio. Each ratio is rendered
// independently; no ratio's output can observe another's. The only error
// paths are the shared hard preconditions (missing image, empty headline),
// which are checked up front so a failure never yields a partial map.
func (r *Renderer) RenderAll(base image.Image, ratios []AspectRatio, palette BrandPalette, msg Messaging, label string) (map[AspectRatio]*Frame, error) {
	frames := make(map[AspectRatio]*Frame, len(ratios))
	for _, ratio := range ratios {
		frame, err := r.Compositor.Render(base, ratio, palette, msg, label)
		if err != nil {
			return nil, err
		}
		frames[ratio] = frame
	}
	return frames, nil
}
