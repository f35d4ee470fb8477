// Package creative implements the rendering engine that turns a base product
// image plus brand and messaging data into finished creatives at fixed aspect
// ratios.
//
// The engine is pure: it performs no network or disk I/O and every
// transformation produces a new image, so renders for different products and
// aspect ratios can run in parallel without locking. Loading base images and
// persisting output is the caller's responsibility (see package pipeline).
//
// # Components
//
// The package is layered leaf-first:
//
//   - ParseHex / ParseHexOr: brand color parsing with guaranteed fallbacks
//   - Resolver: font resolution through an ordered candidate chain that
//     always terminates in a built-in bitmap face
//   - Wrap / DrawBlock: width-constrained greedy word wrap and stacked
//     text-block placement
//   - Compositor: resize-and-pad, legibility gradient, typography and
//     CTA pill compositing for one aspect ratio
//   - Renderer: facade producing one frame per requested aspect ratio
//
// # Failure policy
//
// Malformed brand data never aborts a render: bad color strings resolve to
// documented fallback colors and missing font files fall through the
// candidate chain. Only two hard preconditions exist: a base image must be
// provided and the headline must be non-empty.
package creative
