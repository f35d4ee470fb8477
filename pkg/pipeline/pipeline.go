// Package pipeline orchestrates a full campaign run: load products from the
// brief, obtain a base image for each (provided asset, cache, or generation),
// generate messaging once per product, and render one creative per requested
// aspect ratio.
//
// # Architecture
//
// The pipeline fans out over (product, ratio) pairs:
//
//  1. Resolve: find or generate the product's base image
//  2. Messaging: finalize copy once per product
//  3. Render: composite one frame per aspect ratio
//  4. Encode: write PNGs under out/<campaign>/<product>/<WxH>/
//
// Failures are isolated per product and per ratio. A broken product (missing
// asset, failed generation) never aborts its siblings; the run completes and
// reports every failure in the Result.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, generator, messaging, logger)
//	opts := pipeline.Options{
//	    Brief:     campaignBrief,
//	    AssetsDir: "assets",
//	    OutputDir: "out",
//	}
//	result, err := runner.Execute(ctx, opts)
package pipeline

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Shadid12/creatives-automation/pkg/brief"
	"github.com/Shadid12/creatives-automation/pkg/creative"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Library Callers
// =============================================================================

const (
	// DefaultConcurrency bounds the number of (product, ratio) render
	// workers running at once.
	DefaultConcurrency = 4

	// DefaultAssetsDir is the directory scanned for provided base images.
	DefaultAssetsDir = "assets"

	// DefaultOutputDir is the root of the rendered output tree.
	DefaultOutputDir = "out"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one campaign run.
type Options struct {
	// Brief is the parsed campaign brief. Required.
	Brief *brief.Brief

	// AssetsDir is where provided base images live and where generated
	// ones are persisted for reuse.
	AssetsDir string

	// OutputDir is the root directory for rendered creatives.
	OutputDir string

	// Ratios are the aspect ratios to render. Empty means the standard
	// 1:1, 9:16 and 16:9 set.
	Ratios []creative.AspectRatio

	// FontsDir holds bundled fonts; the brief's font_path may override the
	// face used for rendering.
	FontsDir string

	// Concurrency bounds parallel render workers. Zero means
	// DefaultConcurrency.
	Concurrency int

	// Refresh skips cache reads (writes still happen), forcing regeneration.
	Refresh bool

	// Logger receives progress output. Nil means the runner's logger.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Brief == nil {
		return fmt.Errorf("brief is required")
	}
	if len(o.Brief.Products) == 0 {
		return fmt.Errorf("brief has no products")
	}
	if o.AssetsDir == "" {
		o.AssetsDir = DefaultAssetsDir
	}
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	if len(o.Ratios) == 0 {
		o.Ratios = creative.DefaultRatios()
	}
	if o.Concurrency <= 0 {
		o.Concurrency = DefaultConcurrency
	}
	o.validated = true
	return nil
}

// =============================================================================
// Result Types
// =============================================================================

// ImageSource records where a product's base image came from.
type ImageSource string

const (
	SourceProvided  ImageSource = "provided"
	SourceCache     ImageSource = "cache"
	SourceGenerated ImageSource = "generated"
)

// FrameResult is the outcome for one (product, ratio) pair.
type FrameResult struct {
	ProductKey string               `json:"product"`
	Ratio      creative.AspectRatio `json:"-"`
	RatioName  string               `json:"ratio"`
	Path       string               `json:"path,omitempty"`
	Source     ImageSource          `json:"source,omitempty"`
	Error      string               `json:"error,omitempty"`
}

// OK reports whether the frame rendered and encoded successfully.
func (f FrameResult) OK() bool {
	return f.Error == ""
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this run and names its manifest.
	RunID string

	// CampaignID echoes the brief.
	CampaignID string

	// Frames holds one entry per (product, ratio) pair, success or failure.
	Frames []FrameResult

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Products  int
	Rendered  int
	Failed    int
	Generated int // base images produced by the generator this run
	CacheHits int
	Duration  time.Duration
}

// Failures returns the frames that did not render.
func (r *Result) Failures() []FrameResult {
	var failed []FrameResult
	for _, f := range r.Frames {
		if !f.OK() {
			failed = append(failed, f)
		}
	}
	return failed
}
