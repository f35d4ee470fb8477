package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Shadid12/creatives-automation/pkg/brief"
	"github.com/Shadid12/creatives-automation/pkg/cache"
	"github.com/Shadid12/creatives-automation/pkg/creative"
	"github.com/Shadid12/creatives-automation/pkg/errors"
	"github.com/Shadid12/creatives-automation/pkg/genai"
	"github.com/Shadid12/creatives-automation/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache, generators and logger - it
// doesn't store run results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache     cache.Cache
	Keyer     cache.Keyer
	Images    genai.ImageGenerator
	Messaging *genai.MessagingGenerator
	Logger    *log.Logger
}

// NewRunner creates a runner with the given collaborators.
// If keyer is nil, a DefaultKeyer is used.
// If c is nil, a NullCache is used (caching disabled).
// If images is nil, products without a provided asset fail instead of
// generating one.
func NewRunner(c cache.Cache, keyer cache.Keyer, images genai.ImageGenerator, messaging *genai.MessagingGenerator, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:     c,
		Keyer:     keyer,
		Images:    images,
		Messaging: messaging,
		Logger:    logger,
	}
}

// productJob is one product prepared for rendering: its base image and its
// finalized messaging, or the error that stops all of its frames.
type productJob struct {
	product brief.Product
	image   image.Image
	source  ImageSource
	msg     creative.Messaging
	err     error
}

// Execute runs the complete resolve → messaging → render → encode pipeline.
//
// The returned error covers invalid options and context cancellation only.
// Per-product and per-frame failures are recorded in Result.Frames so one
// broken product never aborts its siblings.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	b := opts.Brief
	start := time.Now()
	result := &Result{
		RunID:      uuid.NewString(),
		CampaignID: b.CampaignID,
	}
	result.Stats.Products = len(b.Products)

	opts.Logger.Info("starting run",
		"run_id", result.RunID,
		"campaign", b.CampaignID,
		"products", len(b.Products),
		"ratios", len(opts.Ratios))

	// Stage 1: per-product preparation (asset or generation, messaging).
	jobs := make([]productJob, len(b.Products))
	prep, prepCtx := errgroup.WithContext(ctx)
	prep.SetLimit(opts.Concurrency)
	var statsMu sync.Mutex
	for i, p := range b.Products {
		i, p := i, p
		prep.Go(func() error {
			observability.Pipeline().OnProductStart(prepCtx, b.CampaignID, p.Key())
			jobs[i] = r.prepare(prepCtx, b, p, opts, &statsMu, &result.Stats)
			return nil
		})
	}
	if err := prep.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: fan out over (product, ratio) pairs.
	renderer := creative.NewRenderer(opts.FontsDir, b.FontPath)
	palette := creative.BrandPalette{Primary: b.PrimaryColor, Secondary: b.SecondaryColor}
	campaignSlug := brief.Slugify(b.CampaignID)

	type frameSlot struct {
		job   productJob
		ratio creative.AspectRatio
	}
	var slots []frameSlot
	for _, job := range jobs {
		for _, ratio := range opts.Ratios {
			slots = append(slots, frameSlot{job: job, ratio: ratio})
		}
	}

	result.Frames = make([]FrameResult, len(slots))
	render, renderCtx := errgroup.WithContext(ctx)
	render.SetLimit(opts.Concurrency)
	for i, slot := range slots {
		i, slot := i, slot
		render.Go(func() error {
			result.Frames[i] = r.renderFrame(renderCtx, renderer, palette, campaignSlug, opts, slot.job, slot.ratio)
			return nil
		})
	}
	if err := render.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, f := range result.Frames {
		if f.OK() {
			result.Stats.Rendered++
		} else {
			result.Stats.Failed++
		}
	}
	for _, job := range jobs {
		key := job.product.Key()
		frames := 0
		for _, f := range result.Frames {
			if f.ProductKey == key && f.OK() {
				frames++
			}
		}
		observability.Pipeline().OnProductComplete(ctx, b.CampaignID, key, frames, time.Since(start), job.err)
	}
	result.Stats.Duration = time.Since(start)

	opts.Logger.Info("run complete",
		"run_id", result.RunID,
		"rendered", result.Stats.Rendered,
		"failed", result.Stats.Failed,
		"duration", result.Stats.Duration)

	return result, nil
}

// prepare resolves the base image and messaging for one product. Failures
// are captured in the returned job, never propagated.
func (r *Runner) prepare(ctx context.Context, b *brief.Brief, p brief.Product, opts Options, mu *sync.Mutex, stats *Stats) productJob {
	job := productJob{product: p}

	job.image, job.source, job.err = r.resolveImage(ctx, b, p, opts, mu, stats)
	if job.err != nil {
		opts.Logger.Warn("product preparation failed", "product", p.Key(), "err", job.err)
		return job
	}

	job.msg = r.resolveMessaging(ctx, b, p, opts, mu, stats)
	return job
}

// resolveImage finds the product's base image: provided asset first, then
// the asset cache, then generation. Generated images are persisted to the
// assets dir so later runs treat them as provided.
func (r *Runner) resolveImage(ctx context.Context, b *brief.Brief, p brief.Product, opts Options, mu *sync.Mutex, stats *Stats) (image.Image, ImageSource, error) {
	img, path, err := FindAsset(opts.AssetsDir, p)
	if err != nil {
		return nil, "", err
	}
	if img != nil {
		opts.Logger.Debug("using provided asset", "product", p.Key(), "path", path)
		return img, SourceProvided, nil
	}

	prompt := genai.ImagePrompt(b, p)
	key := r.Keyer.AssetKey(prompt)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if cached, _, err := image.Decode(bytes.NewReader(data)); err == nil {
				observability.Cache().OnCacheHit(ctx, "asset")
				mu.Lock()
				stats.CacheHits++
				mu.Unlock()
				opts.Logger.Debug("asset cache hit", "product", p.Key())
				return cached, SourceCache, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "asset")
	}

	if r.Images == nil {
		return nil, "", errors.New(errors.ErrCodeAssetNotFound,
			"no asset found for product %q and image generation is disabled", p.Key())
	}

	opts.Logger.Info("generating base image", "product", p.Key())
	observability.Pipeline().OnGenerationStart(ctx, "image", p.Key())
	genStart := time.Now()
	generated, err := r.Images.Generate(ctx, prompt)
	observability.Pipeline().OnGenerationComplete(ctx, "image", p.Key(), time.Since(genStart), err)
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrCodeGenerationFailed, err, "generate image for product %q", p.Key())
	}
	mu.Lock()
	stats.Generated++
	mu.Unlock()

	// Cache and persist the generated image. Both are best-effort: a failed
	// write costs a regeneration next run, nothing more.
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, generated, imaging.PNG); err == nil {
		if err := r.Cache.Set(ctx, key, buf.Bytes(), cache.TTLAsset); err == nil {
			observability.Cache().OnCacheSet(ctx, "asset", buf.Len())
		}
		assetPath := filepath.Join(opts.AssetsDir, p.Slug()+".png")
		if err := os.MkdirAll(opts.AssetsDir, 0755); err == nil {
			if err := os.WriteFile(assetPath, buf.Bytes(), 0644); err == nil {
				opts.Logger.Debug("persisted generated asset", "product", p.Key(), "path", assetPath)
			}
		}
	}

	return generated, SourceGenerated, nil
}

// resolveMessaging finalizes per-product copy, consulting the messaging
// cache first. It never fails: generation problems fall back to the brief's
// campaign messaging inside the generator.
func (r *Runner) resolveMessaging(ctx context.Context, b *brief.Brief, p brief.Product, opts Options, mu *sync.Mutex, stats *Stats) creative.Messaging {
	key := r.Keyer.MessagingKey(b.CampaignID, p.Key(), b.Locale)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var msg creative.Messaging
			if err := json.Unmarshal(data, &msg); err == nil && msg.Validate() {
				observability.Cache().OnCacheHit(ctx, "messaging")
				mu.Lock()
				stats.CacheHits++
				mu.Unlock()
				return msg
			}
		}
		observability.Cache().OnCacheMiss(ctx, "messaging")
	}

	gen := r.Messaging
	if gen == nil {
		gen = &genai.MessagingGenerator{Logger: opts.Logger}
	}
	observability.Pipeline().OnGenerationStart(ctx, "messaging", p.Key())
	genStart := time.Now()
	msg := gen.Generate(ctx, b, p)
	observability.Pipeline().OnGenerationComplete(ctx, "messaging", p.Key(), time.Since(genStart), nil)

	if data, err := json.Marshal(msg); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.TTLMessaging); err == nil {
			observability.Cache().OnCacheSet(ctx, "messaging", len(data))
		}
	}
	return msg
}

// renderFrame composites and encodes one (product, ratio) creative.
func (r *Runner) renderFrame(ctx context.Context, renderer *creative.Renderer, palette creative.BrandPalette, campaignSlug string, opts Options, job productJob, ratio creative.AspectRatio) FrameResult {
	res := FrameResult{
		ProductKey: job.product.Key(),
		Ratio:      ratio,
		RatioName:  ratio.String(),
		Source:     job.source,
	}
	if job.err != nil {
		res.Error = job.err.Error()
		return res
	}

	frameStart := time.Now()
	frame, err := renderer.Render(job.image, ratio, palette, job.msg, job.product.Key())
	observability.Pipeline().OnFrameRendered(ctx, res.ProductKey, res.RatioName, time.Since(frameStart), err)
	if err != nil {
		res.Error = err.Error()
		opts.Logger.Warn("frame render failed", "product", res.ProductKey, "ratio", res.RatioName, "err", err)
		return res
	}

	slug := job.product.Slug()
	dir := filepath.Join(opts.OutputDir, campaignSlug, slug, ratio.Slug())
	name := fmt.Sprintf("%s_%s_%s.png", campaignSlug, slug, ratio.Slug())
	path := filepath.Join(dir, name)

	if err := os.MkdirAll(dir, 0755); err != nil {
		res.Error = errors.Wrap(errors.ErrCodeEncodeFailed, err, "create output dir %s", dir).Error()
		return res
	}
	if err := imaging.Save(frame.Image, path); err != nil {
		res.Error = errors.Wrap(errors.ErrCodeEncodeFailed, err, "write %s", path).Error()
		return res
	}

	res.Path = path
	opts.Logger.Debug("rendered creative", "product", res.ProductKey, "ratio", res.RatioName, "path", path)
	return res
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
