package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Shadid12/creatives-automation/internal/config"
	"github.com/Shadid12/creatives-automation/internal/httpclient"
	"github.com/Shadid12/creatives-automation/pkg/brief"
	"github.com/Shadid12/creatives-automation/pkg/genai"
	"github.com/Shadid12/creatives-automation/pkg/manifest"
	"github.com/Shadid12/creatives-automation/pkg/pipeline"
)

// generateCommand creates the "generate" command, the main entry point of
// the tool.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		briefPath   string
		assetsDir   string
		outDir      string
		fontsDir    string
		ratios      string
		concurrency int
		noCache     bool
		refresh     bool
		mock        bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render campaign creatives from a brief",
		Long: `Generate renders one creative per product and aspect ratio described by a
campaign brief (JSON or TOML).

Base images come from the assets directory when provided; products without
one get a generated image. Outputs land under the output directory as
<campaign>/<product>/<ratio>/ PNGs, together with a JSON run manifest.`,
		Example: `  creatives generate --brief campaign.json
  creatives generate --brief campaign.toml --ratios 1:1,9:16 --out renders
  creatives generate --brief campaign.json --mock --no-cache`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			b, err := brief.Load(briefPath)
			if err != nil {
				return err
			}

			ratioSet, err := parseRatios(ratios)
			if err != nil {
				return err
			}

			cfg := config.FromEnv()
			if fontsDir == "" {
				fontsDir = cfg.FontsDir
			}

			var images genai.ImageGenerator
			var messaging *genai.MessagingGenerator
			if mock || cfg.GeminiAPIKey == "" {
				if !mock {
					logger.Warn("GEMINI_API_KEY not set, using placeholder generation")
				}
				images = genai.MockGenerator{}
				messaging = &genai.MessagingGenerator{Logger: logger}
			} else {
				client := genai.NewClient(genai.Options{
					APIKey:     cfg.GeminiAPIKey,
					BaseURL:    cfg.GeminiBaseURL,
					HTTPClient: httpclient.New(cfg.RequestTimeout),
					Logger:     logger,
				})
				images = client
				messaging = &genai.MessagingGenerator{Model: client, Logger: logger}
			}

			runner, err := c.newRunner(noCache, images, messaging)
			if err != nil {
				return err
			}
			defer runner.Close()

			prog := newProgress(logger)
			result, err := runner.Execute(cmd.Context(), pipeline.Options{
				Brief:       b,
				AssetsDir:   assetsDir,
				OutputDir:   outDir,
				Ratios:      ratioSet,
				FontsDir:    fontsDir,
				Concurrency: concurrency,
				Refresh:     refresh,
				Logger:      logger,
			})
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Rendered %d creatives", result.Stats.Rendered))

			manifestPath := manifest.Path(outDir, brief.Slugify(b.CampaignID), result.RunID)
			if err := manifest.ExportJSON(manifest.FromResult(result), manifestPath); err != nil {
				return err
			}

			printSuccess("Campaign %s: %d products, %d creatives",
				StyleHighlight.Render(b.CampaignID), result.Stats.Products, result.Stats.Rendered)
			printStats(result.Stats.Rendered, result.Stats.Failed, result.Stats.Generated, result.Stats.CacheHits > 0)
			for _, f := range result.Frames {
				if f.OK() {
					printFile(f.Path)
				}
			}
			printFile(manifestPath)

			failures := result.Failures()
			for _, f := range failures {
				printError("%s %s: %s", f.ProductKey, f.RatioName, f.Error)
			}
			if result.Stats.Rendered == 0 {
				return fmt.Errorf("no creatives rendered (%d failures)", len(failures))
			}
			if len(failures) > 0 {
				printWarning("%d of %d creatives failed", len(failures), len(result.Frames))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&briefPath, "brief", "b", "", "path to the campaign brief (.json or .toml)")
	cmd.Flags().StringVar(&assetsDir, "assets", pipeline.DefaultAssetsDir, "directory with product base images")
	cmd.Flags().StringVarP(&outDir, "out", "o", pipeline.DefaultOutputDir, "output directory for rendered creatives")
	cmd.Flags().StringVar(&fontsDir, "fonts-dir", "", "directory with bundled fonts")
	cmd.Flags().StringVarP(&ratios, "ratios", "r", "", "comma-separated aspect ratios (default \"1:1,9:16,16:9\")")
	cmd.Flags().IntVar(&concurrency, "concurrency", pipeline.DefaultConcurrency, "parallel render workers")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the generation cache")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "skip cache reads and regenerate")
	cmd.Flags().BoolVar(&mock, "mock", false, "use the built-in placeholder image generator")
	_ = cmd.MarkFlagRequired("brief")

	return cmd
}
