package cli

import (
	"github.com/spf13/cobra"

	"github.com/Shadid12/creatives-automation/internal/config"
	"github.com/Shadid12/creatives-automation/pkg/creative"
)

// fontsCommand creates the "fonts" debug command. It walks the same
// resolution chain the renderer uses and reports which candidate wins.
func (c *CLI) fontsCommand() *cobra.Command {
	var (
		fontsDir string
		fontPath string
	)

	cmd := &cobra.Command{
		Use:   "fonts",
		Short: "Show the font resolution chain",
		Long: `Fonts lists every font candidate in resolution order (bundled directory,
explicit path, system fonts, lookup, built-in fallback) and marks the first
one that loads. The marked face is the one generate will render with.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fontsDir == "" {
				fontsDir = config.FromEnv().FontsDir
			}

			resolver := creative.NewResolver(fontsDir)
			resolved := false
			for _, cand := range resolver.Chain(fontPath) {
				if cand.Source == creative.FontSourceBuiltin {
					if resolved {
						printDetail("%-8s built-in bitmap face", cand.Source)
					} else {
						printSuccess("%-8s built-in bitmap face", cand.Source)
						resolved = true
					}
					continue
				}
				if _, err := creative.LoadFace(cand.Path, 16); err != nil {
					printDetail("%-8s %s (unavailable)", cand.Source, cand.Path)
					continue
				}
				if resolved {
					printDetail("%-8s %s", cand.Source, cand.Path)
					continue
				}
				printSuccess("%-8s %s", cand.Source, cand.Path)
				resolved = true
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fontsDir, "fonts-dir", "", "directory with bundled fonts")
	cmd.Flags().StringVar(&fontPath, "font", "", "explicit font file to test first")

	return cmd
}
