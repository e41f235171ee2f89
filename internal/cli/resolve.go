package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/daythemes/catalog"
	"github.com/zapponejosh/daythemes/theme"
)

// resolveOutput is the JSON shape of a resolve invocation.
type resolveOutput struct {
	Date   string                `json:"date"`
	Themes []theme.ResolvedTheme `json:"themes"`
}

// NewResolveCommand creates the resolve command.
func NewResolveCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		cultures []string
		region   string
		all      bool
	)

	cmd := &cobra.Command{
		Use:   "resolve [date]",
		Short: "Resolve themes for a date",
		Long: `Resolve which themes apply to a date (YYYY-MM-DD, default today).

By default only the most specific theme is printed; --all lists every
active theme ranked by specificity.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			date := time.Now()
			if len(args) == 1 {
				parsed, err := time.Parse("2006-01-02", args[0])
				if err != nil {
					return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", args[0])
				}
				date = parsed
			}

			opts := theme.Options{
				EnabledCultures: rootOpts.Config.EnabledCultures,
				UserRegion:      rootOpts.Config.UserRegion,
			}
			if len(cultures) > 0 {
				opts.EnabledCultures = cultures
			}
			if region != "" {
				opts.UserRegion = region
			}

			engine := theme.NewEngine(catalog.Default())
			themes := engine.ResolveThemes(date, opts)

			slog.Debug("resolved themes",
				slog.String("date", date.Format("2006-01-02")),
				slog.Int("matches", len(themes)),
			)

			if !all && len(themes) > 1 {
				themes = themes[:1]
			}

			return writeThemes(cmd, rootOpts.Format, date, themes)
		},
	}

	cmd.Flags().StringSliceVar(&cultures, "cultures", nil, "opt-in theme names (overrides THEME_CULTURES)")
	cmd.Flags().StringVar(&region, "region", "", "user region identifier (overrides THEME_REGION)")
	cmd.Flags().BoolVar(&all, "all", false, "list every active theme instead of the primary one")

	return cmd
}

func writeThemes(cmd *cobra.Command, format string, date time.Time, themes []theme.ResolvedTheme) error {
	out := cmd.OutOrStdout()

	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(resolveOutput{
			Date:   date.Format("2006-01-02"),
			Themes: themes,
		})
	}

	if len(themes) == 0 {
		fmt.Fprintln(out, "no themes resolved: catalog has no fallback entry")
		return nil
	}
	for _, t := range themes {
		line := fmt.Sprintf("%s (%s)", t.Name, t.Category)
		if t.Metadata != nil && t.Metadata.Description != "" {
			line += ": " + t.Metadata.Description
		}
		fmt.Fprintln(out, line)
	}
	return nil
}
