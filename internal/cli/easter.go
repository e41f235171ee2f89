package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/daythemes/calendar"
)

// NewEasterCommand creates the easter command, a small inspection
// helper for the movable-holiday calculator.
func NewEasterCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "easter <year>...",
		Short:        "Print computed Easter dates",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			dates := make(map[string]string, len(args))

			for _, arg := range args {
				year, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid year %q", arg)
				}
				date := calendar.Easter(year).Format("2006-01-02")
				if rootOpts.Format == "json" {
					dates[arg] = date
				} else {
					fmt.Fprintf(out, "%d: %s\n", year, date)
				}
			}

			if rootOpts.Format == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(dates)
			}
			return nil
		},
	}

	return cmd
}
