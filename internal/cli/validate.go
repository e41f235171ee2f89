package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/daythemes/catalog"
)

// ValidationResult holds validation results for output.
type ValidationResult struct {
	Valid bool   `json:"valid"`
	File  string `json:"file"`
	Error string `json:"error,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a theme catalog document",
		Long: `Validate a catalog YAML document against the catalog schema.

Without arguments the embedded default catalog is checked. Validation
covers rule shapes (kinds, month-day strings, field ranges) plus the
engine invariants: unique names and a single everyday entry.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true, // Result output carries the diagnostics
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "embedded catalog"
			data := catalog.DefaultSource()
			if len(args) == 1 {
				name = args[0]
				var err error
				data, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read catalog: %w", err)
				}
			}

			err := catalog.Validate(data)
			if err == nil {
				_, err = catalog.Parse(data)
			}

			result := ValidationResult{Valid: err == nil, File: name}
			if err != nil {
				result.Error = err.Error()
			}

			out := cmd.OutOrStdout()
			if rootOpts.Format == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if encErr := enc.Encode(result); encErr != nil {
					return encErr
				}
			} else if result.Valid {
				fmt.Fprintf(out, "%s: valid\n", name)
			} else {
				fmt.Fprintf(out, "%s: invalid: %s\n", name, result.Error)
			}

			if err != nil {
				return errors.New("catalog validation failed")
			}
			return nil
		},
	}

	return cmd
}
