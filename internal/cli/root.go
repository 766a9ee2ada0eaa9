// Package cli implements the easetab command, which lists, decodes, and
// samples interpolation curves.
package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "csv"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "csv"}

// NewRootCommand creates the root command for easetab.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "easetab",
		Short: "Inspect sync track interpolation curves",
		Long: `easetab lists the interpolation curves, decodes their wire tags,
and samples them into tables for plotting or comparison.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|csv)")

	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewDecodeCommand(opts))
	cmd.AddCommand(NewSampleCommand(opts))

	return cmd
}
