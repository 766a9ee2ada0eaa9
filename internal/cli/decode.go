package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"honnef.co/go/ease"
)

// DecodeOptions holds flags for the decode command.
type DecodeOptions struct {
	Strict bool
}

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DecodeOptions{}

	cmd := &cobra.Command{
		Use:   "decode <raw>...",
		Short: "Decode wire tags into curves",
		Long: `Decode one or more wire tags (integers 0-255) into curves.

Tags without a curve decode to Step, the same way a track reader treats them.
With --strict they are reported as an error instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(rootOpts, opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "fail on tags that have no curve")

	return cmd
}

func runDecode(rootOpts *RootOptions, opts *DecodeOptions, args []string, cmd *cobra.Command) error {
	rows := make([][]string, 0, len(args))
	for _, arg := range args {
		raw, err := strconv.ParseUint(arg, 10, 8)
		if err != nil {
			return fmt.Errorf("invalid tag %q: must be an integer in 0-255", arg)
		}
		if !ease.Curve(raw).Valid() {
			if opts.Strict {
				return fmt.Errorf("tag %d is not a known curve", raw)
			}
			if rootOpts.Verbose {
				fmt.Fprintf(cmd.ErrOrStderr(), "tag %d is not a known curve, using %s\n", raw, ease.Step)
			}
		}
		c := ease.FromRaw(uint8(raw))
		rows = append(rows, []string{strconv.FormatUint(raw, 10), c.String()})
	}
	return writeTable(cmd.OutOrStdout(), rootOpts.Format, []string{"raw", "curve"}, rows)
}
