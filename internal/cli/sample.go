package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"honnef.co/go/ease"
)

// maxSteps bounds --steps so that the table fits in memory.
const maxSteps = 1 << 20

// SampleOptions holds flags for the sample command.
type SampleOptions struct {
	Steps int
	From  float32
	To    float32
}

// NewSampleCommand creates the sample command.
func NewSampleCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SampleOptions{}

	cmd := &cobra.Command{
		Use:   "sample [curve]...",
		Short: "Sample curves at evenly spaced points",
		Long: `Evaluate curves at steps+1 evenly spaced values of t between --from and
--to, inclusive. Without arguments, all curves are sampled.

Values of t outside [0, 1] extrapolate the curves.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSample(rootOpts, opts, args, cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Steps, "steps", "n", 4, "number of intervals to divide [from, to] into")
	cmd.Flags().Float32Var(&opts.From, "from", 0, "first value of t")
	cmd.Flags().Float32Var(&opts.To, "to", 1, "last value of t")

	return cmd
}

func runSample(rootOpts *RootOptions, opts *SampleOptions, args []string, cmd *cobra.Command) error {
	if opts.Steps < 1 || opts.Steps > maxSteps {
		return fmt.Errorf("invalid steps %d: must be between 1 and %d", opts.Steps, maxSteps)
	}

	curves, err := parseCurves(args)
	if err != nil {
		return err
	}

	if rootOpts.Verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "sampling %d curves at %d points in [%s, %s]\n",
			len(curves), opts.Steps+1, formatValue(opts.From), formatValue(opts.To))
	}

	header := []string{"t"}
	for _, c := range curves {
		header = append(header, c.String())
	}

	rows := make([][]string, 0, opts.Steps+1)
	for i := 0; i <= opts.Steps; i++ {
		t := opts.From + (opts.To-opts.From)*float32(i)/float32(opts.Steps)
		if i == opts.Steps {
			// The last sample is exactly --to.
			t = opts.To
		}
		row := []string{formatValue(t)}
		for _, c := range curves {
			row = append(row, formatValue(c.Interpolate(t)))
		}
		rows = append(rows, row)
	}

	return writeTable(cmd.OutOrStdout(), rootOpts.Format, header, rows)
}

// parseCurves parses curve names. No names means all curves.
func parseCurves(names []string) ([]ease.Curve, error) {
	if len(names) == 0 {
		return slices.Collect(ease.All()), nil
	}
	curves := make([]ease.Curve, 0, len(names))
	for _, name := range names {
		c, err := ease.ParseCurve(name)
		if err != nil {
			return nil, err
		}
		curves = append(curves, c)
	}
	return curves, nil
}
