package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"honnef.co/go/ease"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all curves and their wire tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows [][]string
			for c := range ease.All() {
				rows = append(rows, []string{strconv.Itoa(int(c.Raw())), c.String()})
			}
			return writeTable(cmd.OutOrStdout(), rootOpts.Format, []string{"raw", "name"}, rows)
		},
	}
}
