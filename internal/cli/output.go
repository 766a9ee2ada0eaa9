package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
)

// writeTable writes a header and rows in the given format. Text output is
// aligned into columns; csv output follows RFC 4180.
func writeTable(w io.Writer, format string, header []string, rows [][]string) error {
	switch format {
	case "csv":
		cw := csv.NewWriter(w)
		if err := cw.Write(header); err != nil {
			return err
		}
		return cw.WriteAll(rows)
	case "text":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, strings.Join(header, "\t"))
		for _, row := range rows {
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// formatValue formats x with the fewest digits that represent it exactly as a
// float32.
func formatValue(x float32) string {
	return strconv.FormatFloat(float64(x), 'g', -1, 32)
}
