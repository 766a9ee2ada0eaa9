// Command easetab lists, decodes, and samples sync track interpolation curves.
package main

import (
	"fmt"
	"os"

	"honnef.co/go/ease/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "easetab: %v\n", err)
		os.Exit(1)
	}
}
