// Command proptest-sample is a small demo CLI over the gen and stream
// packages: it draws values from a fixed registry of built-in generators
// for documentation and ad-hoc exploration, outside of a *testing.T.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "proptest-sample",
	Short: "Sample values from proptest's built-in generators",
}
