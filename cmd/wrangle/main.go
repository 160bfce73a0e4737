// Command wrangle manipulates tabular data files from the terminal:
// viewing, joining, ranking, deduplicating, summarizing and snapshotting.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
