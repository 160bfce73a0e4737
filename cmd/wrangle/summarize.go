package main

import (
	"fmt"

	"github.com/spf13/cobra"

	wrangling "github.com/jaejungca/advanced-wrangling"
	"github.com/jaejungca/advanced-wrangling/accumulators"
	"github.com/jaejungca/advanced-wrangling/transform"
)

var (
	summarizeCols []string
	summarizeStat string
	summarizeAs   string
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize FILE",
	Short: "Aggregate each row across a subset of numeric columns",
	Long: `Aggregate each row across a subset of numeric columns.

Each row is treated as an independent one-row group: the chosen statistic
is folded over the row's cells in the selected columns, and the result is
appended as a new column.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := loadFrame(args[0])
		if err != nil {
			return err
		}
		var facc accumulators.Factory
		var colType wrangling.ColumnType = &wrangling.Float64ColumnType{}
		switch summarizeStat {
		case "sum":
			facc = accumulators.Adder()
		case "mean":
			facc = accumulators.Meaner()
		case "min":
			facc = accumulators.Minimizer()
		case "max":
			facc = accumulators.Maximizer()
		case "count":
			facc = accumulators.Counter()
			colType = &wrangling.Int64ColumnType{}
		default:
			return fmt.Errorf("unknown statistic %q", summarizeStat)
		}
		sel := transform.Numeric()
		if len(summarizeCols) > 0 {
			sel = transform.Columns(summarizeCols...)
		}
		as := summarizeAs
		if as == "" {
			as = summarizeStat
		}
		result, err := transform.RowwiseSummarize(f, sel, facc, as, colType)
		if err != nil {
			return err
		}
		return show(result)
	},
}

func init() {
	summarizeCmd.Flags().StringSliceVar(&summarizeCols, "cols", nil, "columns to aggregate across (defaults to all numeric columns)")
	summarizeCmd.Flags().StringVar(&summarizeStat, "stat", "mean", "statistic: sum, mean, min, max or count")
	summarizeCmd.Flags().StringVar(&summarizeAs, "as", "", "name of the result column (defaults to the statistic)")
	rootCmd.AddCommand(summarizeCmd)
}
