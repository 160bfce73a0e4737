package main

import (
	"fmt"

	"github.com/spf13/cobra"

	wrangling "github.com/jaejungca/advanced-wrangling"
	"github.com/jaejungca/advanced-wrangling/rank"
)

var (
	rankCol     string
	rankAs      string
	rankMethod  string
	rankDesc    bool
	rankBuckets int
)

var rankCmd = &cobra.Command{
	Use:   "rank FILE",
	Short: "Rank the rows of a data file by a numeric column",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := loadFrame(args[0])
		if err != nil {
			return err
		}
		as := rankAs
		if as == "" {
			as = rankCol + "_" + rankMethod
		}
		conf := &rank.Conf{Descending: rankDesc}
		var result *wrangling.Frame
		switch rankMethod {
		case "row":
			result, err = rank.RowNumber(f, rankCol, as, conf)
		case "min":
			result, err = rank.MinRank(f, rankCol, as, conf)
		case "dense":
			result, err = rank.DenseRank(f, rankCol, as, conf)
		case "percent":
			result, err = rank.PercentRank(f, rankCol, as, conf)
		case "cume":
			result, err = rank.CumeDist(f, rankCol, as, conf)
		case "ntile":
			result, err = rank.NTile(f, rankCol, as, rankBuckets, conf)
		default:
			return fmt.Errorf("unknown rank method %q", rankMethod)
		}
		if err != nil {
			return err
		}
		return show(result)
	},
}

func init() {
	rankCmd.Flags().StringVar(&rankCol, "col", "", "column to rank by")
	rankCmd.Flags().StringVar(&rankAs, "as", "", "name of the rank column (defaults to COL_METHOD)")
	rankCmd.Flags().StringVar(&rankMethod, "method", "min", "ranking method: row, min, dense, percent, cume or ntile")
	rankCmd.Flags().BoolVar(&rankDesc, "desc", false, "rank the largest value first")
	rankCmd.Flags().IntVar(&rankBuckets, "buckets", 4, "number of buckets for the ntile method")
	rankCmd.MarkFlagRequired("col")
	rootCmd.AddCommand(rankCmd)
}
