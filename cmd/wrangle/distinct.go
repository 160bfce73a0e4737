package main

import (
	"github.com/spf13/cobra"

	"github.com/jaejungca/advanced-wrangling/transform"
)

var (
	distinctBy      []string
	distinctKeepAll bool
)

var distinctCmd = &cobra.Command{
	Use:   "distinct FILE",
	Short: "Deduplicate the rows of a data file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := loadFrame(args[0])
		if err != nil {
			return err
		}
		result, err := transform.Distinct(f, distinctBy, distinctKeepAll)
		if err != nil {
			return err
		}
		return show(result)
	},
}

func init() {
	distinctCmd.Flags().StringSliceVar(&distinctBy, "by", nil, "columns to deduplicate by (defaults to all)")
	distinctCmd.Flags().BoolVar(&distinctKeepAll, "keep-all", false, "keep every column of the first occurrence")
	rootCmd.AddCommand(distinctCmd)
}
