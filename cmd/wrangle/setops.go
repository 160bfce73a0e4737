package main

import (
	"fmt"

	"github.com/spf13/cobra"

	wrangling "github.com/jaejungca/advanced-wrangling"
	"github.com/jaejungca/advanced-wrangling/setops"
)

var setopsCmd = &cobra.Command{
	Use:   "setops {intersect|union|setdiff} LEFT RIGHT",
	Short: "Combine the rows of two same-shaped data files as sets",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		left, err := loadFrame(args[1])
		if err != nil {
			return err
		}
		right, err := loadFrame(args[2])
		if err != nil {
			return err
		}
		var result *wrangling.Frame
		switch args[0] {
		case "intersect":
			result, err = setops.Intersect(left, right)
		case "union":
			result, err = setops.Union(left, right)
		case "setdiff":
			result, err = setops.SetDiff(left, right)
		default:
			return fmt.Errorf("unknown set operation %q", args[0])
		}
		if err != nil {
			return err
		}
		return show(result)
	},
}

func init() {
	rootCmd.AddCommand(setopsCmd)
}
