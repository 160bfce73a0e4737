package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	wrangling "github.com/jaejungca/advanced-wrangling"
	"github.com/jaejungca/advanced-wrangling/join"
	"github.com/jaejungca/advanced-wrangling/logging"
)

var (
	joinOn   []string
	joinType string
)

var joinCmd = &cobra.Command{
	Use:   "join LEFT RIGHT",
	Short: "Join two data files on key columns",
	Long: `Join two data files on key columns.

Keys are given with --on, either as a shared column name ("id") or as a
left=right pair ("id=customer_id") when the names differ. The join type
selects the variant: inner, left, right and full add the right file's
columns; semi and anti only filter the left file's rows; cross pairs
every row with every other and needs no keys.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		left, err := loadFrame(args[0])
		if err != nil {
			return err
		}
		right, err := loadFrame(args[1])
		if err != nil {
			return err
		}
		keys, err := parseKeys(joinOn)
		if err != nil {
			return err
		}
		var result *wrangling.Frame
		switch joinType {
		case "inner":
			result, err = join.Inner(left, right, keys, nil)
		case "left":
			result, err = join.Left(left, right, keys, nil)
		case "right":
			result, err = join.Right(left, right, keys, nil)
		case "full":
			result, err = join.Full(left, right, keys, nil)
		case "semi":
			result, err = join.Semi(left, right, keys)
		case "anti":
			result, err = join.Anti(left, right, keys)
		case "cross":
			result, err = join.Cross(left, right, nil)
		default:
			return fmt.Errorf("unknown join type %q", joinType)
		}
		if err != nil {
			return err
		}
		logging.Logger.Debugw("joined frames", "type", joinType, "rows", result.NumRows())
		return show(result)
	},
}

func parseKeys(specs []string) ([]join.Key, error) {
	var keys []join.Key
	for _, spec := range specs {
		parts := strings.SplitN(spec, "=", 2)
		switch len(parts) {
		case 1:
			keys = append(keys, join.Key{Left: parts[0], Right: parts[0]})
		case 2:
			if parts[0] == "" || parts[1] == "" {
				return nil, fmt.Errorf("invalid key specification %q", spec)
			}
			keys = append(keys, join.Key{Left: parts[0], Right: parts[1]})
		}
	}
	return keys, nil
}

func init() {
	joinCmd.Flags().StringSliceVar(&joinOn, "on", nil, "key columns, as NAME or LEFT=RIGHT")
	joinCmd.Flags().StringVar(&joinType, "type", "inner", "join type: inner, left, right, full, semi, anti or cross")
	rootCmd.AddCommand(joinCmd)
}
