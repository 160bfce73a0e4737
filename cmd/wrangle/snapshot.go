package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jaejungca/advanced-wrangling/logging"
	"github.com/jaejungca/advanced-wrangling/snapshot"
)

var snapshotOut string

var snapshotCmd = &cobra.Command{
	Use:   "snapshot FILE",
	Short: "Store a data file as a compressed binary snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := loadFrame(args[0])
		if err != nil {
			return err
		}
		out, err := os.Create(snapshotOut)
		if err != nil {
			return err
		}
		defer out.Close()
		id, err := snapshot.Write(out, f)
		if err != nil {
			return err
		}
		logging.Logger.Infow("wrote snapshot", "id", id, "file", snapshotOut, "rows", f.NumRows())
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore FILE",
	Short: "Render a frame restored from a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer in.Close()
		f, id, err := snapshot.Read(in)
		if err != nil {
			return err
		}
		logging.Logger.Debugw("restored snapshot", "id", id, "rows", f.NumRows())
		return show(f)
	},
}

func init() {
	snapshotCmd.Flags().StringVarP(&snapshotOut, "out", "o", "frame.snap", "destination file")
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(restoreCmd)
}
