package main

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	wrangling "github.com/jaejungca/advanced-wrangling"
	"github.com/jaejungca/advanced-wrangling/config"
	"github.com/jaejungca/advanced-wrangling/datasource/dsv"
	"github.com/jaejungca/advanced-wrangling/logging"
	"github.com/jaejungca/advanced-wrangling/render"
)

var (
	cfg        *config.Config
	configPath string
	flagDelim  string
	flagNil    string
	flagRows   int
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "wrangle",
	Short:         "Manipulate tabular data files",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("delimiter") {
			cfg.Delimiter = flagDelim
		}
		if cmd.Flags().Changed("nil-value") {
			cfg.NilValue = flagNil
		}
		if cmd.Flags().Changed("max-rows") {
			cfg.MaxRows = flagRows
		}
		if verbose {
			cfg.Verbose = true
		}
		return logging.Initialize(cfg.Verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath(), "path to a TOML configuration file")
	rootCmd.PersistentFlags().StringVar(&flagDelim, "delimiter", ",", "field delimiter for data files")
	rootCmd.PersistentFlags().StringVar(&flagNil, "nil-value", "", "string representing missing values")
	rootCmd.PersistentFlags().IntVar(&flagRows, "max-rows", 20, "maximum rows rendered per table (0 for all)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "wrangle.toml"
	}
	return home + "/.wrangle.toml"
}

// loadFrame reads a DSV file with named columns and inferred types
func loadFrame(path string) (*wrangling.Frame, error) {
	delim, size := utf8.DecodeRuneInString(cfg.Delimiter)
	if size == 0 || delim == utf8.RuneError {
		return nil, fmt.Errorf("invalid delimiter %q", cfg.Delimiter)
	}
	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	reader := dsv.CreateReader(&dsv.ReaderConf{
		Delimiter: delim,
		NilValue:  cfg.NilValue,
	})
	f, err := reader.ReadNamed(in)
	if err != nil {
		return nil, err
	}
	logging.Logger.Debugw("loaded frame", "file", path, "rows", f.NumRows(), "columns", f.NumColumns())
	return f, nil
}

// show renders a Frame to stdout
func show(f *wrangling.Frame) error {
	return render.Fprint(os.Stdout, f, &render.Conf{MaxRows: cfg.MaxRows, ShowRowNames: f.HasRowNames()})
}
