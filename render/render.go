// Package render draws Frames as terminal tables.
package render

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	wrangling "github.com/jaejungca/advanced-wrangling"
)

// Conf configures rendering. A nil Conf renders every row without row names.
type Conf struct {
	MaxRows      int  // render at most this many rows. 0 means all.
	ShowRowNames bool // include a leading row-name column
}

// Table renders a Frame as a terminal table
func Table(f *wrangling.Frame, conf *Conf) (string, error) {
	if conf == nil {
		conf = &Conf{}
	}
	display := f
	truncated := 0
	if conf.MaxRows > 0 && f.NumRows() > conf.MaxRows {
		display = f.Head(conf.MaxRows)
		truncated = f.NumRows() - conf.MaxRows
	}

	header := []string{}
	if conf.ShowRowNames {
		header = append(header, "")
	}
	header = append(header, display.Schema().ColumnNames()...)
	data := pterm.TableData{header}

	types := display.Schema().ColumnTypes()
	names := display.Schema().ColumnNames()
	rowNames := display.RowNames()
	for i := 0; i < display.NumRows(); i++ {
		row := []string{}
		if conf.ShowRowNames {
			row = append(row, rowNames[i])
		}
		for j, name := range names {
			v, err := display.Row(i).Get(name)
			if err != nil {
				return "", err
			}
			if v == nil {
				row = append(row, "NA")
			} else {
				row = append(row, types[j].ToString(v))
			}
		}
		data = append(data, row)
	}

	rendered, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", err
	}
	if truncated > 0 {
		rendered += fmt.Sprintf("\n… %d more rows\n", truncated)
	}
	return rendered, nil
}

// Fprint renders a Frame as a terminal table to a write stream
func Fprint(w io.Writer, f *wrangling.Frame, conf *Conf) error {
	rendered, err := Table(f, conf)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, rendered)
	return err
}
