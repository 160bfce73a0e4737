package dsv

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	wrangling "github.com/jaejungca/advanced-wrangling"
)

// WriterConf configures a DSV Writer
type WriterConf struct {
	Delimiter rune   // The delimiter separating columns in the output. Defaults to ,
	NilValue  string // The string written for missing values. Defaults to "" (the empty string).
	Header    bool   // Whether to write column names as the first record
}

// Writer renders Frames as DSV data
type Writer struct {
	conf *WriterConf
}

// CreateWriter returns a new DSV Writer
func CreateWriter(conf *WriterConf) *Writer {
	if conf == nil {
		conf = &WriterConf{Header: true}
	}
	if conf.Delimiter == 0 {
		conf.Delimiter = ','
	}
	return &Writer{conf: conf}
}

// Write renders a Frame to a write stream
func (w *Writer) Write(out io.Writer, f *wrangling.Frame) error {
	writer := csv.NewWriter(out)
	writer.Comma = w.conf.Delimiter
	names := f.Schema().ColumnNames()
	types := f.Schema().ColumnTypes()
	if w.conf.Header {
		if err := writer.Write(names); err != nil {
			return err
		}
	}
	record := make([]string, len(names))
	for i := 0; i < f.NumRows(); i++ {
		for j, name := range names {
			v, err := f.Row(i).Get(name)
			if err != nil {
				return err
			}
			record[j] = w.renderField(v, types[j])
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// renderField produces the raw field text, without the quoting
// ColumnType.ToString applies for display
func (w *Writer) renderField(v interface{}, colType wrangling.ColumnType) string {
	switch t := v.(type) {
	case nil:
		return w.conf.NilValue
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case time.Time:
		return colType.ToString(t)
	default:
		return colType.ToString(t)
	}
}
