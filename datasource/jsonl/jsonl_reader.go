// Package jsonl loads Frames from JSON lines data. Column names are
// treated as gjson paths, so nested values can be addressed directly
// (e.g. "meta.index"). Values which do not correspond to a Schema
// column are ignored.
package jsonl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tidwall/gjson"

	wrangling "github.com/jaejungca/advanced-wrangling"
)

// ReaderConf configures a JSONL Reader
type ReaderConf struct {
	HeaderLines   int // The number of lines to ignore from the beginning of the data. Defaults to 0.
	MaxBufferSize int // Maximum size in bytes of the buffer used to read lines. Defaults to bufio.MaxScanTokenSize.
}

// Reader produces Frames from JSONL data
type Reader struct {
	conf *ReaderConf
}

// CreateReader returns a new JSONL Reader
func CreateReader(conf *ReaderConf) *Reader {
	if conf == nil {
		conf = &ReaderConf{}
	}
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	return &Reader{conf: conf}
}

// Read parses JSONL data against a known Schema to produce a Frame
func (r *Reader) Read(in io.Reader, schema *wrangling.Schema) (*wrangling.Frame, error) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), r.conf.MaxBufferSize)
	for i := 0; i < r.conf.HeaderLines; i++ {
		scanner.Scan()
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}
	f := wrangling.CreateFrame(schema)
	names := schema.ColumnNames()
	types := schema.ColumnTypes()
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		values := make([]interface{}, len(names))
		for i, name := range names {
			v, err := parseValue(gjson.GetBytes(line, name), name, types[i])
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		if err := f.AppendRow(values...); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return f, nil
}

func parseValue(res gjson.Result, colName string, colType wrangling.ColumnType) (interface{}, error) {
	if !res.Exists() || res.Type == gjson.Null {
		return nil, nil
	}
	switch t := colType.(type) {
	case *wrangling.BoolColumnType:
		if !res.IsBool() {
			return nil, fmt.Errorf("Column %s was not a boolean. Was: %s", colName, res.Raw)
		}
		return res.Bool(), nil
	case *wrangling.Int64ColumnType:
		if res.Type != gjson.Number {
			return nil, fmt.Errorf("Column %s was not a number. Was: %s", colName, res.Raw)
		}
		return res.Int(), nil
	case *wrangling.Float64ColumnType:
		if res.Type != gjson.Number {
			return nil, fmt.Errorf("Column %s was not a number. Was: %s", colName, res.Raw)
		}
		return res.Float(), nil
	case *wrangling.TimeColumnType:
		if res.Type != gjson.String {
			return nil, fmt.Errorf("Column %s was not a datetime string. Was: %s", colName, res.Raw)
		}
		tval, err := t.Coerce(res.String())
		if err != nil {
			return nil, fmt.Errorf("Column %s could not be parsed as a datetime with format %s. Was: %s", colName, t.GetFormat(), res.Raw)
		}
		return tval, nil
	case *wrangling.VarStringColumnType:
		if res.Type != gjson.String {
			return nil, fmt.Errorf("Column %s was not a string. Was: %s", colName, res.Raw)
		}
		return res.String(), nil
	default:
		return nil, fmt.Errorf("JSONL parsing does not support column type %T", colType)
	}
}
