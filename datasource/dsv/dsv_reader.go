// Package dsv loads Frames from delimiter-separated values data, and
// writes them back out.
package dsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	wrangling "github.com/jaejungca/advanced-wrangling"
	"github.com/jaejungca/advanced-wrangling/errors"
)

// ReaderConf configures a DSV Reader
type ReaderConf struct {
	Delimiter   rune   // The delimiter separating columns in the data. Defaults to ,
	HeaderLines int    // The number of lines to ignore from the beginning of the data. Defaults to 0.
	Comment     rune   // Lines beginning with the comment character are ignored. Cannot be equal to the Delimiter. Defaults to no comment character.
	NilValue    string // A special string which represents missing values in the dataset. Defaults to "" (the empty string).
}

// Reader produces Frames from DSV data
type Reader struct {
	conf *ReaderConf
}

// CreateReader returns a new DSV Reader
func CreateReader(conf *ReaderConf) *Reader {
	if conf == nil {
		conf = &ReaderConf{}
	}
	if conf.Delimiter == 0 {
		conf.Delimiter = ','
	}
	return &Reader{conf: conf}
}

// Read parses DSV data against a known Schema to produce a Frame
func (r *Reader) Read(in io.Reader, schema *wrangling.Schema) (*wrangling.Frame, error) {
	reader := r.csvReader(in, schema.NumColumns())
	for i := 0; i < r.conf.HeaderLines; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}
	f := wrangling.CreateFrame(schema)
	types := schema.ColumnTypes()
	names := schema.ColumnNames()
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		values := make([]interface{}, len(record))
		for i, field := range record {
			v, err := r.parseField(field, names[i], types[i])
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		if err := f.AppendRow(values...); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// ReadNamed parses DSV data whose first record holds column names,
// inferring a column type for each column from its values
func (r *Reader) ReadNamed(in io.Reader) (*wrangling.Frame, error) {
	reader := r.csvReader(in, 0)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) <= r.conf.HeaderLines {
		return nil, fmt.Errorf("data contains no column names")
	}
	records = records[r.conf.HeaderLines:]
	names := records[0]
	rows := records[1:]
	specs := make([]wrangling.ColumnSpec, len(names))
	for i, name := range names {
		fields := make([]string, len(rows))
		for j, row := range rows {
			fields[j] = row[i]
		}
		colType := r.inferType(fields)
		values := make([]interface{}, len(fields))
		for j, field := range fields {
			v, err := r.parseField(field, name, colType)
			if err != nil {
				return nil, err
			}
			values[j] = v
		}
		specs[i] = wrangling.ColumnSpec{Name: name, Type: colType, Values: values}
	}
	return wrangling.BuildFrame(specs...)
}

func (r *Reader) csvReader(in io.Reader, fieldsPerRecord int) *csv.Reader {
	reader := csv.NewReader(in)
	reader.Comma = r.conf.Delimiter
	reader.Comment = r.conf.Comment
	reader.FieldsPerRecord = fieldsPerRecord
	return reader
}

func (r *Reader) parseField(field string, colName string, colType wrangling.ColumnType) (interface{}, error) {
	if field == r.conf.NilValue {
		return nil, nil
	}
	switch t := colType.(type) {
	case *wrangling.BoolColumnType:
		bval, err := strconv.ParseBool(field)
		if err != nil {
			return nil, errors.IncompatibleValueError{Name: colName, Cause: err}
		}
		return bval, nil
	case *wrangling.Int64ColumnType:
		nval, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, errors.IncompatibleValueError{Name: colName, Cause: err}
		}
		return nval, nil
	case *wrangling.Float64ColumnType:
		nval, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.IncompatibleValueError{Name: colName, Cause: err}
		}
		return nval, nil
	case *wrangling.TimeColumnType:
		tval, err := t.Coerce(field)
		if err != nil {
			return nil, errors.IncompatibleValueError{Name: colName, Cause: err}
		}
		return tval, nil
	case *wrangling.VarStringColumnType:
		return field, nil
	default:
		return nil, fmt.Errorf("DSV parsing does not support column type %T", colType)
	}
}

// inferType picks the narrowest column type which accepts every
// non-missing field: int64, then float64, then bool, then datetime,
// falling back to string
func (r *Reader) inferType(fields []string) wrangling.ColumnType {
	timeType := &wrangling.TimeColumnType{}
	isInt, isFloat, isBool, isTime := true, true, true, true
	sawValue := false
	for _, field := range fields {
		if field == r.conf.NilValue {
			continue
		}
		sawValue = true
		if _, err := strconv.ParseInt(field, 10, 64); err != nil {
			isInt = false
		}
		if _, err := strconv.ParseFloat(field, 64); err != nil {
			isFloat = false
		}
		if _, err := strconv.ParseBool(field); err != nil {
			isBool = false
		}
		if _, err := timeType.Coerce(field); err != nil {
			isTime = false
		}
	}
	if !sawValue {
		return &wrangling.VarStringColumnType{}
	}
	switch {
	case isInt:
		return &wrangling.Int64ColumnType{}
	case isFloat:
		return &wrangling.Float64ColumnType{}
	case isBool:
		return &wrangling.BoolColumnType{}
	case isTime:
		return timeType
	default:
		return &wrangling.VarStringColumnType{}
	}
}
