package wrangling

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jaejungca/advanced-wrangling/errors"
)

// ColumnSpec describes a single named, typed column vector, for use with BuildFrame
type ColumnSpec struct {
	Name   string
	Type   ColumnType
	Values []interface{}
}

// Col is a convenience factory for ColumnSpecs
func Col(name string, colType ColumnType, values ...interface{}) ColumnSpec {
	return ColumnSpec{Name: name, Type: colType, Values: values}
}

// A Frame is a rectangular collection of named, typed column
// vectors, optionally labelled with row names. Cells are stored
// as interface{} values in each column type's canonical
// representation, with nil representing a missing value. Every
// column of a Frame has the same length, and operations which
// would violate that invariant fail.
type Frame struct {
	schema   *Schema
	columns  [][]interface{}
	rowNames []string
}

// CreateFrame returns an empty Frame with the given Schema
func CreateFrame(schema *Schema) *Frame {
	return &Frame{
		schema:  schema.Clone(),
		columns: make([][]interface{}, schema.NumColumns()),
	}
}

// BuildFrame constructs a Frame from column specifications, coercing
// every value to its column's type and enforcing rectangularity
func BuildFrame(cols ...ColumnSpec) (*Frame, error) {
	schema := CreateSchema()
	numRows := 0
	for i, spec := range cols {
		if _, err := schema.CreateColumn(spec.Name, spec.Type); err != nil {
			return nil, err
		}
		if i == 0 {
			numRows = len(spec.Values)
		} else if len(spec.Values) != numRows {
			return nil, errors.RaggedColumnError{Name: spec.Name, Expected: numRows, Actual: len(spec.Values)}
		}
	}
	f := CreateFrame(schema)
	for i, spec := range cols {
		values := make([]interface{}, len(spec.Values))
		for j, v := range spec.Values {
			cv, err := spec.Type.Coerce(v)
			if err != nil {
				return nil, errors.IncompatibleValueError{Name: spec.Name, Cause: err}
			}
			values[j] = cv
		}
		f.columns[i] = values
	}
	return f, nil
}

// Schema returns the Schema of this Frame. The result must not be modified.
func (f *Frame) Schema() *Schema {
	return f.schema
}

// NumRows returns the number of rows in this Frame
func (f *Frame) NumRows() int {
	if len(f.columns) == 0 {
		return 0
	}
	return len(f.columns[0])
}

// NumColumns returns the number of columns in this Frame
func (f *Frame) NumColumns() int {
	return f.schema.NumColumns()
}

// ColumnValues returns a copy of the values stored in the named column
func (f *Frame) ColumnValues(colName string) ([]interface{}, error) {
	col, err := f.schema.GetColumn(colName)
	if err != nil {
		return nil, err
	}
	values := make([]interface{}, len(f.columns[col.Index()]))
	copy(values, f.columns[col.Index()])
	return values, nil
}

// Row returns a view over the ith row of this Frame
func (f *Frame) Row(i int) Row {
	return Row{frame: f, idx: i}
}

// AppendRow adds a row of values to this Frame, coercing each value
// to its column's type. Row names, if set, gain a default label.
func (f *Frame) AppendRow(values ...interface{}) error {
	if len(values) != f.NumColumns() {
		return errors.IncompatibleRowError{Expected: f.NumColumns(), Actual: len(values)}
	}
	coerced := make([]interface{}, len(values))
	var coerceErr error
	err := f.schema.ForEachColumn(func(name string, col *Column) error {
		cv, err := col.Type().Coerce(values[col.Index()])
		if err != nil {
			coerceErr = errors.IncompatibleValueError{Name: name, Cause: err}
			return coerceErr
		}
		coerced[col.Index()] = cv
		return nil
	})
	if err != nil {
		return coerceErr
	}
	if f.rowNames != nil {
		f.rowNames = append(f.rowNames, strconv.Itoa(f.NumRows()+1))
	}
	for i := range f.columns {
		f.columns[i] = append(f.columns[i], coerced[i])
	}
	return nil
}

// WithColumn returns a new Frame with an additional column appended
func (f *Frame) WithColumn(colName string, colType ColumnType, values []interface{}) (*Frame, error) {
	if len(values) != f.NumRows() {
		return nil, errors.RaggedColumnError{Name: colName, Expected: f.NumRows(), Actual: len(values)}
	}
	result := f.Clone()
	if _, err := result.schema.CreateColumn(colName, colType); err != nil {
		return nil, err
	}
	coerced := make([]interface{}, len(values))
	for i, v := range values {
		cv, err := colType.Coerce(v)
		if err != nil {
			return nil, errors.IncompatibleValueError{Name: colName, Cause: err}
		}
		coerced[i] = cv
	}
	result.columns = append(result.columns, coerced)
	return result, nil
}

// ReplaceColumn returns a new Frame with the named column's type and values replaced
func (f *Frame) ReplaceColumn(colName string, colType ColumnType, values []interface{}) (*Frame, error) {
	col, err := f.schema.GetColumn(colName)
	if err != nil {
		return nil, err
	}
	if len(values) != f.NumRows() {
		return nil, errors.RaggedColumnError{Name: colName, Expected: f.NumRows(), Actual: len(values)}
	}
	result := f.Clone()
	result.schema.columns[colName] = &Column{col.Index(), colType}
	coerced := make([]interface{}, len(values))
	for i, v := range values {
		cv, err := colType.Coerce(v)
		if err != nil {
			return nil, errors.IncompatibleValueError{Name: colName, Cause: err}
		}
		coerced[i] = cv
	}
	result.columns[col.Index()] = coerced
	return result, nil
}

// Select returns a new Frame containing only the named columns, in the given order
func (f *Frame) Select(colNames ...string) (*Frame, error) {
	schema := CreateSchema()
	columns := make([][]interface{}, 0, len(colNames))
	for _, name := range colNames {
		col, err := f.schema.GetColumn(name)
		if err != nil {
			return nil, err
		}
		if _, err := schema.CreateColumn(name, col.Type()); err != nil {
			return nil, err
		}
		values := make([]interface{}, f.NumRows())
		copy(values, f.columns[col.Index()])
		columns = append(columns, values)
	}
	result := CreateFrame(schema)
	result.columns = columns
	if f.rowNames != nil {
		result.rowNames = append([]string{}, f.rowNames...)
	}
	return result, nil
}

// TakeRows returns a new Frame containing the rows at the given
// indices, in the given order. Row names travel with their rows.
func (f *Frame) TakeRows(indices ...int) (*Frame, error) {
	for _, idx := range indices {
		if idx < 0 || idx >= f.NumRows() {
			return nil, fmt.Errorf("row index %d is out of range for a frame with %d rows", idx, f.NumRows())
		}
	}
	result := CreateFrame(f.schema)
	for i := range f.columns {
		values := make([]interface{}, len(indices))
		for j, idx := range indices {
			values[j] = f.columns[i][idx]
		}
		result.columns[i] = values
	}
	if f.rowNames != nil {
		names := make([]string, len(indices))
		for j, idx := range indices {
			names[j] = f.rowNames[idx]
		}
		result.rowNames = names
	}
	return result, nil
}

// Head returns a new Frame containing at most the first n rows.
// A negative n yields an empty Frame.
func (f *Frame) Head(n int) *Frame {
	if n < 0 {
		n = 0
	}
	if n > f.NumRows() {
		n = f.NumRows()
	}
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	result, _ := f.TakeRows(indices...)
	return result
}

// Clone returns a copy of this Frame
func (f *Frame) Clone() *Frame {
	result := CreateFrame(f.schema)
	for i := range f.columns {
		values := make([]interface{}, len(f.columns[i]))
		copy(values, f.columns[i])
		result.columns[i] = values
	}
	if f.rowNames != nil {
		result.rowNames = append([]string{}, f.rowNames...)
	}
	return result
}

// SetRowNames labels the rows of this Frame. Names must be unique
// and match the number of rows.
func (f *Frame) SetRowNames(names []string) error {
	if len(names) != f.NumRows() {
		return errors.RowNamesLengthError{Expected: f.NumRows(), Actual: len(names)}
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			return errors.DuplicateRowNameError{Name: name}
		}
		seen[name] = true
	}
	f.rowNames = append([]string{}, names...)
	return nil
}

// HasRowNames returns true iff explicit row names have been assigned to this Frame
func (f *Frame) HasRowNames() bool {
	return f.rowNames != nil
}

// RowNames returns the row labels of this Frame. Frames without
// explicit row names are labelled by position, starting from "1".
func (f *Frame) RowNames() []string {
	if f.rowNames != nil {
		return append([]string{}, f.rowNames...)
	}
	names := make([]string, f.NumRows())
	for i := range names {
		names[i] = strconv.Itoa(i + 1)
	}
	return names
}

// ClearRowNames removes explicit row names from this Frame
func (f *Frame) ClearRowNames() {
	f.rowNames = nil
}

// ToString returns a plain-text representation of this Frame
func (f *Frame) ToString() string {
	var res strings.Builder
	fmt.Fprintf(&res, "%s\n", strings.Join(f.schema.ColumnNames(), "\t"))
	types := f.schema.ColumnTypes()
	for i := 0; i < f.NumRows(); i++ {
		cells := make([]string, f.NumColumns())
		for j := range f.columns {
			if f.columns[j][i] == nil {
				cells[j] = "NA"
			} else {
				cells[j] = types[j].ToString(f.columns[j][i])
			}
		}
		fmt.Fprintf(&res, "%s\n", strings.Join(cells, "\t"))
	}
	return res.String()
}
