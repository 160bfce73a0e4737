package wrangling

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/jaejungca/advanced-wrangling/errors"
)

// Column describes the position and type of a single named field within a Schema.
type Column struct {
	idx     int
	colType ColumnType
}

// Clone returns a copy of this Column
func (c *Column) Clone() *Column {
	return &Column{c.idx, c.colType}
}

// Index returns the index of this Column within a Schema
func (c *Column) Index() int {
	return c.idx
}

// Type returns the ColumnType of this Column
func (c *Column) Type() ColumnType {
	return c.colType
}

// Schema is an ordered mapping from column names to column
// positions and types. It allows one to look up columns by
// name, define new columns, rename columns, remove columns, etc.
type Schema struct {
	columns map[string]*Column
}

// CreateSchema is a factory for Schemas
func CreateSchema() *Schema {
	return &Schema{
		columns: make(map[string]*Column),
	}
}

// Equals returns nil iff this and another Schema are equivalent
func (s *Schema) Equals(otherSchema *Schema) error {
	if s.NumColumns() != otherSchema.NumColumns() {
		return fmt.Errorf("Schemas have unequal numbers of columns")
	}
	return s.ForEachColumn(func(name string, col *Column) error {
		otherCol, err := otherSchema.GetColumn(name)
		if err != nil {
			return err
		}
		if col.Index() != otherCol.Index() {
			return fmt.Errorf("Column %s indices do not match", name)
		}
		if reflect.TypeOf(col.Type()) != reflect.TypeOf(otherCol.Type()) {
			return fmt.Errorf("Column %s types do not match", name)
		}
		return nil
	})
}

// Clone returns a copy of this Schema
func (s *Schema) Clone() *Schema {
	newColumns := make(map[string]*Column)
	for k, v := range s.columns {
		newColumns[k] = v.Clone()
	}
	return &Schema{columns: newColumns}
}

// NumColumns returns the number of columns in this Schema
func (s *Schema) NumColumns() int {
	return len(s.columns)
}

// GetColumn returns a particular column by name, if it exists
func (s *Schema) GetColumn(colName string) (col *Column, err error) {
	col, ok := s.columns[colName]
	if !ok {
		err = errors.ColumnNotFoundError{Name: colName}
	}
	return
}

// HasColumn returns true iff this schema contains a column with the given name
func (s *Schema) HasColumn(colName string) bool {
	_, err := s.GetColumn(colName)
	return err == nil
}

// CreateColumn defines a new column within the Schema
func (s *Schema) CreateColumn(colName string, columnType ColumnType) (newSchema *Schema, err error) {
	_, containsColumn := s.columns[colName]
	if containsColumn {
		err = errors.DuplicateColumnError{Name: colName}
	} else {
		s.columns[colName] = &Column{len(s.columns), columnType}
		newSchema = s
	}
	return
}

// RenameColumn renames a column within the Schema
func (s *Schema) RenameColumn(oldName string, newName string) (newSchema *Schema, err error) {
	if _, exists := s.columns[newName]; exists && oldName != newName {
		return nil, errors.DuplicateColumnError{Name: newName}
	}
	_, err = s.GetColumn(oldName)
	if err == nil {
		s.columns[newName] = s.columns[oldName]
		delete(s.columns, oldName)
		newSchema = s
	}
	return
}

// RemoveColumn removes a column from the Schema, shifting the
// indices of all later columns down by one
func (s *Schema) RemoveColumn(colName string) (newSchema *Schema, err error) {
	col, err := s.GetColumn(colName)
	if err != nil {
		return nil, err
	}
	delete(s.columns, colName)
	for _, v := range s.columns {
		if v.idx > col.idx {
			v.idx--
		}
	}
	return s, nil
}

// ColumnNames returns the names in the schema, in index order
func (s *Schema) ColumnNames() []string {
	names := make([]string, len(s.columns))
	for k, v := range s.columns {
		names[v.Index()] = k
	}
	return names
}

// ColumnTypes returns the types in the schema, in index order
func (s *Schema) ColumnTypes() []ColumnType {
	types := make([]ColumnType, len(s.columns))
	for _, v := range s.columns {
		types[v.Index()] = v.Type()
	}
	return types
}

// ForEachColumn iterates over the columns in this Schema, in index order
func (s *Schema) ForEachColumn(fn func(name string, col *Column) error) error {
	names := make([]string, 0, len(s.columns))
	for k := range s.columns {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		return s.columns[names[i]].Index() < s.columns[names[j]].Index()
	})
	for _, k := range names {
		err := fn(k, s.columns[k])
		if err != nil {
			return err
		}
	}
	return nil
}
