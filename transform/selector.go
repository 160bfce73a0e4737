package transform

import (
	wrangling "github.com/jaejungca/advanced-wrangling"
)

// A Selector chooses a subset of a Frame's columns by name and type
type Selector func(name string, colType wrangling.ColumnType) bool

// Columns selects the named columns
func Columns(colNames ...string) Selector {
	names := make(map[string]bool, len(colNames))
	for _, name := range colNames {
		names[name] = true
	}
	return func(name string, colType wrangling.ColumnType) bool {
		return names[name]
	}
}

// Numeric selects every numeric column
func Numeric() Selector {
	return func(name string, colType wrangling.ColumnType) bool {
		return wrangling.IsNumericType(colType)
	}
}

// All selects every column
func All() Selector {
	return func(name string, colType wrangling.ColumnType) bool {
		return true
	}
}

// selected returns the chosen column names in schema order
func selected(f *wrangling.Frame, sel Selector) []string {
	var names []string
	f.Schema().ForEachColumn(func(name string, col *wrangling.Column) error {
		if sel(name, col.Type()) {
			names = append(names, name)
		}
		return nil
	})
	return names
}
