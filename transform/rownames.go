package transform

import (
	wrangling "github.com/jaejungca/advanced-wrangling"
)

// RowNamesToColumn converts a Frame's implicit row identifiers into an
// explicit leading string column. Frames without assigned row names
// contribute their positional labels ("1", "2", ...). The result
// carries no row names.
func RowNamesToColumn(f *wrangling.Frame, as string) (*wrangling.Frame, error) {
	names := f.RowNames()
	specs := []wrangling.ColumnSpec{
		wrangling.Col(as, &wrangling.VarStringColumnType{}, asValues(names)...),
	}
	err := f.Schema().ForEachColumn(func(name string, col *wrangling.Column) error {
		values, err := f.ColumnValues(name)
		if err != nil {
			return err
		}
		specs = append(specs, wrangling.ColumnSpec{Name: name, Type: col.Type(), Values: values})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return wrangling.BuildFrame(specs...)
}

// ColumnToRowNames converts an explicit string column into the Frame's
// row names, removing the column. Values must be unique.
func ColumnToRowNames(f *wrangling.Frame, colName string) (*wrangling.Frame, error) {
	names := make([]string, f.NumRows())
	for i := range names {
		name, err := f.Row(i).GetVarString(colName)
		if err != nil {
			return nil, err
		}
		names[i] = name
	}
	remaining := make([]string, 0, f.NumColumns()-1)
	for _, name := range f.Schema().ColumnNames() {
		if name != colName {
			remaining = append(remaining, name)
		}
	}
	result, err := f.Select(remaining...)
	if err != nil {
		return nil, err
	}
	if err := result.SetRowNames(names); err != nil {
		return nil, err
	}
	return result, nil
}

func asValues(names []string) []interface{} {
	values := make([]interface{}, len(names))
	for i, name := range names {
		values[i] = name
	}
	return values
}
