package setops

import (
	"testing"

	"github.com/stretchr/testify/require"

	wrangling "github.com/jaejungca/advanced-wrangling"
)

func frame(t *testing.T, xs []interface{}, ys []interface{}) *wrangling.Frame {
	f, err := wrangling.BuildFrame(
		wrangling.Col("x", &wrangling.Int64ColumnType{}, xs...),
		wrangling.Col("y", &wrangling.VarStringColumnType{}, ys...),
	)
	require.Nil(t, err)
	return f
}

func column(t *testing.T, f *wrangling.Frame, name string) []interface{} {
	values, err := f.ColumnValues(name)
	require.Nil(t, err)
	return values
}

func TestIntersect(t *testing.T) {
	a := frame(t, []interface{}{1, 2, 2, 3}, []interface{}{"a", "b", "b", "c"})
	b := frame(t, []interface{}{2, 3, 4}, []interface{}{"b", "c", "d"})
	result, err := Intersect(a, b)
	require.Nil(t, err)
	require.Equal(t, []interface{}{int64(2), int64(3)}, column(t, result, "x"))
	require.Equal(t, []interface{}{"b", "c"}, column(t, result, "y"))
}

func TestIntersectMatchesWholeRows(t *testing.T) {
	a := frame(t, []interface{}{1}, []interface{}{"a"})
	b := frame(t, []interface{}{1}, []interface{}{"other"})
	result, err := Intersect(a, b)
	require.Nil(t, err)
	require.Equal(t, 0, result.NumRows())
}

func TestUnion(t *testing.T) {
	a := frame(t, []interface{}{1, 2, 2}, []interface{}{"a", "b", "b"})
	b := frame(t, []interface{}{2, 3, 3}, []interface{}{"b", "c", "c"})
	result, err := Union(a, b)
	require.Nil(t, err)
	require.Equal(t, []interface{}{int64(1), int64(2), int64(3)}, column(t, result, "x"))
	require.Equal(t, []interface{}{"a", "b", "c"}, column(t, result, "y"))
}

func TestSetDiff(t *testing.T) {
	a := frame(t, []interface{}{1, 2, 3, 1}, []interface{}{"a", "b", "c", "a"})
	b := frame(t, []interface{}{2}, []interface{}{"b"})
	result, err := SetDiff(a, b)
	require.Nil(t, err)
	require.Equal(t, []interface{}{int64(1), int64(3)}, column(t, result, "x"))
	require.Equal(t, []interface{}{"a", "c"}, column(t, result, "y"))
}

func TestSetOpsMissingValuesMatch(t *testing.T) {
	a := frame(t, []interface{}{nil, 1}, []interface{}{"a", "b"})
	b := frame(t, []interface{}{nil}, []interface{}{"a"})
	result, err := Intersect(a, b)
	require.Nil(t, err)
	require.Equal(t, 1, result.NumRows())
	require.Equal(t, []interface{}{nil}, column(t, result, "x"))
}

func TestSetOpsSchemaMismatch(t *testing.T) {
	a := frame(t, []interface{}{1}, []interface{}{"a"})
	b, err := wrangling.BuildFrame(
		wrangling.Col("x", &wrangling.Int64ColumnType{}, 1),
	)
	require.Nil(t, err)
	_, err = Intersect(a, b)
	require.NotNil(t, err)
	_, err = Union(a, b)
	require.NotNil(t, err)
	_, err = SetDiff(a, b)
	require.NotNil(t, err)
}
