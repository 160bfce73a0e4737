package join

import (
	"testing"

	"github.com/stretchr/testify/require"

	wrangling "github.com/jaejungca/advanced-wrangling"
)

func members(t *testing.T) *wrangling.Frame {
	f, err := wrangling.BuildFrame(
		wrangling.Col("name", &wrangling.VarStringColumnType{}, "Mick", "John", "Paul"),
		wrangling.Col("band", &wrangling.VarStringColumnType{}, "Stones", "Beatles", "Beatles"),
	)
	require.Nil(t, err)
	return f
}

func instruments(t *testing.T) *wrangling.Frame {
	f, err := wrangling.BuildFrame(
		wrangling.Col("name", &wrangling.VarStringColumnType{}, "John", "Paul", "Keith"),
		wrangling.Col("plays", &wrangling.VarStringColumnType{}, "guitar", "bass", "guitar"),
	)
	require.Nil(t, err)
	return f
}

func column(t *testing.T, f *wrangling.Frame, name string) []interface{} {
	values, err := f.ColumnValues(name)
	require.Nil(t, err)
	return values
}

func TestInnerJoin(t *testing.T) {
	result, err := Inner(members(t), instruments(t), On("name"), nil)
	require.Nil(t, err)
	require.Equal(t, []string{"name", "band", "plays"}, result.Schema().ColumnNames())
	require.Equal(t, []interface{}{"John", "Paul"}, column(t, result, "name"))
	require.Equal(t, []interface{}{"guitar", "bass"}, column(t, result, "plays"))
}

func TestLeftJoin(t *testing.T) {
	result, err := Left(members(t), instruments(t), On("name"), nil)
	require.Nil(t, err)
	require.Equal(t, 3, result.NumRows())
	require.Equal(t, []interface{}{"Mick", "John", "Paul"}, column(t, result, "name"))
	require.Equal(t, []interface{}{nil, "guitar", "bass"}, column(t, result, "plays"))
}

func TestRightJoin(t *testing.T) {
	result, err := Right(members(t), instruments(t), On("name"), nil)
	require.Nil(t, err)
	require.Equal(t, 3, result.NumRows())
	require.Equal(t, []interface{}{"John", "Paul", "Keith"}, column(t, result, "name"))
	require.Equal(t, []interface{}{"Beatles", "Beatles", nil}, column(t, result, "band"))
	require.Equal(t, []interface{}{"guitar", "bass", "guitar"}, column(t, result, "plays"))
}

func TestFullJoin(t *testing.T) {
	result, err := Full(members(t), instruments(t), On("name"), nil)
	require.Nil(t, err)
	require.Equal(t, 4, result.NumRows())
	require.Equal(t, []interface{}{"Mick", "John", "Paul", "Keith"}, column(t, result, "name"))
	require.Equal(t, []interface{}{"Stones", "Beatles", "Beatles", nil}, column(t, result, "band"))
	require.Equal(t, []interface{}{nil, "guitar", "bass", "guitar"}, column(t, result, "plays"))
}

func TestJoinDifferentlyNamedKeys(t *testing.T) {
	artists, err := wrangling.BuildFrame(
		wrangling.Col("artist", &wrangling.VarStringColumnType{}, "John", "Keith"),
		wrangling.Col("plays", &wrangling.VarStringColumnType{}, "guitar", "guitar"),
	)
	require.Nil(t, err)
	result, err := Inner(members(t), artists, []Key{{Left: "name", Right: "artist"}}, nil)
	require.Nil(t, err)
	// the key appears once, under the left frame's name
	require.Equal(t, []string{"name", "band", "plays"}, result.Schema().ColumnNames())
	require.Equal(t, []interface{}{"John"}, column(t, result, "name"))
}

func TestJoinDuplicateKeysMultiply(t *testing.T) {
	left, err := wrangling.BuildFrame(
		wrangling.Col("k", &wrangling.Int64ColumnType{}, 1, 1, 2),
		wrangling.Col("l", &wrangling.VarStringColumnType{}, "a", "b", "c"),
	)
	require.Nil(t, err)
	right, err := wrangling.BuildFrame(
		wrangling.Col("k", &wrangling.Int64ColumnType{}, 1, 1, 3),
		wrangling.Col("r", &wrangling.VarStringColumnType{}, "x", "y", "z"),
	)
	require.Nil(t, err)
	result, err := Inner(left, right, On("k"), nil)
	require.Nil(t, err)
	// two left rows times two right rows for key 1
	require.Equal(t, 4, result.NumRows())
	require.Equal(t, []interface{}{"a", "a", "b", "b"}, column(t, result, "l"))
	require.Equal(t, []interface{}{"x", "y", "x", "y"}, column(t, result, "r"))
}

func TestJoinCollidingColumnNames(t *testing.T) {
	left, err := wrangling.BuildFrame(
		wrangling.Col("k", &wrangling.Int64ColumnType{}, 1),
		wrangling.Col("v", &wrangling.Int64ColumnType{}, 10),
	)
	require.Nil(t, err)
	right, err := wrangling.BuildFrame(
		wrangling.Col("k", &wrangling.Int64ColumnType{}, 1),
		wrangling.Col("v", &wrangling.Int64ColumnType{}, 20),
	)
	require.Nil(t, err)
	result, err := Inner(left, right, On("k"), nil)
	require.Nil(t, err)
	require.Equal(t, []string{"k", "v_x", "v_y"}, result.Schema().ColumnNames())
	require.Equal(t, []interface{}{int64(10)}, column(t, result, "v_x"))
	require.Equal(t, []interface{}{int64(20)}, column(t, result, "v_y"))
}

func TestJoinCustomSuffixes(t *testing.T) {
	left, err := wrangling.BuildFrame(
		wrangling.Col("k", &wrangling.Int64ColumnType{}, 1),
		wrangling.Col("v", &wrangling.Int64ColumnType{}, 10),
	)
	require.Nil(t, err)
	right, err := wrangling.BuildFrame(
		wrangling.Col("k", &wrangling.Int64ColumnType{}, 1),
		wrangling.Col("v", &wrangling.Int64ColumnType{}, 20),
	)
	require.Nil(t, err)
	result, err := Inner(left, right, On("k"), &Conf{Suffixes: [2]string{"_left", "_right"}})
	require.Nil(t, err)
	require.Equal(t, []string{"k", "v_left", "v_right"}, result.Schema().ColumnNames())
}

func TestJoinNoKeys(t *testing.T) {
	_, err := Inner(members(t), instruments(t), nil, nil)
	require.NotNil(t, err)
}

func TestJoinUnknownKeyColumn(t *testing.T) {
	_, err := Inner(members(t), instruments(t), On("nope"), nil)
	require.NotNil(t, err)
}

func TestSemiJoin(t *testing.T) {
	result, err := Semi(members(t), instruments(t), On("name"))
	require.Nil(t, err)
	require.Equal(t, []string{"name", "band"}, result.Schema().ColumnNames())
	require.Equal(t, []interface{}{"John", "Paul"}, column(t, result, "name"))
}

func TestSemiJoinNeverDuplicates(t *testing.T) {
	right, err := wrangling.BuildFrame(
		wrangling.Col("name", &wrangling.VarStringColumnType{}, "John", "John"),
	)
	require.Nil(t, err)
	result, err := Semi(members(t), right, On("name"))
	require.Nil(t, err)
	require.Equal(t, 1, result.NumRows())
}

func TestAntiJoin(t *testing.T) {
	result, err := Anti(members(t), instruments(t), On("name"))
	require.Nil(t, err)
	require.Equal(t, []interface{}{"Mick"}, column(t, result, "name"))
}

func TestCrossJoin(t *testing.T) {
	result, err := Cross(members(t), instruments(t), nil)
	require.Nil(t, err)
	require.Equal(t, 9, result.NumRows())
	require.Equal(t, []string{"name_x", "band", "name_y", "plays"}, result.Schema().ColumnNames())
}
