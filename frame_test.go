package wrangling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBuildFrame(t *testing.T) {
	f, err := BuildFrame(
		Col("name", &VarStringColumnType{}, "Mick", "John", "Paul"),
		Col("born", &Int64ColumnType{}, 1943, 1940, 1942),
		Col("height", &Float64ColumnType{}, 1.79, nil, 1.8),
	)
	require.Nil(t, err)
	require.Equal(t, 3, f.NumRows())
	require.Equal(t, 3, f.NumColumns())
	require.Equal(t, []string{"name", "born", "height"}, f.Schema().ColumnNames())

	born, err := f.ColumnValues("born")
	require.Nil(t, err)
	require.Equal(t, []interface{}{int64(1943), int64(1940), int64(1942)}, born)

	height, err := f.ColumnValues("height")
	require.Nil(t, err)
	require.Nil(t, height[1])
}

func TestBuildFrameRaggedColumn(t *testing.T) {
	_, err := BuildFrame(
		Col("a", &Int64ColumnType{}, 1, 2, 3),
		Col("b", &Int64ColumnType{}, 1, 2),
	)
	require.NotNil(t, err)
}

func TestBuildFrameIncompatibleValue(t *testing.T) {
	_, err := BuildFrame(
		Col("a", &Int64ColumnType{}, 1, "two", 3),
	)
	require.NotNil(t, err)
}

func TestFrameAppendRow(t *testing.T) {
	f, err := BuildFrame(
		Col("a", &Int64ColumnType{}, 1, 2),
		Col("b", &VarStringColumnType{}, "x", "y"),
	)
	require.Nil(t, err)

	require.Nil(t, f.AppendRow(3, "z"))
	require.Equal(t, 3, f.NumRows())
	v, err := f.Row(2).GetInt64("a")
	require.Nil(t, err)
	require.Equal(t, int64(3), v)

	require.NotNil(t, f.AppendRow(4))
	require.NotNil(t, f.AppendRow("four", "w"))
}

func TestFrameWithColumn(t *testing.T) {
	f, err := BuildFrame(
		Col("a", &Int64ColumnType{}, 1, 2),
	)
	require.Nil(t, err)

	g, err := f.WithColumn("b", &Float64ColumnType{}, []interface{}{1.5, nil})
	require.Nil(t, err)
	require.Equal(t, 2, g.NumColumns())
	require.Equal(t, 1, f.NumColumns())

	_, err = f.WithColumn("a", &Float64ColumnType{}, []interface{}{1.5, 2.5})
	require.NotNil(t, err)
	_, err = f.WithColumn("c", &Float64ColumnType{}, []interface{}{1.5})
	require.NotNil(t, err)
}

func TestFrameReplaceColumn(t *testing.T) {
	f, err := BuildFrame(
		Col("a", &Int64ColumnType{}, 1, 2),
		Col("b", &Int64ColumnType{}, 10, 20),
	)
	require.Nil(t, err)

	g, err := f.ReplaceColumn("a", &Float64ColumnType{}, []interface{}{0.1, 0.2})
	require.Nil(t, err)
	v, err := g.Row(0).GetFloat64("a")
	require.Nil(t, err)
	require.Equal(t, 0.1, v)
	// original untouched
	orig, err := f.Row(0).GetInt64("a")
	require.Nil(t, err)
	require.Equal(t, int64(1), orig)
}

func TestFrameSelectAndTakeRows(t *testing.T) {
	f, err := BuildFrame(
		Col("a", &Int64ColumnType{}, 1, 2, 3),
		Col("b", &VarStringColumnType{}, "x", "y", "z"),
	)
	require.Nil(t, err)

	g, err := f.Select("b")
	require.Nil(t, err)
	require.Equal(t, []string{"b"}, g.Schema().ColumnNames())
	require.Equal(t, 3, g.NumRows())

	h, err := f.TakeRows(2, 0)
	require.Nil(t, err)
	require.Equal(t, 2, h.NumRows())
	v, err := h.Row(0).GetVarString("b")
	require.Nil(t, err)
	require.Equal(t, "z", v)

	_, err = f.TakeRows(5)
	require.NotNil(t, err)
}

func TestFrameRowNames(t *testing.T) {
	f, err := BuildFrame(
		Col("mpg", &Float64ColumnType{}, 21.0, 22.8),
	)
	require.Nil(t, err)
	require.False(t, f.HasRowNames())
	require.Equal(t, []string{"1", "2"}, f.RowNames())

	require.NotNil(t, f.SetRowNames([]string{"Mazda RX4"}))
	require.NotNil(t, f.SetRowNames([]string{"Mazda RX4", "Mazda RX4"}))
	require.Nil(t, f.SetRowNames([]string{"Mazda RX4", "Datsun 710"}))
	require.True(t, f.HasRowNames())

	g, err := f.TakeRows(1)
	require.Nil(t, err)
	require.Equal(t, []string{"Datsun 710"}, g.RowNames())
}

func TestRowAccessors(t *testing.T) {
	birthday := time.Date(1962, 6, 20, 0, 0, 0, 0, time.UTC)
	f, err := BuildFrame(
		Col("name", &VarStringColumnType{}, "Viv", nil),
		Col("joined", &TimeColumnType{}, birthday, "1980-01-01"),
		Col("active", &BoolColumnType{}, true, false),
	)
	require.Nil(t, err)

	row := f.Row(0)
	name, err := row.GetVarString("name")
	require.Nil(t, err)
	require.Equal(t, "Viv", name)
	joined, err := row.GetTime("joined")
	require.Nil(t, err)
	require.Equal(t, birthday, joined)
	active, err := row.GetBool("active")
	require.Nil(t, err)
	require.True(t, active)

	require.True(t, f.Row(1).IsNil("name"))
	_, err = f.Row(1).GetVarString("name")
	require.NotNil(t, err)

	parsed, err := f.Row(1).GetTime("joined")
	require.Nil(t, err)
	require.Equal(t, 1980, parsed.Year())

	require.Nil(t, row.Set("name", "Vivian"))
	name, err = row.GetVarString("name")
	require.Nil(t, err)
	require.Equal(t, "Vivian", name)
	require.NotNil(t, row.Set("active", "yes"))
}

func TestFrameHeadAndClone(t *testing.T) {
	f, err := BuildFrame(
		Col("a", &Int64ColumnType{}, 1, 2, 3, 4),
	)
	require.Nil(t, err)
	require.Equal(t, 2, f.Head(2).NumRows())
	require.Equal(t, 4, f.Head(10).NumRows())
	require.Equal(t, 0, f.Head(0).NumRows())
	require.Equal(t, 0, f.Head(-1).NumRows())

	g := f.Clone()
	require.Nil(t, g.AppendRow(5))
	require.Equal(t, 4, f.NumRows())
	require.Equal(t, 5, g.NumRows())
}
