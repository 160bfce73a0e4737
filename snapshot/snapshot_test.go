package snapshot

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	wrangling "github.com/jaejungca/advanced-wrangling"
)

func TestRoundTrip(t *testing.T) {
	day, err := time.Parse("2006-01-02", "2021-06-01")
	require.Nil(t, err)
	f, err := wrangling.BuildFrame(
		wrangling.Col("name", &wrangling.VarStringColumnType{}, "ann", "bob"),
		wrangling.Col("age", &wrangling.Int64ColumnType{}, 32, nil),
		wrangling.Col("height", &wrangling.Float64ColumnType{}, 1.62, 1.85),
		wrangling.Col("active", &wrangling.BoolColumnType{}, true, false),
		wrangling.Col("since", &wrangling.TimeColumnType{}, day, nil),
	)
	require.Nil(t, err)

	var buff bytes.Buffer
	id, err := Write(&buff, f)
	require.Nil(t, err)
	require.NotEqual(t, "", id)

	restored, restoredID, err := Read(&buff)
	require.Nil(t, err)
	require.Equal(t, id, restoredID)
	require.Nil(t, f.Schema().Equals(restored.Schema()))
	require.Equal(t, f.ToString(), restored.ToString())

	age, err := restored.ColumnValues("age")
	require.Nil(t, err)
	require.Equal(t, []interface{}{int64(32), nil}, age)
	since, err := restored.Row(0).GetTime("since")
	require.Nil(t, err)
	require.True(t, day.Equal(since))
}

func TestRoundTripRowNames(t *testing.T) {
	f, err := wrangling.BuildFrame(
		wrangling.Col("x", &wrangling.Int64ColumnType{}, 1, 2),
	)
	require.Nil(t, err)
	require.Nil(t, f.SetRowNames([]string{"first", "second"}))

	var buff bytes.Buffer
	_, err = Write(&buff, f)
	require.Nil(t, err)
	restored, _, err := Read(&buff)
	require.Nil(t, err)
	require.True(t, restored.HasRowNames())
	require.Equal(t, []string{"first", "second"}, restored.RowNames())
}

func TestRoundTripTimeFormat(t *testing.T) {
	format := "02/01/2006"
	day, err := time.Parse(format, "01/06/2021")
	require.Nil(t, err)
	f, err := wrangling.BuildFrame(
		wrangling.Col("day", &wrangling.TimeColumnType{Format: format}, day),
	)
	require.Nil(t, err)

	var buff bytes.Buffer
	_, err = Write(&buff, f)
	require.Nil(t, err)
	restored, _, err := Read(&buff)
	require.Nil(t, err)
	col, err := restored.Schema().GetColumn("day")
	require.Nil(t, err)
	timeType, ok := col.Type().(*wrangling.TimeColumnType)
	require.True(t, ok)
	require.Equal(t, format, timeType.GetFormat())
}

func TestReadGarbage(t *testing.T) {
	_, _, err := Read(bytes.NewReader([]byte("definitely not a snapshot")))
	require.NotNil(t, err)
}
