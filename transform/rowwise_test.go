package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	wrangling "github.com/jaejungca/advanced-wrangling"
	"github.com/jaejungca/advanced-wrangling/accumulators"
)

func TestRowwiseSum(t *testing.T) {
	result, err := RowwiseSummarize(scores(t), Numeric(), accumulators.Adder(), "total", &wrangling.Float64ColumnType{})
	require.Nil(t, err)
	// missing cells are skipped, not poisoned
	require.Equal(t, []interface{}{150.0, 90.0, 110.0}, column(t, result, "total"))
}

func TestRowwiseMean(t *testing.T) {
	result, err := RowwiseSummarize(scores(t), Numeric(), accumulators.Meaner(), "mean", &wrangling.Float64ColumnType{})
	require.Nil(t, err)
	require.Equal(t, []interface{}{75.0, 90.0, 55.0}, column(t, result, "mean"))
}

func TestRowwiseMax(t *testing.T) {
	result, err := RowwiseSummarize(scores(t), Numeric(), accumulators.Maximizer(), "best", &wrangling.Float64ColumnType{})
	require.Nil(t, err)
	require.Equal(t, []interface{}{80.0, 90.0, 60.0}, column(t, result, "best"))
}

func TestRowwiseAllMissing(t *testing.T) {
	f, err := wrangling.BuildFrame(
		wrangling.Col("a", &wrangling.Float64ColumnType{}, nil),
		wrangling.Col("b", &wrangling.Float64ColumnType{}, nil),
	)
	require.Nil(t, err)
	result, err := RowwiseSummarize(f, Numeric(), accumulators.Adder(), "total", &wrangling.Float64ColumnType{})
	require.Nil(t, err)
	require.Equal(t, []interface{}{nil}, column(t, result, "total"))
}

func TestRowwiseCountIncludesMissing(t *testing.T) {
	result, err := RowwiseSummarize(scores(t), Numeric(), accumulators.Counter(), "n", &wrangling.Int64ColumnType{})
	require.Nil(t, err)
	require.Equal(t, []interface{}{int64(2), int64(2), int64(2)}, column(t, result, "n"))
}
