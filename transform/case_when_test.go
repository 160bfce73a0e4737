package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	wrangling "github.com/jaejungca/advanced-wrangling"
)

func scoreAbove(threshold float64) func(wrangling.Row) (bool, error) {
	return func(row wrangling.Row) (bool, error) {
		if row.IsNil("english") {
			return false, nil
		}
		v, err := row.GetFloat64("english")
		if err != nil {
			return false, err
		}
		return v >= threshold, nil
	}
}

func TestCaseWhenFirstMatchWins(t *testing.T) {
	result, err := CaseWhen(scores(t), "grade", &wrangling.VarStringColumnType{}, []When{
		{Cond: scoreAbove(90), Value: "A"},
		{Cond: scoreAbove(70), Value: "B"},
		{Cond: scoreAbove(50), Value: "C"},
	}, "F")
	require.Nil(t, err)
	// english is 70, 90, 50
	require.Equal(t, []interface{}{"B", "A", "C"}, column(t, result, "grade"))
}

func TestCaseWhenFallback(t *testing.T) {
	result, err := CaseWhen(scores(t), "grade", &wrangling.VarStringColumnType{}, []When{
		{Cond: scoreAbove(95), Value: "A"},
	}, "other")
	require.Nil(t, err)
	require.Equal(t, []interface{}{"other", "other", "other"}, column(t, result, "grade"))
}

func TestCaseWhenNilFallback(t *testing.T) {
	result, err := CaseWhen(scores(t), "grade", &wrangling.VarStringColumnType{}, []When{
		{Cond: scoreAbove(90), Value: "A"},
	}, nil)
	require.Nil(t, err)
	require.Equal(t, []interface{}{nil, "A", nil}, column(t, result, "grade"))
}

func TestCaseWhenComputedBranch(t *testing.T) {
	result, err := CaseWhen(scores(t), "label", &wrangling.VarStringColumnType{}, []When{
		{
			Cond: scoreAbove(0),
			Compute: func(row wrangling.Row) (interface{}, error) {
				return row.GetVarString("name")
			},
		},
	}, "unknown")
	require.Nil(t, err)
	require.Equal(t, []interface{}{"ann", "bob", "cat"}, column(t, result, "label"))
}

func TestCaseWhenNoBranches(t *testing.T) {
	_, err := CaseWhen(scores(t), "grade", &wrangling.VarStringColumnType{}, nil, "F")
	require.NotNil(t, err)
}

func TestCaseWhenRecoversPanics(t *testing.T) {
	_, err := CaseWhen(scores(t), "grade", &wrangling.VarStringColumnType{}, []When{
		{Cond: func(row wrangling.Row) (bool, error) { panic("bad predicate") }, Value: "A"},
	}, "F")
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "bad predicate")
}
