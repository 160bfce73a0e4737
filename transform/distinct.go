package transform

import (
	wrangling "github.com/jaejungca/advanced-wrangling"
	"github.com/jaejungca/advanced-wrangling/internal/rowkey"
)

// Distinct deduplicates the rows of a Frame by the values of the chosen
// column subset, keeping the first occurrence of each combination in
// order of appearance. An empty subset means every column. When keepAll
// is true the result retains every column of the surviving rows;
// otherwise it is restricted to the subset.
func Distinct(f *wrangling.Frame, colNames []string, keepAll bool) (*wrangling.Frame, error) {
	if len(colNames) == 0 {
		colNames = f.Schema().ColumnNames()
		keepAll = true
	}
	for _, name := range colNames {
		if _, err := f.Schema().GetColumn(name); err != nil {
			return nil, err
		}
	}
	seen := make(map[uint64][]int)
	var indices []int
	for i := 0; i < f.NumRows(); i++ {
		hash, err := rowkey.Hash(f.Row(i), colNames)
		if err != nil {
			return nil, err
		}
		duplicate := false
		for _, prev := range seen[hash] {
			ok, err := rowkey.Matches(f.Row(prev), colNames, f.Row(i), colNames)
			if err != nil {
				return nil, err
			}
			if ok {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}
		seen[hash] = append(seen[hash], i)
		indices = append(indices, i)
	}
	result, err := f.TakeRows(indices...)
	if err != nil {
		return nil, err
	}
	if !keepAll {
		return result.Select(colNames...)
	}
	return result, nil
}
