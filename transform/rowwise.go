package transform

import (
	wrangling "github.com/jaejungca/advanced-wrangling"
	"github.com/jaejungca/advanced-wrangling/accumulators"
)

// RowwiseSummarize treats each row as an independent one-row group,
// folding a fresh Accumulator over the row's cells in the columns
// chosen by sel and appending the results as a new column
func RowwiseSummarize(f *wrangling.Frame, sel Selector, facc accumulators.Factory, as string, colType wrangling.ColumnType) (*wrangling.Frame, error) {
	colNames := selected(f, sel)
	out := make([]interface{}, f.NumRows())
	for i := 0; i < f.NumRows(); i++ {
		acc := facc()
		for _, name := range colNames {
			v, err := f.Row(i).Get(name)
			if err != nil {
				return nil, err
			}
			if err := acc.Accumulate(v); err != nil {
				return nil, err
			}
		}
		out[i] = acc.Value()
	}
	return f.WithColumn(as, colType, out)
}
