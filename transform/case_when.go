package transform

import (
	wrangling "github.com/jaejungca/advanced-wrangling"
	"github.com/jaejungca/advanced-wrangling/errors"
	"github.com/jaejungca/advanced-wrangling/internal/util"
)

// A When is one branch of a conditional value construction. Cond is
// evaluated against each row; the first matching branch supplies the
// row's value, either as the constant Value or by calling Compute.
type When struct {
	Cond    func(wrangling.Row) (bool, error)
	Value   interface{}
	Compute func(wrangling.Row) (interface{}, error)
}

// CaseWhen appends a column whose value for each row comes from the
// first branch whose condition matches, evaluated strictly in order.
// Rows matching no branch receive the fallback value, which must be
// supplied explicitly (and may be nil to mean missing).
func CaseWhen(f *wrangling.Frame, as string, colType wrangling.ColumnType, whens []When, fallback interface{}) (*wrangling.Frame, error) {
	if len(whens) == 0 {
		return nil, errors.EmptyCaseError{}
	}
	conds := make([]func(wrangling.Row) (bool, error), len(whens))
	computes := make([]func(wrangling.Row) (interface{}, error), len(whens))
	for i, w := range whens {
		conds[i] = util.SafePredicateOperation(w.Cond)
		if w.Compute != nil {
			computes[i] = util.SafeComputeOperation(w.Compute)
		}
	}
	out := make([]interface{}, f.NumRows())
	for i := 0; i < f.NumRows(); i++ {
		row := f.Row(i)
		value := fallback
		for b := range whens {
			matched, err := conds[b](row)
			if err != nil {
				return nil, err
			}
			if !matched {
				continue
			}
			if computes[b] != nil {
				value, err = computes[b](row)
				if err != nil {
					return nil, err
				}
			} else {
				value = whens[b].Value
			}
			break
		}
		out[i] = value
	}
	return f.WithColumn(as, colType, out)
}
