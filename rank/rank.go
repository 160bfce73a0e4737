// Package rank computes window-style rankings over a numeric column of a
// Frame: ordinal row numbers, ranks under two tie policies, proportional
// ranks, and assignment into near-equal ordered buckets.
package rank

import (
	"sort"

	wrangling "github.com/jaejungca/advanced-wrangling"
	"github.com/jaejungca/advanced-wrangling/errors"
)

// Conf configures ranking. A nil Conf ranks in ascending order.
type Conf struct {
	Descending bool // rank the largest value first
}

func (c *Conf) descending() bool {
	return c != nil && c.Descending
}

// ordering captures the sort order of the present (non-missing) values
// of a column. Missing values take no part in ranking.
type ordering struct {
	vals    []float64 // coerced cell values, by row
	present []bool    // whether the row holds a value, by row
	sorted  []int     // row indices of present values, in rank order
	pos     []int     // 1-based position of each row within sorted, or 0 if missing
	np      int       // number of present values
}

func orderColumn(f *wrangling.Frame, colName string, conf *Conf) (*ordering, error) {
	n := f.NumRows()
	o := &ordering{
		vals:    make([]float64, n),
		present: make([]bool, n),
		pos:     make([]int, n),
	}
	for i := 0; i < n; i++ {
		v, err := f.Row(i).Get(colName)
		if err != nil {
			return nil, err
		}
		if v == nil {
			continue
		}
		fv, err := wrangling.AsFloat64(v)
		if err != nil {
			return nil, errors.IncompatibleValueError{Name: colName, Cause: err}
		}
		o.vals[i] = fv
		o.present[i] = true
		o.sorted = append(o.sorted, i)
		o.np++
	}
	sort.SliceStable(o.sorted, func(a, b int) bool {
		if conf.descending() {
			return o.vals[o.sorted[a]] > o.vals[o.sorted[b]]
		}
		return o.vals[o.sorted[a]] < o.vals[o.sorted[b]]
	})
	for rank, idx := range o.sorted {
		o.pos[idx] = rank + 1
	}
	return o, nil
}

// ties returns, for the row at sorted position p (1-based), the sorted
// positions of the first and last row holding an equal value.
func (o *ordering) ties(p int) (first, last int) {
	v := o.vals[o.sorted[p-1]]
	first, last = p, p
	for first > 1 && o.vals[o.sorted[first-2]] == v {
		first--
	}
	for last < o.np && o.vals[o.sorted[last]] == v {
		last++
	}
	return
}

// RowNumber appends an ordinal ranking of the named column, with ties
// broken by order of appearance
func RowNumber(f *wrangling.Frame, colName string, as string, conf *Conf) (*wrangling.Frame, error) {
	o, err := orderColumn(f, colName, conf)
	if err != nil {
		return nil, err
	}
	out := make([]interface{}, f.NumRows())
	for i := range out {
		if o.present[i] {
			out[i] = int64(o.pos[i])
		}
	}
	return f.WithColumn(as, &wrangling.Int64ColumnType{}, out)
}

// MinRank appends a ranking of the named column in which tied values
// share the smallest rank of their group, leaving gaps after ties
func MinRank(f *wrangling.Frame, colName string, as string, conf *Conf) (*wrangling.Frame, error) {
	o, err := orderColumn(f, colName, conf)
	if err != nil {
		return nil, err
	}
	out := make([]interface{}, f.NumRows())
	for i := range out {
		if o.present[i] {
			first, _ := o.ties(o.pos[i])
			out[i] = int64(first)
		}
	}
	return f.WithColumn(as, &wrangling.Int64ColumnType{}, out)
}

// DenseRank appends a ranking of the named column in which tied values
// share a rank and no gaps are left after ties
func DenseRank(f *wrangling.Frame, colName string, as string, conf *Conf) (*wrangling.Frame, error) {
	o, err := orderColumn(f, colName, conf)
	if err != nil {
		return nil, err
	}
	// dense rank of a value is the number of distinct values at or before it
	dense := make([]int64, o.np+1)
	distinct := int64(0)
	for p := 1; p <= o.np; p++ {
		if p == 1 || o.vals[o.sorted[p-1]] != o.vals[o.sorted[p-2]] {
			distinct++
		}
		dense[p] = distinct
	}
	out := make([]interface{}, f.NumRows())
	for i := range out {
		if o.present[i] {
			out[i] = dense[o.pos[i]]
		}
	}
	return f.WithColumn(as, &wrangling.Int64ColumnType{}, out)
}

// PercentRank appends a proportional ranking of the named column,
// rescaling MinRank to [0, 1]
func PercentRank(f *wrangling.Frame, colName string, as string, conf *Conf) (*wrangling.Frame, error) {
	o, err := orderColumn(f, colName, conf)
	if err != nil {
		return nil, err
	}
	out := make([]interface{}, f.NumRows())
	for i := range out {
		if o.present[i] {
			if o.np == 1 {
				out[i] = 0.0
			} else {
				first, _ := o.ties(o.pos[i])
				out[i] = float64(first-1) / float64(o.np-1)
			}
		}
	}
	return f.WithColumn(as, &wrangling.Float64ColumnType{}, out)
}

// CumeDist appends the cumulative distribution of the named column: the
// proportion of present values ranked at or before each value
func CumeDist(f *wrangling.Frame, colName string, as string, conf *Conf) (*wrangling.Frame, error) {
	o, err := orderColumn(f, colName, conf)
	if err != nil {
		return nil, err
	}
	out := make([]interface{}, f.NumRows())
	for i := range out {
		if o.present[i] {
			_, last := o.ties(o.pos[i])
			out[i] = float64(last) / float64(o.np)
		}
	}
	return f.WithColumn(as, &wrangling.Float64ColumnType{}, out)
}

// NTile appends an assignment of the rows into n near-equal ordered
// buckets numbered from 1, with larger buckets coming first
func NTile(f *wrangling.Frame, colName string, as string, n int, conf *Conf) (*wrangling.Frame, error) {
	if n < 1 {
		return nil, errors.BucketCountError{N: n}
	}
	o, err := orderColumn(f, colName, conf)
	if err != nil {
		return nil, err
	}
	smaller := o.np / n
	rem := o.np % n
	out := make([]interface{}, f.NumRows())
	for i := range out {
		if !o.present[i] {
			continue
		}
		rn := o.pos[i]
		if rn <= rem*(smaller+1) {
			out[i] = int64((rn-1)/(smaller+1) + 1)
		} else {
			out[i] = int64(rem + (rn-1-rem*(smaller+1))/smaller + 1)
		}
	}
	return f.WithColumn(as, &wrangling.Int64ColumnType{}, out)
}
