// Package setops treats the whole rows of two same-shaped Frames as set
// elements, providing intersection, union and difference. Results are
// deduplicated and preserve first-occurrence order.
package setops

import (
	"sort"

	wrangling "github.com/jaejungca/advanced-wrangling"
	"github.com/jaejungca/advanced-wrangling/errors"
	"github.com/jaejungca/advanced-wrangling/internal/rowkey"
)

// rowSet indexes the rows of a Frame by the hash of all their cells,
// retaining one representative index per distinct row
type rowSet struct {
	frame   *wrangling.Frame
	cols    []string
	buckets map[uint64][]int
}

func newRowSet(f *wrangling.Frame) (*rowSet, error) {
	s := &rowSet{
		frame:   f,
		cols:    f.Schema().ColumnNames(),
		buckets: make(map[uint64][]int),
	}
	for i := 0; i < f.NumRows(); i++ {
		hash, err := rowkey.Hash(f.Row(i), s.cols)
		if err != nil {
			return nil, err
		}
		if in, err := s.containsHashed(hash, f.Row(i), s.cols); err != nil {
			return nil, err
		} else if !in {
			s.buckets[hash] = append(s.buckets[hash], i)
		}
	}
	return s, nil
}

func (s *rowSet) containsHashed(hash uint64, row wrangling.Row, cols []string) (bool, error) {
	for _, idx := range s.buckets[hash] {
		ok, err := rowkey.Matches(s.frame.Row(idx), s.cols, row, cols)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func (s *rowSet) contains(row wrangling.Row, cols []string) (bool, error) {
	hash, err := rowkey.Hash(row, cols)
	if err != nil {
		return false, err
	}
	return s.containsHashed(hash, row, cols)
}

func requireEqualSchemas(a, b *wrangling.Frame) error {
	if err := a.Schema().Equals(b.Schema()); err != nil {
		return errors.SchemaMismatchError{Cause: err}
	}
	return nil
}

// Intersect returns the distinct rows of a which also occur in b
func Intersect(a, b *wrangling.Frame) (*wrangling.Frame, error) {
	if err := requireEqualSchemas(a, b); err != nil {
		return nil, err
	}
	bSet, err := newRowSet(b)
	if err != nil {
		return nil, err
	}
	aSet, err := newRowSet(a)
	if err != nil {
		return nil, err
	}
	cols := a.Schema().ColumnNames()
	var indices []int
	for _, idx := range distinctOrder(aSet) {
		in, err := bSet.contains(a.Row(idx), cols)
		if err != nil {
			return nil, err
		}
		if in {
			indices = append(indices, idx)
		}
	}
	return a.TakeRows(indices...)
}

// Union returns the distinct rows of a followed by the distinct rows of
// b which do not occur in a
func Union(a, b *wrangling.Frame) (*wrangling.Frame, error) {
	if err := requireEqualSchemas(a, b); err != nil {
		return nil, err
	}
	aSet, err := newRowSet(a)
	if err != nil {
		return nil, err
	}
	bSet, err := newRowSet(b)
	if err != nil {
		return nil, err
	}
	indices := distinctOrder(aSet)
	result, err := a.TakeRows(indices...)
	if err != nil {
		return nil, err
	}
	result.ClearRowNames()
	cols := b.Schema().ColumnNames()
	for _, idx := range distinctOrder(bSet) {
		in, err := aSet.contains(b.Row(idx), cols)
		if err != nil {
			return nil, err
		}
		if in {
			continue
		}
		values := make([]interface{}, 0, len(cols))
		for _, name := range cols {
			v, err := b.Row(idx).Get(name)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		if err := result.AppendRow(values...); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// SetDiff returns the distinct rows of a which do not occur in b
func SetDiff(a, b *wrangling.Frame) (*wrangling.Frame, error) {
	if err := requireEqualSchemas(a, b); err != nil {
		return nil, err
	}
	bSet, err := newRowSet(b)
	if err != nil {
		return nil, err
	}
	aSet, err := newRowSet(a)
	if err != nil {
		return nil, err
	}
	cols := a.Schema().ColumnNames()
	var indices []int
	for _, idx := range distinctOrder(aSet) {
		in, err := bSet.contains(a.Row(idx), cols)
		if err != nil {
			return nil, err
		}
		if !in {
			indices = append(indices, idx)
		}
	}
	return a.TakeRows(indices...)
}

// distinctOrder returns the representative row indices of a rowSet in
// first-occurrence order
func distinctOrder(s *rowSet) []int {
	var indices []int
	for _, bucket := range s.buckets {
		indices = append(indices, bucket...)
	}
	// bucket iteration order is arbitrary; restore frame order
	sort.Ints(indices)
	return indices
}
