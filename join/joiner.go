package join

import (
	wrangling "github.com/jaejungca/advanced-wrangling"
	"github.com/jaejungca/advanced-wrangling/internal/rowkey"
)

// joiner holds the shared machinery of every join variant: the output
// schema with collision-free column names, hash buckets over the right
// Frame's key columns, and row emission into the output Frame.
type joiner struct {
	left, right  *wrangling.Frame
	leftKeys     []string // left key column names, in key order
	rightKeys    []string // right key column names, in key order
	leftCols     []string // every left column, in schema order
	rightCols    []string // right columns carried into the output, in schema order
	out          *wrangling.Frame
	buckets      map[uint64][]int // right row indices by key hash
	rightMatched []bool
}

func newJoiner(left, right *wrangling.Frame, keys []Key, conf *Conf) (*joiner, error) {
	j := &joiner{
		left:         left,
		right:        right,
		buckets:      make(map[uint64][]int),
		rightMatched: make([]bool, right.NumRows()),
	}
	isRightKey := make(map[string]bool)
	for _, k := range keys {
		if !left.Schema().HasColumn(k.Left) {
			_, err := left.Schema().GetColumn(k.Left)
			return nil, err
		}
		if !right.Schema().HasColumn(k.Right) {
			_, err := right.Schema().GetColumn(k.Right)
			return nil, err
		}
		j.leftKeys = append(j.leftKeys, k.Left)
		j.rightKeys = append(j.rightKeys, k.Right)
		isRightKey[k.Right] = true
	}

	// right columns other than keys are carried into the output
	right.Schema().ForEachColumn(func(name string, col *wrangling.Column) error {
		if !isRightKey[name] {
			j.rightCols = append(j.rightCols, name)
		}
		return nil
	})
	carried := make(map[string]bool)
	for _, name := range j.rightCols {
		carried[name] = true
	}

	// build the output schema, suffixing colliding non-key names on both sides
	sx, sy := conf.suffixes()
	outSchema := wrangling.CreateSchema()
	err := left.Schema().ForEachColumn(func(name string, col *wrangling.Column) error {
		j.leftCols = append(j.leftCols, name)
		outName := name
		if carried[name] {
			for outName = name + sx; outSchema.HasColumn(outName); outName += sx {
			}
		}
		_, err := outSchema.CreateColumn(outName, col.Type())
		return err
	})
	if err != nil {
		return nil, err
	}
	leftHas := left.Schema().HasColumn
	err = right.Schema().ForEachColumn(func(name string, col *wrangling.Column) error {
		if isRightKey[name] {
			return nil
		}
		outName := name
		if leftHas(name) {
			for outName = name + sy; outSchema.HasColumn(outName); outName += sy {
			}
		}
		_, err := outSchema.CreateColumn(outName, col.Type())
		return err
	})
	if err != nil {
		return nil, err
	}
	j.out = wrangling.CreateFrame(outSchema)

	for ri := 0; ri < right.NumRows(); ri++ {
		hash, err := rowkey.Hash(right.Row(ri), j.rightKeys)
		if err != nil {
			return nil, err
		}
		j.buckets[hash] = append(j.buckets[hash], ri)
	}
	return j, nil
}

// matchLeftRows returns, for each left row, the right row indices holding
// equal key values, in right Frame order. Matched right rows are marked.
func (j *joiner) matchLeftRows() ([][]int, error) {
	matched := make([][]int, j.left.NumRows())
	for li := 0; li < j.left.NumRows(); li++ {
		hash, err := rowkey.Hash(j.left.Row(li), j.leftKeys)
		if err != nil {
			return nil, err
		}
		for _, ri := range j.buckets[hash] {
			ok, err := rowkey.Matches(j.left.Row(li), j.leftKeys, j.right.Row(ri), j.rightKeys)
			if err != nil {
				return nil, err
			}
			if ok {
				matched[li] = append(matched[li], ri)
				j.rightMatched[ri] = true
			}
		}
	}
	return matched, nil
}

// emitMatches appends one output row per matching right row
func (j *joiner) emitMatches(li int, ris []int) error {
	for _, ri := range ris {
		values := make([]interface{}, 0, len(j.leftCols)+len(j.rightCols))
		for _, name := range j.leftCols {
			v, err := j.left.Row(li).Get(name)
			if err != nil {
				return err
			}
			values = append(values, v)
		}
		for _, name := range j.rightCols {
			v, err := j.right.Row(ri).Get(name)
			if err != nil {
				return err
			}
			values = append(values, v)
		}
		if err := j.out.AppendRow(values...); err != nil {
			return err
		}
	}
	return nil
}

// emitUnmatchedLeft appends a left row with missing values in every carried right column
func (j *joiner) emitUnmatchedLeft(li int) error {
	values := make([]interface{}, 0, len(j.leftCols)+len(j.rightCols))
	for _, name := range j.leftCols {
		v, err := j.left.Row(li).Get(name)
		if err != nil {
			return err
		}
		values = append(values, v)
	}
	for range j.rightCols {
		values = append(values, nil)
	}
	return j.out.AppendRow(values...)
}

// emitUnmatchedRight appends the right rows which matched no left row. Key
// cells are taken from the right row; left-only cells are missing.
func (j *joiner) emitUnmatchedRight() error {
	keyFor := make(map[string]string, len(j.leftKeys))
	for i, name := range j.leftKeys {
		keyFor[name] = j.rightKeys[i]
	}
	for ri := 0; ri < j.right.NumRows(); ri++ {
		if j.rightMatched[ri] {
			continue
		}
		values := make([]interface{}, 0, len(j.leftCols)+len(j.rightCols))
		for _, name := range j.leftCols {
			rightKey, isKey := keyFor[name]
			if !isKey {
				values = append(values, nil)
				continue
			}
			v, err := j.right.Row(ri).Get(rightKey)
			if err != nil {
				return err
			}
			values = append(values, v)
		}
		for _, name := range j.rightCols {
			v, err := j.right.Row(ri).Get(name)
			if err != nil {
				return err
			}
			values = append(values, v)
		}
		if err := j.out.AppendRow(values...); err != nil {
			return err
		}
	}
	return nil
}
