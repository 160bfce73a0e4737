// Package join combines two Frames by matching rows on key columns.
// Mutating joins (Inner, Left, Right, Full, Cross) add columns from one
// Frame to another; filtering joins (Semi, Anti) retain or remove rows
// of the left Frame based on key-match existence, without adding columns.
package join

import (
	wrangling "github.com/jaejungca/advanced-wrangling"
	"github.com/jaejungca/advanced-wrangling/errors"
)

// A Key pairs a column of the left Frame with the column of the right
// Frame it is matched against
type Key struct {
	Left  string
	Right string
}

// On builds keys for columns bearing the same name in both Frames
func On(colNames ...string) []Key {
	keys := make([]Key, len(colNames))
	for i, name := range colNames {
		keys[i] = Key{Left: name, Right: name}
	}
	return keys
}

// Conf configures a join. A nil Conf uses the default suffixes.
type Conf struct {
	Suffixes [2]string // appended to colliding non-key column names of the left and right Frames. Defaults to _x and _y.
}

func (c *Conf) suffixes() (string, string) {
	if c == nil || (c.Suffixes[0] == "" && c.Suffixes[1] == "") {
		return "_x", "_y"
	}
	return c.Suffixes[0], c.Suffixes[1]
}

// Inner returns the rows of left with the non-key columns of right appended,
// keeping only rows with at least one key match. Each pairing of matching
// rows produces its own output row, so duplicated keys multiply.
func Inner(left, right *wrangling.Frame, keys []Key, conf *Conf) (*wrangling.Frame, error) {
	return mutating(left, right, keys, conf, false, false)
}

// Left returns every row of left with the non-key columns of right appended.
// Rows without a key match are kept, with missing values in the right columns.
func Left(left, right *wrangling.Frame, keys []Key, conf *Conf) (*wrangling.Frame, error) {
	return mutating(left, right, keys, conf, true, false)
}

// Right returns every row of right with the non-key columns of left
// prepended, in the left Frame's column layout. Rows of right without a key
// match are kept, with missing values in the left-only columns.
func Right(left, right *wrangling.Frame, keys []Key, conf *Conf) (*wrangling.Frame, error) {
	if len(keys) == 0 {
		return nil, errors.NoKeyColumnsError{}
	}
	j, err := newJoiner(left, right, keys, conf)
	if err != nil {
		return nil, err
	}
	matched, err := j.matchLeftRows()
	if err != nil {
		return nil, err
	}
	// emit matched left rows first, in left order, then unmatched right rows
	for li := 0; li < left.NumRows(); li++ {
		if err := j.emitMatches(li, matched[li]); err != nil {
			return nil, err
		}
	}
	if err := j.emitUnmatchedRight(); err != nil {
		return nil, err
	}
	return j.out, nil
}

// Full returns every row of both Frames, matching where possible and
// filling the columns of the absent side with missing values elsewhere
func Full(left, right *wrangling.Frame, keys []Key, conf *Conf) (*wrangling.Frame, error) {
	return mutating(left, right, keys, conf, true, true)
}

// Cross returns the Cartesian product of both Frames, pairing every row
// of left with every row of right. No keys are involved.
func Cross(left, right *wrangling.Frame, conf *Conf) (*wrangling.Frame, error) {
	j, err := newJoiner(left, right, nil, conf)
	if err != nil {
		return nil, err
	}
	for li := 0; li < left.NumRows(); li++ {
		all := make([]int, right.NumRows())
		for ri := range all {
			all[ri] = ri
		}
		if err := j.emitMatches(li, all); err != nil {
			return nil, err
		}
	}
	return j.out, nil
}

// Semi returns the rows of left which have at least one key match in right,
// without adding columns and without duplication
func Semi(left, right *wrangling.Frame, keys []Key) (*wrangling.Frame, error) {
	return filtering(left, right, keys, true)
}

// Anti returns the rows of left which have no key match in right,
// without adding columns
func Anti(left, right *wrangling.Frame, keys []Key) (*wrangling.Frame, error) {
	return filtering(left, right, keys, false)
}

func mutating(left, right *wrangling.Frame, keys []Key, conf *Conf, keepUnmatchedLeft, keepUnmatchedRight bool) (*wrangling.Frame, error) {
	if len(keys) == 0 {
		return nil, errors.NoKeyColumnsError{}
	}
	j, err := newJoiner(left, right, keys, conf)
	if err != nil {
		return nil, err
	}
	matched, err := j.matchLeftRows()
	if err != nil {
		return nil, err
	}
	for li := 0; li < left.NumRows(); li++ {
		if len(matched[li]) == 0 {
			if !keepUnmatchedLeft {
				continue
			}
			if err := j.emitUnmatchedLeft(li); err != nil {
				return nil, err
			}
			continue
		}
		if err := j.emitMatches(li, matched[li]); err != nil {
			return nil, err
		}
	}
	if keepUnmatchedRight {
		if err := j.emitUnmatchedRight(); err != nil {
			return nil, err
		}
	}
	return j.out, nil
}

func filtering(left, right *wrangling.Frame, keys []Key, keepMatched bool) (*wrangling.Frame, error) {
	if len(keys) == 0 {
		return nil, errors.NoKeyColumnsError{}
	}
	j, err := newJoiner(left, right, keys, nil)
	if err != nil {
		return nil, err
	}
	matched, err := j.matchLeftRows()
	if err != nil {
		return nil, err
	}
	var indices []int
	for li := 0; li < left.NumRows(); li++ {
		if (len(matched[li]) > 0) == keepMatched {
			indices = append(indices, li)
		}
	}
	return left.TakeRows(indices...)
}
