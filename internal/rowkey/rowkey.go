// Package rowkey produces hashable keys from the cells of Frame rows,
// for use when matching rows during joins, set operations and deduplication.
package rowkey

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	xxhash "github.com/cespare/xxhash/v2"

	wrangling "github.com/jaejungca/advanced-wrangling"
)

// Hash produces a 64-bit key from the values of the given columns of a row.
// Equal cell values always hash identically, so hash equality plus a Matches
// verification identifies matching rows.
func Hash(row wrangling.Row, cols []string) (uint64, error) {
	hasher := xxhash.New()
	buff := make([]byte, 9)
	for _, col := range cols {
		v, err := row.Get(col)
		if err != nil {
			return 0, err
		}
		n, err := canonicalize(buff, v)
		if err != nil {
			return 0, err
		}
		if _, err := hasher.Write(buff[:n]); err != nil {
			return 0, err
		}
		if s, ok := v.(string); ok {
			if _, err := hasher.WriteString(s); err != nil {
				return 0, err
			}
		}
	}
	return hasher.Sum64(), nil
}

// Matches returns true iff the given columns of two rows hold equal values,
// position by position. It is used to confirm candidate matches found via Hash.
func Matches(a wrangling.Row, aCols []string, b wrangling.Row, bCols []string) (bool, error) {
	if len(aCols) != len(bCols) {
		return false, fmt.Errorf("cannot compare %d columns against %d columns", len(aCols), len(bCols))
	}
	for i := range aCols {
		av, err := a.Get(aCols[i])
		if err != nil {
			return false, err
		}
		bv, err := b.Get(bCols[i])
		if err != nil {
			return false, err
		}
		if !cellsEqual(av, bv) {
			return false, nil
		}
	}
	return true, nil
}

func cellsEqual(a, b interface{}) bool {
	if at, ok := a.(time.Time); ok {
		bt, ok := b.(time.Time)
		return ok && at.Equal(bt)
	}
	return a == b
}

// canonicalize writes a tag byte plus a fixed-width encoding of v into buff,
// returning the number of bytes used. Strings contribute only their tag and
// length here; the caller appends the bytes themselves.
func canonicalize(buff []byte, v interface{}) (int, error) {
	switch t := v.(type) {
	case nil:
		buff[0] = 'n'
		return 1, nil
	case bool:
		buff[0] = 'b'
		if t {
			buff[1] = 1
		} else {
			buff[1] = 0
		}
		return 2, nil
	case int64:
		buff[0] = 'i'
		binary.LittleEndian.PutUint64(buff[1:], uint64(t))
		return 9, nil
	case float64:
		buff[0] = 'f'
		binary.LittleEndian.PutUint64(buff[1:], math.Float64bits(t))
		return 9, nil
	case time.Time:
		buff[0] = 't'
		binary.LittleEndian.PutUint64(buff[1:], uint64(t.UnixNano()))
		return 9, nil
	case string:
		buff[0] = 's'
		binary.LittleEndian.PutUint64(buff[1:], uint64(len(t)))
		return 9, nil
	default:
		return 0, fmt.Errorf("cannot key value %#v", v)
	}
}
