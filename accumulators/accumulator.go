// Package accumulators provides incremental aggregations which can be folded
// over the cells of a column, or over the cells of a single row when each row
// is treated as an independent one-row group.
package accumulators

import (
	wrangling "github.com/jaejungca/advanced-wrangling"
)

// An Accumulator is an incremental aggregation of cell values
type Accumulator interface {
	Accumulate(v interface{}) error // Accumulate adds a cell value to this Accumulator
	Merge(o Accumulator) error      // Merge merges another Accumulator into this one
	Value() interface{}             // Value returns the current result of this Accumulator, or nil if nothing was accumulated
}

// A Factory produces a fresh Accumulator
type Factory func() Accumulator

// Collect folds a fresh Accumulator over a whole column of a Frame, returning its result
func Collect(f *wrangling.Frame, colName string, facc Factory) (interface{}, error) {
	values, err := f.ColumnValues(colName)
	if err != nil {
		return nil, err
	}
	acc := facc()
	for _, v := range values {
		if err := acc.Accumulate(v); err != nil {
			return nil, err
		}
	}
	return acc.Value(), nil
}

// Compose returns a factory for an Accumulator which runs several Accumulators at once
func Compose(faccs ...Factory) Factory {
	return func() Accumulator {
		accs := make([]Accumulator, len(faccs))
		for i, f := range faccs {
			accs[i] = f()
		}
		return &Composed{accs: accs}
	}
}

// Composed composes other Accumulators
type Composed struct {
	accs []Accumulator
}

// GetResults returns the contained Accumulators, so that their results may be accessed
func (c *Composed) GetResults() []Accumulator {
	return c.accs
}

// Accumulate adds a cell value to all contained Accumulators
func (c *Composed) Accumulate(v interface{}) error {
	for _, a := range c.accs {
		err := a.Accumulate(v)
		if err != nil {
			return err
		}
	}
	return nil
}

// Merge merges another Composed Accumulator into this one, merging all contained Accumulators
func (c *Composed) Merge(o Accumulator) error {
	compa, ok := o.(*Composed)
	if !ok {
		return incompatibleAccumulatorError{"Composed"}
	}
	for i, a := range c.accs {
		err := a.Merge(compa.accs[i])
		if err != nil {
			return err
		}
	}
	return nil
}

// Value returns the results of all contained Accumulators
func (c *Composed) Value() interface{} {
	values := make([]interface{}, len(c.accs))
	for i, a := range c.accs {
		values[i] = a.Value()
	}
	return values
}

type incompatibleAccumulatorError struct{ expected string }

func (e incompatibleAccumulatorError) Error() string {
	return "Incoming accumulator is not a " + e.expected + " Accumulator"
}
