package accumulators

import (
	wrangling "github.com/jaejungca/advanced-wrangling"
)

// Meaner returns a new Mean Accumulator factory
func Meaner() Factory {
	return func() Accumulator {
		return new(Mean)
	}
}

// Mean averages numeric cell values, skipping missing values
type Mean struct {
	sum   float64
	count int64
}

// Accumulate adds a cell value to this Accumulator
func (a *Mean) Accumulate(v interface{}) error {
	if v == nil {
		return nil
	}
	n, err := wrangling.AsFloat64(v)
	if err != nil {
		return err
	}
	a.sum += n
	a.count++
	return nil
}

// Merge merges another Accumulator into this one
func (a *Mean) Merge(o Accumulator) error {
	ca, ok := o.(*Mean)
	if !ok {
		return incompatibleAccumulatorError{"Mean"}
	}
	a.sum += ca.sum
	a.count += ca.count
	return nil
}

// Value returns the mean, or nil if no values were accumulated
func (a *Mean) Value() interface{} {
	if a.count == 0 {
		return nil
	}
	return a.sum / float64(a.count)
}
