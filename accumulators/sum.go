package accumulators

import (
	wrangling "github.com/jaejungca/advanced-wrangling"
)

// Adder returns a new Sum Accumulator factory
func Adder() Factory {
	return func() Accumulator {
		return new(Sum)
	}
}

// Sum sums numeric cell values, skipping missing values
type Sum struct {
	sum      float64
	sawValue bool
}

// GetSum returns the sum from this Accumulator
func (a *Sum) GetSum() float64 {
	return a.sum
}

// Accumulate adds a cell value to this Accumulator
func (a *Sum) Accumulate(v interface{}) error {
	if v == nil {
		return nil
	}
	n, err := wrangling.AsFloat64(v)
	if err != nil {
		return err
	}
	a.sum += n
	a.sawValue = true
	return nil
}

// Merge merges another Accumulator into this one
func (a *Sum) Merge(o Accumulator) error {
	ca, ok := o.(*Sum)
	if !ok {
		return incompatibleAccumulatorError{"Sum"}
	}
	a.sum += ca.sum
	a.sawValue = a.sawValue || ca.sawValue
	return nil
}

// Value returns the sum, or nil if no values were accumulated
func (a *Sum) Value() interface{} {
	if !a.sawValue {
		return nil
	}
	return a.sum
}
