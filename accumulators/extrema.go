package accumulators

import (
	wrangling "github.com/jaejungca/advanced-wrangling"
)

// Minimizer returns a new Min Accumulator factory
func Minimizer() Factory {
	return func() Accumulator {
		return &Extremum{keepSmaller: true}
	}
}

// Maximizer returns a new Max Accumulator factory
func Maximizer() Factory {
	return func() Accumulator {
		return &Extremum{keepSmaller: false}
	}
}

// Extremum tracks the smallest or largest numeric cell value, skipping missing values
type Extremum struct {
	keepSmaller bool
	best        float64
	sawValue    bool
}

// Accumulate adds a cell value to this Accumulator
func (a *Extremum) Accumulate(v interface{}) error {
	if v == nil {
		return nil
	}
	n, err := wrangling.AsFloat64(v)
	if err != nil {
		return err
	}
	if !a.sawValue || (a.keepSmaller && n < a.best) || (!a.keepSmaller && n > a.best) {
		a.best = n
	}
	a.sawValue = true
	return nil
}

// Merge merges another Accumulator into this one
func (a *Extremum) Merge(o Accumulator) error {
	ca, ok := o.(*Extremum)
	if !ok || ca.keepSmaller != a.keepSmaller {
		return incompatibleAccumulatorError{"Extremum"}
	}
	if ca.sawValue {
		if err := a.Accumulate(ca.best); err != nil {
			return err
		}
	}
	return nil
}

// Value returns the extremum, or nil if no values were accumulated
func (a *Extremum) Value() interface{} {
	if !a.sawValue {
		return nil
	}
	return a.best
}
