package accumulators

// Counter returns a new Count Accumulator factory
func Counter() Factory {
	return func() Accumulator {
		return new(Count)
	}
}

// Count counts cell values, including missing ones
type Count struct {
	count int64
}

// GetCount returns the cell count from this Accumulator
func (a *Count) GetCount() int64 {
	return a.count
}

// Accumulate adds a cell value to this Accumulator
func (a *Count) Accumulate(v interface{}) error {
	a.count++
	return nil
}

// Merge merges another Accumulator into this one
func (a *Count) Merge(o Accumulator) error {
	ca, ok := o.(*Count)
	if !ok {
		return incompatibleAccumulatorError{"Count"}
	}
	a.count += ca.count
	return nil
}

// Value returns the cell count
func (a *Count) Value() interface{} {
	return a.count
}
