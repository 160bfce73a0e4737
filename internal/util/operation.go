package util

import (
	"fmt"

	wrangling "github.com/jaejungca/advanced-wrangling"
)

// SafePredicateOperation wraps a row predicate such that panics are recovered and nice error messages are constructed
func SafePredicateOperation(predOp func(wrangling.Row) (bool, error)) func(wrangling.Row) (bool, error) {
	return func(row wrangling.Row) (matched bool, err error) {
		defer func() {
			if r := recover(); r != nil {
				if anErr, ok := r.(error); ok {
					err = fmt.Errorf("Predicate Panic: %w\nRow: %s\n%s", anErr, row.ToString(), GetTrace())
				} else {
					err = fmt.Errorf("Predicate Panic: %v\nRow: %s\n%s", r, row.ToString(), GetTrace())
				}
			} else if err != nil {
				err = fmt.Errorf("Predicate Error: %w\nRow: %s", err, row.ToString())
			}
		}()
		matched, err = predOp(row)
		return
	}
}

// SafeComputeOperation wraps a row value computation such that panics are recovered and nice error messages are constructed
func SafeComputeOperation(computeOp func(wrangling.Row) (interface{}, error)) func(wrangling.Row) (interface{}, error) {
	return func(row wrangling.Row) (value interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				if anErr, ok := r.(error); ok {
					err = fmt.Errorf("Compute Panic: %w\nRow: %s\n%s", anErr, row.ToString(), GetTrace())
				} else {
					err = fmt.Errorf("Compute Panic: %v\nRow: %s\n%s", r, row.ToString(), GetTrace())
				}
			} else if err != nil {
				err = fmt.Errorf("Compute Error: %w\nRow: %s", err, row.ToString())
			}
		}()
		value, err = computeOp(row)
		return
	}
}

// SafeColumnOperation wraps a column transformation such that panics are recovered and nice error messages are constructed
func SafeColumnOperation(colOp func([]interface{}) ([]interface{}, error)) func([]interface{}) ([]interface{}, error) {
	return func(values []interface{}) (result []interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				if anErr, ok := r.(error); ok {
					err = fmt.Errorf("Column Panic: %w\n%s", anErr, GetTrace())
				} else {
					err = fmt.Errorf("Column Panic: %v\n%s", r, GetTrace())
				}
			}
		}()
		result, err = colOp(values)
		return
	}
}
