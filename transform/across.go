// Package transform provides column-wise and row-wise reshaping of Frames:
// transformation dispatch across column subsets, branch-first conditional
// value construction, row-name handling, deduplication and row-wise
// aggregation.
package transform

import (
	"fmt"
	"strings"

	multierror "github.com/hashicorp/go-multierror"

	wrangling "github.com/jaejungca/advanced-wrangling"
	"github.com/jaejungca/advanced-wrangling/errors"
	"github.com/jaejungca/advanced-wrangling/internal/util"
)

// DefaultNameTemplate names the output columns produced when several
// functions are dispatched across a column subset
const DefaultNameTemplate = "{col}_{fn}"

// An Fn is a named transformation of a whole column vector
type Fn struct {
	Name  string                                         // names output columns via the template's {fn} token. A single anonymous Fn replaces columns in place.
	Type  wrangling.ColumnType                           // output column type. nil keeps each input column's type.
	Apply func([]interface{}) ([]interface{}, error)     // Apply transforms a column vector. The result must have the input's length.
}

// ElementFn lifts a cell-level function into an Fn, passing missing values through untouched
func ElementFn(name string, colType wrangling.ColumnType, fn func(interface{}) (interface{}, error)) Fn {
	return Fn{
		Name: name,
		Type: colType,
		Apply: func(values []interface{}) ([]interface{}, error) {
			result := make([]interface{}, len(values))
			for i, v := range values {
				if v == nil {
					continue
				}
				out, err := fn(v)
				if err != nil {
					return nil, err
				}
				result[i] = out
			}
			return result, nil
		},
	}
}

// Across dispatches one or more Fns over the columns chosen by sel,
// returning a new Frame. A single anonymous Fn replaces each selected
// column in place; named Fns append new columns, named by expanding
// the {col} and {fn} tokens of nameTemplate (DefaultNameTemplate when
// empty). Failures are collected per column and function, and the
// remaining columns are still attempted.
func Across(f *wrangling.Frame, sel Selector, fns []Fn, nameTemplate string) (*wrangling.Frame, error) {
	if len(fns) == 0 {
		return nil, fmt.Errorf("Across requires at least one function")
	}
	inPlace := len(fns) == 1 && fns[0].Name == ""
	if !inPlace {
		for _, fn := range fns {
			if fn.Name == "" {
				return nil, fmt.Errorf("functions must be named when more than one is dispatched")
			}
		}
		if nameTemplate == "" {
			nameTemplate = DefaultNameTemplate
		}
	}

	result := f.Clone()
	var merr *multierror.Error
	for _, colName := range selected(f, sel) {
		col, err := f.Schema().GetColumn(colName)
		if err != nil {
			merr = multierror.Append(merr, err)
			continue
		}
		values, err := f.ColumnValues(colName)
		if err != nil {
			merr = multierror.Append(merr, err)
			continue
		}
		for _, fn := range fns {
			transformed, err := util.SafeColumnOperation(fn.Apply)(values)
			if err != nil {
				merr = multierror.Append(merr, fmt.Errorf("column %s: %w", colName, err))
				continue
			}
			if len(transformed) != len(values) {
				merr = multierror.Append(merr, errors.RaggedColumnError{Name: colName, Expected: len(values), Actual: len(transformed)})
				continue
			}
			outType := fn.Type
			if outType == nil {
				outType = col.Type()
			}
			var next *wrangling.Frame
			if inPlace {
				next, err = result.ReplaceColumn(colName, outType, transformed)
			} else {
				outName := strings.NewReplacer("{col}", colName, "{fn}", fn.Name).Replace(nameTemplate)
				next, err = result.WithColumn(outName, outType, transformed)
			}
			if err != nil {
				merr = multierror.Append(merr, err)
				continue
			}
			result = next
		}
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return result, nil
}
