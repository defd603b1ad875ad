package mapgen

import "fmt"

// InvalidDimensionsError reports columns/rows outside the supported range.
// The request is not retriable with the same input.
type InvalidDimensionsError struct {
	Columns, Rows int
	Min, Max      int
}

func (e *InvalidDimensionsError) Error() string {
	return fmt.Sprintf("invalid dimensions %dx%d: each must be within %d..%d",
		e.Columns, e.Rows, e.Min, e.Max)
}

// UnknownStyleError reports a style code missing from the catalog.
type UnknownStyleError struct {
	Style string
}

func (e *UnknownStyleError) Error() string {
	return fmt.Sprintf("unknown style %q", e.Style)
}
