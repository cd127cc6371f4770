package calendar

import (
	"errors"
	"fmt"
)

var ErrInvalidDate = errors.New("invalid calendar date")

// DateError describes a rejected date at the package boundary.
type DateError struct {
	Op    string
	Input string
	Year  int
	Month int
	Day   int
	Err   error
}

func (e *DateError) Error() string {
	if e == nil {
		return ""
	}
	if e.Input != "" {
		return fmt.Sprintf("%s %q: %v", e.Op, e.Input, e.Err)
	}
	return fmt.Sprintf("%s %04d-%02d-%02d: %v", e.Op, e.Year, e.Month, e.Day, e.Err)
}

func (e *DateError) Unwrap() error { return e.Err }
