package as4100

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownGrade is returned when a grade is not tabulated for the material standard
	ErrUnknownGrade = errors.New("unknown steel grade")

	// ErrThicknessOutOfRange is returned when no thickness bracket covers the element
	ErrThicknessOutOfRange = errors.New("thickness outside tabulated range")

	// ErrUnknownMaterialType is returned for an unrecognised material type spelling
	ErrUnknownMaterialType = errors.New("unknown material type")
)

// TableError reports a failed lookup in an AS4100 table
type TableError struct {
	Table     string
	Key       string
	Thickness float64
	Err       error
}

func (e *TableError) Error() string {
	if errors.Is(e.Err, ErrThicknessOutOfRange) {
		return fmt.Sprintf("%s %s: t = %g mm: %v", e.Table, e.Key, e.Thickness, e.Err)
	}
	return fmt.Sprintf("%s: %q: %v", e.Table, e.Key, e.Err)
}

func (e *TableError) Unwrap() error {
	return e.Err
}
