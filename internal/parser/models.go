package parser

import (
	"errors"
	"fmt"
)

// CommentPrefix marks lines in a data file that are skipped by the loader.
const CommentPrefix = "#"

var (
	// ErrEmptyTable is returned when a file contains no numeric rows.
	ErrEmptyTable = errors.New("no numeric rows")
	// ErrRaggedRow is returned when a row has a different number of columns than the first row.
	ErrRaggedRow = errors.New("inconsistent number of columns")
	// ErrColumnOutOfRange is returned when a requested column is not present in the table.
	ErrColumnOutOfRange = errors.New("column out of range")
	// ErrRowOutOfRange is returned when a requested row is not present in the table.
	ErrRowOutOfRange = errors.New("row out of range")
)

// DataFileError describes a failure to load a numeric table from disk.
// Line is 1-based and zero when the failure is not tied to a specific line.
type DataFileError struct {
	Path string
	Line int
	Err  error
}

func (e *DataFileError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("data file %s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("data file %s: %v", e.Path, e.Err)
}

func (e *DataFileError) Unwrap() error { return e.Err }
