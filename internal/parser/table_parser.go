package parser

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"gonum.org/v1/gonum/mat"
)

// maxLineBytes bounds a single row. Fortran output with many columns can
// exceed bufio's default token size.
const maxLineBytes = 1 << 20

// LoadRawData reads a whitespace-delimited numeric table from path.
// Blank lines and lines starting with CommentPrefix are skipped. Every row must
// have the same number of columns as the first one.
func LoadRawData(fsys afero.Fs, path string) (*mat.Dense, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return nil, &DataFileError{Path: path, Err: err}
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var values []float64
	numRows, numCols := 0, 0
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, CommentPrefix) {
			continue
		}

		fields := strings.Fields(line)
		if numRows == 0 {
			numCols = len(fields)
		} else if len(fields) != numCols {
			return nil, &DataFileError{
				Path: path,
				Line: lineNum,
				Err:  fmt.Errorf("%w: expected %d, found %d", ErrRaggedRow, numCols, len(fields)),
			}
		}

		for _, field := range fields {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, &DataFileError{Path: path, Line: lineNum, Err: err}
			}
			values = append(values, val)
		}
		numRows++
	}
	if err := scanner.Err(); err != nil {
		return nil, &DataFileError{Path: path, Line: lineNum, Err: err}
	}
	if numRows == 0 {
		return nil, &DataFileError{Path: path, Err: ErrEmptyTable}
	}

	return mat.NewDense(numRows, numCols, values), nil
}

// LoadColumn loads the table at path and returns a copy of column col.
func LoadColumn(fsys afero.Fs, path string, col int) ([]float64, error) {
	table, err := LoadRawData(fsys, path)
	if err != nil {
		return nil, err
	}
	_, c := table.Dims()
	if col < 0 || col >= c {
		return nil, &DataFileError{
			Path: path,
			Err:  fmt.Errorf("%w: column %d of %d", ErrColumnOutOfRange, col, c),
		}
	}
	return mat.Col(nil, col, table), nil
}

// LoadValue returns the single entry at (row, col) of the table at path.
func LoadValue(fsys afero.Fs, path string, row, col int) (float64, error) {
	column, err := LoadColumn(fsys, path, col)
	if err != nil {
		return 0, err
	}
	if row < 0 || row >= len(column) {
		return 0, &DataFileError{
			Path: path,
			Err:  fmt.Errorf("%w: row %d of %d", ErrRowOutOfRange, row, len(column)),
		}
	}
	return column[row], nil
}
