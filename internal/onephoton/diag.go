package onephoton

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"gonum.org/v1/gonum/mat"

	"github.com/user/fortran_output_go/internal/parser"
)

// LoadDiagOptions controls LoadDiagData. Empty paths default to the
// _Jtot1 files in the data root.
type LoadDiagOptions struct {
	Eigenvalues    string
	MatrixElements string
	Reload         bool
}

// LoadDiagData loads the diagonal eigenvalues and matrix elements. Both are
// replaced together or not at all.
func (o *OnePhoton) LoadDiagData(dataRoot string, opts LoadDiagOptions) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.diagLoaded && !opts.Reload {
		return nil
	}
	if o.diagLoaded {
		o.logger.Info("reloading diagonal data")
	}

	eigenvaluesPath := opts.Eigenvalues
	if eigenvaluesPath == "" {
		eigenvaluesPath = filepath.Join(dataRoot, DiagEigenvaluesFile)
	}
	matrixElementsPath := opts.MatrixElements
	if matrixElementsPath == "" {
		matrixElementsPath = filepath.Join(dataRoot, DiagMatrixElementsFile)
	}

	eigenvalues, err := o.loadComplexColumns(eigenvaluesPath, false)
	if err != nil {
		return err
	}
	// Only the right eigenvector, stored in the last two columns, is kept.
	matrixElements, err := o.loadComplexColumns(matrixElementsPath, true)
	if err != nil {
		return err
	}

	o.diagEigenvalues = eigenvalues
	o.diagMatrixElements = matrixElements
	o.diagLoaded = true
	o.logger.Debug("loaded diagonal data",
		slog.Int("eigenvalues", len(eigenvalues)),
		slog.String("path", eigenvaluesPath),
	)
	return nil
}

// loadComplexColumns reads a table and combines two adjacent columns into
// re + i*im. The pair is the first two columns, or the last two if fromRight.
func (o *OnePhoton) loadComplexColumns(path string, fromRight bool) ([]complex128, error) {
	table, err := parser.LoadRawData(o.fs, path)
	if err != nil {
		return nil, err
	}
	rows, cols := table.Dims()
	if cols < 2 {
		return nil, &parser.DataFileError{
			Path: path,
			Err:  fmt.Errorf("%w: need real and imaginary columns, found %d", ErrTableShape, cols),
		}
	}
	reCol := 0
	if fromRight {
		reCol = cols - 2
	}
	re := mat.Col(nil, reCol, table)
	im := mat.Col(nil, reCol+1, table)

	out := make([]complex128, rows)
	for i := range out {
		out[i] = complex(re[i], im[i])
	}
	return out, nil
}

// IsDiagLoaded reports whether LoadDiagData has succeeded.
func (o *OnePhoton) IsDiagLoaded() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.diagLoaded
}

// AssertDiagLoaded returns ErrDiagNotLoaded if the diagonal data is missing.
func (o *OnePhoton) AssertDiagLoaded() error {
	if !o.IsDiagLoaded() {
		return fmt.Errorf("%s: %w", o.atomName, ErrDiagNotLoaded)
	}
	return nil
}

// DiagEigenvalues returns a copy of the diagonal eigenvalues.
func (o *OnePhoton) DiagEigenvalues() ([]complex128, error) {
	if err := o.AssertDiagLoaded(); err != nil {
		return nil, err
	}
	o.mu.RLock()
	defer o.mu.RUnlock()
	return append([]complex128(nil), o.diagEigenvalues...), nil
}

// DiagMatrixElements returns a copy of the diagonal matrix elements.
func (o *OnePhoton) DiagMatrixElements() ([]complex128, error) {
	if err := o.AssertDiagLoaded(); err != nil {
		return nil, err
	}
	o.mu.RLock()
	defer o.mu.RUnlock()
	return append([]complex128(nil), o.diagMatrixElements...), nil
}
