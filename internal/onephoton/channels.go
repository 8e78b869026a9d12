package onephoton

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/afero"
	"gonum.org/v1/gonum/mat"

	"github.com/user/fortran_output_go/internal/atom"
	"github.com/user/fortran_output_go/internal/parser"
)

// Channels holds the raw one-photon data of a single hole and resolves final
// kappas to columns of its tables. It is read-only once constructed.
type Channels struct {
	hole  *atom.Hole
	paths map[int]IonisationPath
	// final kappas in candidate order
	order []int

	omega  []float64
	rate   *mat.Dense
	amp    *mat.Dense
	phaseF *mat.Dense
	phaseG *mat.Dense
}

// NewChannels identifies the ionisation paths of hole and loads the raw
// tables listed in files. The leading photon-energy column of the rate,
// amplitude and phase tables is dropped.
func NewChannels(fsys afero.Fs, files ChannelFiles, hole *atom.Hole) (*Channels, error) {
	c := &Channels{
		hole:  hole,
		paths: make(map[int]IonisationPath, 3),
	}
	c.addIonisationPaths()

	omega, err := parser.LoadColumn(fsys, files.Omega, 0)
	if err != nil {
		return nil, err
	}
	c.omega = omega

	tables := []struct {
		path string
		dst  **mat.Dense
	}{
		{files.Pcur, &c.rate},
		{files.Amp, &c.amp},
		{files.PhaseF, &c.phaseF},
		{files.PhaseG, &c.phaseG},
	}
	for _, tbl := range tables {
		raw, err := parser.LoadRawData(fsys, tbl.path)
		if err != nil {
			return nil, err
		}
		data, err := c.dropEnergyColumn(tbl.path, raw)
		if err != nil {
			return nil, err
		}
		*tbl.dst = data
	}

	return c, nil
}

// addIonisationPaths walks all three candidates so that a closed channel
// (kappa = 0) still consumes its column; only open channels are recorded.
//
// The solver is assumed to put the closed channel in the left-most column.
// That convention is inherited from earlier analysis code and has not been
// checked against every solver version.
func (c *Channels) addIonisationPaths() {
	for columnIndex, kappa := range CandidateFinalKappas(c.hole.Kappa) {
		if kappa == 0 {
			continue
		}
		c.paths[kappa] = NewIonisationPath(kappa, columnIndex)
		c.order = append(c.order, kappa)
	}
}

func (c *Channels) dropEnergyColumn(path string, raw *mat.Dense) (*mat.Dense, error) {
	rows, cols := raw.Dims()
	if rows != len(c.omega) {
		return nil, &parser.DataFileError{
			Path: path,
			Err:  fmt.Errorf("%w: %d rows, photon energy grid has %d", ErrTableShape, rows, len(c.omega)),
		}
	}
	needed := 0
	for _, p := range c.paths {
		needed = max(needed, p.ColumnIndex+1)
	}
	if cols-1 < needed {
		return nil, &parser.DataFileError{
			Path: path,
			Err:  fmt.Errorf("%w: %d channel columns, %s needs %d", ErrTableShape, cols-1, c.hole.Name, needed),
		}
	}
	return mat.DenseCopyOf(raw.Slice(0, rows, 1, cols)), nil
}

// Hole returns the hole these channels belong to.
func (c *Channels) Hole() *atom.Hole {
	return c.hole
}

// HasIonisationPath reports whether finalKappa is reachable from the hole.
func (c *Channels) HasIonisationPath(finalKappa int) bool {
	_, ok := c.paths[finalKappa]
	return ok
}

// IonisationPath returns the path for finalKappa.
func (c *Channels) IonisationPath(finalKappa int) (IonisationPath, error) {
	p, ok := c.paths[finalKappa]
	if !ok {
		return IonisationPath{}, &ChannelNotFoundError{Hole: c.hole.Name, Kappa: finalKappa}
	}
	return p, nil
}

// AllIonisationPaths returns a copy of the final kappa to path mapping.
func (c *Channels) AllIonisationPaths() map[int]IonisationPath {
	return maps.Clone(c.paths)
}

// IonisationPaths returns the paths in candidate (column) order.
func (c *Channels) IonisationPaths() []IonisationPath {
	out := make([]IonisationPath, 0, len(c.order))
	for _, kappa := range c.order {
		out = append(out, c.paths[kappa])
	}
	return out
}

// RawOmegaData returns the photon energies in Hartree.
func (c *Channels) RawOmegaData() []float64 {
	return slices.Clone(c.omega)
}

// OmegaEV returns the photon energies in electronvolts.
func (c *Channels) OmegaEV() []float64 {
	out := make([]float64, len(c.omega))
	for i, w := range c.omega {
		out[i] = w * atom.HartreeToEV
	}
	return out
}

// RawRate returns the probability current for finalKappa.
func (c *Channels) RawRate(finalKappa int) ([]float64, error) {
	return c.column(c.rate, finalKappa)
}

// RawAmpData returns the amplitudes for finalKappa.
func (c *Channels) RawAmpData(finalKappa int) ([]float64, error) {
	return c.column(c.amp, finalKappa)
}

// RawPhaseFData returns the phase of the large relativistic component for finalKappa.
func (c *Channels) RawPhaseFData(finalKappa int) ([]float64, error) {
	return c.column(c.phaseF, finalKappa)
}

// RawPhaseGData returns the phase of the small relativistic component for finalKappa.
func (c *Channels) RawPhaseGData(finalKappa int) ([]float64, error) {
	return c.column(c.phaseG, finalKappa)
}

func (c *Channels) column(table *mat.Dense, finalKappa int) ([]float64, error) {
	p, err := c.IonisationPath(finalKappa)
	if err != nil {
		return nil, err
	}
	return mat.Col(nil, p.ColumnIndex, table), nil
}
