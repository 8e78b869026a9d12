package atom

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"

	"github.com/user/fortran_output_go/internal/parser"
)

// ErrInvalidHole is returned when (n, kappa) does not describe a bound orbital.
var ErrInvalidHole = errors.New("invalid hole quantum numbers")

// Hole is the vacancy left in an atomic shell after ionisation.
// Everything except the binding energy is fixed at construction.
type Hole struct {
	Atom  string
	N     int
	Kappa int
	L     int
	J     float64
	Name  string

	bindingEnergy    float64
	hasBindingEnergy bool
}

// NewHole validates the quantum numbers and derives l, j and the display name.
// A nil bindingEnergy leaves the energy unset until LoadBindingEnergy is called.
func NewHole(atomName string, n, kappa int, bindingEnergy *float64) (*Hole, error) {
	if err := ValidateKappa(kappa); err != nil {
		return nil, fmt.Errorf("%w: n=%d kappa=%d: %w", ErrInvalidHole, n, kappa, err)
	}
	l := LFromKappa(kappa)
	if n <= l {
		return nil, fmt.Errorf("%w: n=%d must exceed l=%d", ErrInvalidHole, n, l)
	}

	h := &Hole{
		Atom:  atomName,
		N:     n,
		Kappa: kappa,
		L:     l,
		J:     JFromKappa(kappa),
		Name:  ConstructHoleName(n, kappa),
	}
	if bindingEnergy != nil {
		h.bindingEnergy = *bindingEnergy
		h.hasBindingEnergy = true
	}
	return h, nil
}

// ConstructHoleName returns a label such as "3d_{5/2}".
func ConstructHoleName(n, kappa int) string {
	return fmt.Sprintf("%d%s", n, OrbitalName(kappa))
}

// RadialIndex is n - l, the index used to name the per-hole output folders.
func (h *Hole) RadialIndex() int {
	return h.N - h.L
}

// BindingEnergy returns the binding energy in Hartree and whether it is known.
func (h *Hole) BindingEnergy() (float64, bool) {
	return h.bindingEnergy, h.hasBindingEnergy
}

func (h *Hole) String() string {
	return h.Atom + " " + h.Name
}

// LoadBindingEnergy determines the binding energy from simulation output.
//
// If the second-photon kinetic energy file exists and an omega path is given,
// the threshold is taken from the first photon energy minus the first
// photoelectron kinetic energy. Otherwise the Hartree-Fock orbital energy for
// this hole is used with its sign flipped.
func (h *Hole) LoadBindingEnergy(fsys afero.Fs, hfEnergiesPath, omegaPath, ekinPath string) error {
	useRPA := false
	if omegaPath != "" && ekinPath != "" {
		exists, err := afero.Exists(fsys, ekinPath)
		if err != nil {
			return &parser.DataFileError{Path: ekinPath, Err: err}
		}
		useRPA = exists
	}

	if useRPA {
		omega, err := parser.LoadValue(fsys, omegaPath, 0, 0)
		if err != nil {
			return err
		}
		ekin, err := parser.LoadValue(fsys, ekinPath, 0, 0)
		if err != nil {
			return err
		}
		h.bindingEnergy = omega - ekin
	} else {
		orbitalEnergy, err := parser.LoadValue(fsys, hfEnergiesPath, h.RadialIndex()-1, 0)
		if err != nil {
			return err
		}
		h.bindingEnergy = -orbitalEnergy
	}
	h.hasBindingEnergy = true
	return nil
}
