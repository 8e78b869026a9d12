// Package atom holds the quantum-number bookkeeping shared by the data
// loaders: kappa arithmetic, spectroscopic labels and the Hole value.
package atom

import (
	"errors"
	"fmt"
)

// HartreeToEV converts energies from Hartree (atomic units) to electronvolts.
const HartreeToEV = 27.211386245988

// ErrInvalidKappa is returned for kappa = 0, which labels no orbital.
var ErrInvalidKappa = errors.New("kappa must be nonzero")

// spectroscopic letters for l = 0, 1, 2, ...; "j" is skipped by convention.
const orbitalLetters = "spdfghiklmnoqrtuvwxyz"

// ValidateKappa reports whether kappa can label a relativistic orbital.
func ValidateKappa(kappa int) error {
	if kappa == 0 {
		return ErrInvalidKappa
	}
	return nil
}

// LFromKappa returns the orbital angular momentum l for kappa.
func LFromKappa(kappa int) int {
	if kappa > 0 {
		return kappa
	}
	return -kappa - 1
}

// JFromKappaInt returns 2j, which is always odd for a nonzero kappa.
func JFromKappaInt(kappa int) int {
	return 2*abs(kappa) - 1
}

// JFromKappa returns the total angular momentum j = |kappa| - 1/2.
func JFromKappa(kappa int) float64 {
	return float64(JFromKappaInt(kappa)) / 2
}

// LToStr returns the spectroscopic letter for l.
func LToStr(l int) string {
	if l < 0 || l >= len(orbitalLetters) {
		return fmt.Sprintf("[l=%d]", l)
	}
	return orbitalLetters[l : l+1]
}

// OrbitalName builds a label such as "p_{3/2}" for kappa.
func OrbitalName(kappa int) string {
	return fmt.Sprintf("%s_{%d/2}", LToStr(LFromKappa(kappa)), JFromKappaInt(kappa))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
