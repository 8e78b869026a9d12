package onephoton

import (
	"fmt"
	"path/filepath"

	"github.com/user/fortran_output_go/internal/atom"
)

// File names inside a solver output folder.
const (
	omegaFile       = "omega.dat"
	pcurFile        = "pcur_all.dat"
	ampFile         = "amp_all.dat"
	phaseFFile      = "phaseF_all.dat"
	phaseGFile      = "phaseG_all.dat"
	hfDir           = "hf_wavefunctions"
	secondPhotonDir = "second_photon"
)

// Atom-wide diagonal data files, relative to the data root.
const (
	DiagEigenvaluesFile    = "diag_eigenvalues_Jtot1.dat"
	DiagMatrixElementsFile = "diag_matrix_elements_Jtot1.dat"
)

// ChannelFiles lists the raw tables backing one Channels value.
type ChannelFiles struct {
	Omega  string
	Pcur   string
	Amp    string
	PhaseF string
	PhaseG string
}

// HoleFiles adds the files used to derive the hole's binding energy.
type HoleFiles struct {
	ChannelFiles
	HFEnergies string
	SPEkin     string
}

// PertDir returns the folder holding the perturbation output of a hole.
func PertDir(dataRoot string, kappa, radialIndex int) string {
	return filepath.Join(dataRoot, fmt.Sprintf("pert_%d_%d", kappa, radialIndex))
}

// DefaultHoleFiles returns the canonical location of every file for hole.
func DefaultHoleFiles(dataRoot string, hole *atom.Hole) HoleFiles {
	pert := PertDir(dataRoot, hole.Kappa, hole.RadialIndex())
	return HoleFiles{
		ChannelFiles: ChannelFiles{
			Omega:  filepath.Join(pert, omegaFile),
			Pcur:   filepath.Join(pert, pcurFile),
			Amp:    filepath.Join(pert, ampFile),
			PhaseF: filepath.Join(pert, phaseFFile),
			PhaseG: filepath.Join(pert, phaseGFile),
		},
		HFEnergies: filepath.Join(dataRoot, hfDir, fmt.Sprintf("hf_energies_kappa_%d.dat", hole.Kappa)),
		SPEkin: filepath.Join(dataRoot, secondPhotonDir,
			fmt.Sprintf("energy_rpa_%d_%d.dat", hole.Kappa, hole.RadialIndex())),
	}
}

// withDefaults fills every empty path in f from defaults.
func (f HoleFiles) withDefaults(defaults HoleFiles) HoleFiles {
	pick := func(explicit, fallback string) string {
		if explicit != "" {
			return explicit
		}
		return fallback
	}
	return HoleFiles{
		ChannelFiles: ChannelFiles{
			Omega:  pick(f.Omega, defaults.Omega),
			Pcur:   pick(f.Pcur, defaults.Pcur),
			Amp:    pick(f.Amp, defaults.Amp),
			PhaseF: pick(f.PhaseF, defaults.PhaseF),
			PhaseG: pick(f.PhaseG, defaults.PhaseG),
		},
		HFEnergies: pick(f.HFEnergies, defaults.HFEnergies),
		SPEkin:     pick(f.SPEkin, defaults.SPEkin),
	}
}
