package onephoton

import "github.com/user/fortran_output_go/internal/atom"

// IonisationPath describes one final channel of a hole.
type IonisationPath struct {
	Kappa int
	L     int
	// JInt is 2j.
	JInt int
	Name string
	// ColumnIndex is the position of the channel in the candidate order and
	// therefore its column in the rate, amplitude and phase tables.
	ColumnIndex int
}

// NewIonisationPath derives l, j and the label for a final kappa.
func NewIonisationPath(kappa, columnIndex int) IonisationPath {
	return IonisationPath{
		Kappa:       kappa,
		L:           atom.LFromKappa(kappa),
		JInt:        atom.JFromKappaInt(kappa),
		Name:        atom.OrbitalName(kappa),
		ColumnIndex: columnIndex,
	}
}

// J returns the total angular momentum of the final state.
func (p IonisationPath) J() float64 {
	return float64(p.JInt) / 2
}
