package onephoton

// CandidateFinalKappas returns the three final kappas a dipole transition can
// couple to from holeKappa, in the order the solver writes their columns:
// sign*(|k|-1), -sign*|k|, sign*(|k|+1). The first entry is 0 when the hole
// has |kappa| = 1; that slot is a closed channel but still owns a column.
func CandidateFinalKappas(holeKappa int) [3]int {
	mag, sig := holeKappa, 1
	if holeKappa < 0 {
		mag, sig = -holeKappa, -1
	}
	if holeKappa == 0 {
		sig = 0
	}
	return [3]int{sig * (mag - 1), -sig * mag, sig * (mag + 1)}
}

// ReachableFinalKappas returns the open final channels for holeKappa, that is
// the candidates with kappa = 0 removed, order preserved.
func ReachableFinalKappas(holeKappa int) []int {
	candidates := CandidateFinalKappas(holeKappa)
	kappas := make([]int, 0, len(candidates))
	for _, kappa := range candidates {
		if kappa != 0 {
			kappas = append(kappas, kappa)
		}
	}
	return kappas
}
