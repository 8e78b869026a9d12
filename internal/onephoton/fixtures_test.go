package onephoton

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/user/fortran_output_go/internal/atom"
)

// Table ids used by fixtureValue so every stored number identifies its origin.
const (
	tableRate = iota + 1
	tableAmp
	tablePhaseF
	tablePhaseG
)

const testRoot = "/runs/argon"

func fixtureOmega(row int) float64 {
	return 1.0 + 0.25*float64(row)
}

// fixtureValue encodes (table, channel column, row) as table*1000 + col*100 + row.
func fixtureValue(table, col, row int) float64 {
	return float64(table*1000 + col*100 + row)
}

func fixtureColumn(table, col, rows int) []float64 {
	out := make([]float64, rows)
	for row := range out {
		out[row] = fixtureValue(table, col, row)
	}
	return out
}

func writeTestFile(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o644))
}

// formatChannelTable renders a raw solver table: an omega column followed by
// channelCols data columns.
func formatChannelTable(table, rows, channelCols int) string {
	var b strings.Builder
	for row := 0; row < rows; row++ {
		fmt.Fprintf(&b, "%.6E", fixtureOmega(row))
		for col := 0; col < channelCols; col++ {
			fmt.Fprintf(&b, "  %.6E", fixtureValue(table, col, row))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// writeHoleFixture writes omega, pcur, amp, phaseF and phaseG files with three
// channel columns plus a Hartree-Fock energy file into the default layout.
func writeHoleFixture(t *testing.T, fsys afero.Fs, root string, n, kappa, rows int) {
	t.Helper()
	hole, err := atom.NewHole("argon", n, kappa, nil)
	require.NoError(t, err)
	files := DefaultHoleFiles(root, hole)

	var omega strings.Builder
	omega.WriteString("# photon energy (Hartree)\n")
	for row := 0; row < rows; row++ {
		fmt.Fprintf(&omega, "%.6E\n", fixtureOmega(row))
	}
	writeTestFile(t, fsys, files.Omega, omega.String())
	writeTestFile(t, fsys, files.Pcur, formatChannelTable(tableRate, rows, 3))
	writeTestFile(t, fsys, files.Amp, formatChannelTable(tableAmp, rows, 3))
	writeTestFile(t, fsys, files.PhaseF, formatChannelTable(tablePhaseF, rows, 3))
	writeTestFile(t, fsys, files.PhaseG, formatChannelTable(tablePhaseG, rows, 3))

	var hf strings.Builder
	for i := 0; i < hole.RadialIndex()+1; i++ {
		fmt.Fprintf(&hf, "%.6f\n", -10.0-float64(i))
	}
	writeTestFile(t, fsys, files.HFEnergies, hf.String())
}

func defaultChannelFiles(t *testing.T, root string, n, kappa int) ChannelFiles {
	t.Helper()
	hole, err := atom.NewHole("argon", n, kappa, nil)
	require.NoError(t, err)
	return DefaultHoleFiles(root, hole).ChannelFiles
}

func pertPath(root string, kappa, radialIndex int, name string) string {
	return filepath.Join(PertDir(root, kappa, radialIndex), name)
}
