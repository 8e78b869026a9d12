package onephoton

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/fortran_output_go/internal/atom"
	"github.com/user/fortran_output_go/internal/parser"
)

func newTestChannels(t *testing.T, fsys afero.Fs, n, kappa int) *Channels {
	t.Helper()
	energy := 1.0
	hole, err := atom.NewHole("argon", n, kappa, &energy)
	require.NoError(t, err)
	c, err := NewChannels(fsys, defaultChannelFiles(t, testRoot, n, kappa), hole)
	require.NoError(t, err)
	return c
}

func TestNewChannels_AllChannelsOpen(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeHoleFixture(t, fsys, testRoot, 3, -2, 4)

	c := newTestChannels(t, fsys, 3, -2)

	paths := c.IonisationPaths()
	require.Len(t, paths, 3)
	wantKappas := []int{-1, 2, -3}
	for i, p := range paths {
		assert.Equal(t, wantKappas[i], p.Kappa)
		assert.Equal(t, i, p.ColumnIndex)
	}
	assert.Len(t, c.AllIonisationPaths(), 3)
}

// A |kappa| = 1 hole has a closed channel in the first slot. The open
// channels keep the columns of their candidate positions.
func TestNewChannels_ClosedChannelKeepsColumn(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeHoleFixture(t, fsys, testRoot, 2, 1, 5)

	c := newTestChannels(t, fsys, 2, 1)

	all := c.AllIonisationPaths()
	require.Len(t, all, 2)
	assert.NotContains(t, all, 0)
	assert.Equal(t, 1, all[-1].ColumnIndex)
	assert.Equal(t, 2, all[2].ColumnIndex)

	rate, err := c.RawRate(-1)
	require.NoError(t, err)
	assert.Equal(t, fixtureColumn(tableRate, 1, 5), rate)

	rate, err = c.RawRate(2)
	require.NoError(t, err)
	assert.Equal(t, fixtureColumn(tableRate, 2, 5), rate)
}

func TestChannels_RawData(t *testing.T) {
	const rows = 6
	fsys := afero.NewMemMapFs()
	writeHoleFixture(t, fsys, testRoot, 3, -2, rows)

	c := newTestChannels(t, fsys, 3, -2)

	omega := c.RawOmegaData()
	require.Len(t, omega, rows)
	for i, w := range omega {
		assert.Equal(t, fixtureOmega(i), w)
	}
	assert.InDelta(t, fixtureOmega(2)*atom.HartreeToEV, c.OmegaEV()[2], 1e-9)

	accessors := []struct {
		name  string
		table int
		get   func(int) ([]float64, error)
	}{
		{"rate", tableRate, c.RawRate},
		{"amp", tableAmp, c.RawAmpData},
		{"phaseF", tablePhaseF, c.RawPhaseFData},
		{"phaseG", tablePhaseG, c.RawPhaseGData},
	}
	for _, acc := range accessors {
		t.Run(acc.name, func(t *testing.T) {
			for _, p := range c.IonisationPaths() {
				data, err := acc.get(p.Kappa)
				require.NoError(t, err)
				require.Len(t, data, len(omega))
				assert.Equal(t, fixtureColumn(acc.table, p.ColumnIndex, rows), data)
			}
		})
	}
}

func TestChannels_UnreachableKappa(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeHoleFixture(t, fsys, testRoot, 2, 1, 3)

	c := newTestChannels(t, fsys, 2, 1)

	for _, kappa := range []int{0, 1, -2, 5} {
		assert.False(t, c.HasIonisationPath(kappa))

		_, err := c.RawAmpData(kappa)
		require.ErrorIs(t, err, ErrChannelNotFound)

		var notFound *ChannelNotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, kappa, notFound.Kappa)
		assert.Equal(t, "2p_{1/2}", notFound.Hole)

		_, err = c.IonisationPath(kappa)
		require.ErrorIs(t, err, ErrChannelNotFound)
		_, err = c.RawRate(kappa)
		require.ErrorIs(t, err, ErrChannelNotFound)
		_, err = c.RawPhaseFData(kappa)
		require.ErrorIs(t, err, ErrChannelNotFound)
		_, err = c.RawPhaseGData(kappa)
		require.ErrorIs(t, err, ErrChannelNotFound)
	}
}

func TestChannels_ReturnsCopies(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeHoleFixture(t, fsys, testRoot, 3, -2, 3)
	c := newTestChannels(t, fsys, 3, -2)

	all := c.AllIonisationPaths()
	delete(all, -1)
	assert.True(t, c.HasIonisationPath(-1))

	omega := c.RawOmegaData()
	omega[0] = -1
	assert.Equal(t, fixtureOmega(0), c.RawOmegaData()[0])

	rate, err := c.RawRate(2)
	require.NoError(t, err)
	rate[0] = -1
	rate, err = c.RawRate(2)
	require.NoError(t, err)
	assert.Equal(t, fixtureValue(tableRate, 1, 0), rate[0])
}

func TestNewChannels_Errors(t *testing.T) {
	energy := 1.0
	hole, err := atom.NewHole("argon", 3, -2, &energy)
	require.NoError(t, err)
	files := defaultChannelFiles(t, testRoot, 3, -2)

	t.Run("missing file", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		writeHoleFixture(t, fsys, testRoot, 3, -2, 3)
		require.NoError(t, fsys.Remove(files.PhaseG))

		_, err := NewChannels(fsys, files, hole)
		require.ErrorIs(t, err, fs.ErrNotExist)
		var dataErr *parser.DataFileError
		require.ErrorAs(t, err, &dataErr)
		assert.Equal(t, files.PhaseG, dataErr.Path)
	})

	t.Run("too few channel columns", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		writeHoleFixture(t, fsys, testRoot, 3, -2, 3)
		writeTestFile(t, fsys, files.Amp, formatChannelTable(tableAmp, 3, 2))

		_, err := NewChannels(fsys, files, hole)
		require.ErrorIs(t, err, ErrTableShape)
	})

	t.Run("row count differs from energy grid", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		writeHoleFixture(t, fsys, testRoot, 3, -2, 3)
		writeTestFile(t, fsys, files.Pcur, formatChannelTable(tableRate, 4, 3))

		_, err := NewChannels(fsys, files, hole)
		require.ErrorIs(t, err, ErrTableShape)
	})

	t.Run("non numeric content", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		writeHoleFixture(t, fsys, testRoot, 3, -2, 3)
		writeTestFile(t, fsys, files.PhaseF, "1.0 NaNx 2 3\n")

		_, err := NewChannels(fsys, files, hole)
		var dataErr *parser.DataFileError
		require.ErrorAs(t, err, &dataErr)
		assert.Equal(t, 1, dataErr.Line)
	})
}
