package onephoton

import (
	"log/slog"
	"maps"
	"sync"

	"github.com/spf13/afero"

	"github.com/user/fortran_output_go/internal/atom"
)

// HoleKey identifies a loaded hole.
type HoleKey struct {
	N     int
	Kappa int
}

// OnePhoton stores the one-photon simulation data of one atom.
//
// Holes and diagonal data are loaded at most once; a repeated load is a no-op
// unless Reload is requested. Loads are serialised, reads may run concurrently.
type OnePhoton struct {
	mu sync.RWMutex

	atomName string
	// IR photon energy used in the simulations, in Hartree
	omegaIR float64

	fs     afero.Fs
	logger *slog.Logger

	channels    map[HoleKey]*Channels
	numChannels int

	diagEigenvalues    []complex128
	diagMatrixElements []complex128
	diagLoaded         bool
}

// Option configures a OnePhoton.
type Option func(*OnePhoton)

// WithFs sets the filesystem the data files are read from.
func WithFs(fsys afero.Fs) Option {
	return func(o *OnePhoton) {
		if fsys != nil {
			o.fs = fsys
		}
	}
}

// WithLogger sets the logger. If nil, uses slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *OnePhoton) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New returns an empty registry for atomName.
func New(atomName string, omegaIR float64, opts ...Option) *OnePhoton {
	o := &OnePhoton{
		atomName: atomName,
		omegaIR:  omegaIR,
		fs:       afero.NewOsFs(),
		logger:   slog.Default(),
		channels: make(map[HoleKey]*Channels),
	}
	for _, opt := range opts {
		opt(o)
	}
	o.logger = o.logger.With(slog.String("atom", atomName))
	return o
}

// AtomName returns the atom this registry was created for.
func (o *OnePhoton) AtomName() string { return o.atomName }

// OmegaIR returns the IR photon energy in Hartree.
func (o *OnePhoton) OmegaIR() float64 { return o.omegaIR }

// LoadHoleOptions controls LoadHole. Empty file paths fall back to
// DefaultHoleFiles.
type LoadHoleOptions struct {
	Files HoleFiles
	// BindingEnergy, if set, is used instead of loading it from the output.
	BindingEnergy *float64
	Reload        bool
}

// LoadHole creates the hole (n, kappa), identifies its ionisation paths and
// loads their raw data from dataRoot. Nothing happens if the hole is already
// loaded and opts.Reload is false. A failed reload keeps the previous data.
func (o *OnePhoton) LoadHole(n, kappa int, dataRoot string, opts LoadHoleOptions) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	key := HoleKey{N: n, Kappa: kappa}
	_, isLoaded := o.channels[key]
	if isLoaded && !opts.Reload {
		return nil
	}

	hole, err := atom.NewHole(o.atomName, n, kappa, opts.BindingEnergy)
	if err != nil {
		return err
	}
	logger := o.logger.With(slog.String("hole", hole.Name))
	if isLoaded {
		logger.Info("reloading hole")
	}

	files := opts.Files.withDefaults(DefaultHoleFiles(dataRoot, hole))

	if opts.BindingEnergy == nil {
		if err := hole.LoadBindingEnergy(o.fs, files.HFEnergies, files.Omega, files.SPEkin); err != nil {
			return err
		}
	}

	channels, err := NewChannels(o.fs, files.ChannelFiles, hole)
	if err != nil {
		return err
	}

	o.channels[key] = channels
	if !isLoaded {
		o.numChannels++
	}
	energy, _ := hole.BindingEnergy()
	logger.Debug("loaded hole",
		slog.Int("n", n),
		slog.Int("kappa", kappa),
		slog.Int("paths", len(channels.order)),
		slog.Float64("binding_energy", energy),
		slog.String("pcur", files.Pcur),
	)
	return nil
}

// IsHoleLoaded reports whether channels exist for (n, kappa).
func (o *OnePhoton) IsHoleLoaded(n, kappa int) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	_, ok := o.channels[HoleKey{N: n, Kappa: kappa}]
	return ok
}

// AssertHoleLoaded returns a HoleNotLoadedError if (n, kappa) is not loaded.
func (o *OnePhoton) AssertHoleLoaded(n, kappa int) error {
	if !o.IsHoleLoaded(n, kappa) {
		return &HoleNotLoadedError{Atom: o.atomName, N: n, Kappa: kappa}
	}
	return nil
}

// NumChannels returns how many holes have been loaded.
func (o *OnePhoton) NumChannels() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.numChannels
}

// ChannelsForHole returns the channels of the hole (n, kappa).
func (o *OnePhoton) ChannelsForHole(n, kappa int) (*Channels, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	c, ok := o.channels[HoleKey{N: n, Kappa: kappa}]
	if !ok {
		return nil, &HoleNotLoadedError{Atom: o.atomName, N: n, Kappa: kappa}
	}
	return c, nil
}

// AllChannels returns a copy of the index of loaded holes.
func (o *OnePhoton) AllChannels() map[HoleKey]*Channels {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return maps.Clone(o.channels)
}

// ChannelLabels returns "<hole> to <final state>" for every ionisation path
// of the hole (n, kappa), in column order.
func (o *OnePhoton) ChannelLabels(n, kappa int) ([]string, error) {
	channels, err := o.ChannelsForHole(n, kappa)
	if err != nil {
		return nil, err
	}
	holeName := channels.Hole().Name
	paths := channels.IonisationPaths()
	labels := make([]string, 0, len(paths))
	for _, p := range paths {
		labels = append(labels, holeName+" to "+p.Name)
	}
	return labels, nil
}
