package onephoton

import (
	"errors"
	"fmt"

	"github.com/user/fortran_output_go/internal/atom"
)

var (
	// ErrChannelNotFound is matched by every ChannelNotFoundError.
	ErrChannelNotFound = errors.New("ionisation channel not found")
	// ErrHoleNotLoaded is matched by every HoleNotLoadedError.
	ErrHoleNotLoaded = errors.New("hole not loaded")
	// ErrDiagNotLoaded is returned by the diagonal accessors before LoadDiagData succeeded.
	ErrDiagNotLoaded = errors.New("diagonal matrix elements and eigenvalues not loaded")
	// ErrTableShape is returned when a loaded table cannot hold the expected channels.
	ErrTableShape = errors.New("unexpected table shape")
)

// ChannelNotFoundError reports a final kappa that is not reachable from the hole.
type ChannelNotFoundError struct {
	Hole  string
	Kappa int
}

func (e *ChannelNotFoundError) Error() string {
	return fmt.Sprintf("final kappa %d is not within the ionisation paths of the %s hole", e.Kappa, e.Hole)
}

func (e *ChannelNotFoundError) Is(target error) bool { return target == ErrChannelNotFound }

// HoleNotLoadedError reports a query for a hole that has no channels yet.
type HoleNotLoadedError struct {
	Atom  string
	N     int
	Kappa int
}

func (e *HoleNotLoadedError) Error() string {
	return fmt.Sprintf("the %s %s hole is not loaded", e.Atom, atom.ConstructHoleName(e.N, e.Kappa))
}

func (e *HoleNotLoadedError) Is(target error) bool { return target == ErrHoleNotLoaded }
