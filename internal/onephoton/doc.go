// Package onephoton indexes one-photon ionisation output of the Fortran
// solver by hole quantum numbers.
//
// A Channels value owns the raw tables for a single hole and maps every
// reachable final kappa to its column in those tables. OnePhoton is the
// per-atom registry of loaded holes together with the atom-wide diagonal
// eigenvalues and matrix elements.
package onephoton
