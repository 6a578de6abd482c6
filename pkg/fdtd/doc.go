// Package fdtd implements a two-dimensional finite-difference time-domain
// solver for transverse-magnetic waves on a Yee grid.
//
// A Grid is built from a Config, edited with material inserts, and frozen by
// Setup, which derives the update coefficients and the perfectly matched
// layer that surrounds the interior. Setup returns a Solver; only a Solver can
// advance the fields. Editing the grid again or calling Setup a second time
// leaves any earlier Solver stale, and its stepping methods then fail with
// ErrNotReady.
//
// All arrays are flat row-major buffers indexed y*nx+x in physical-grid
// coordinates, where the interior starts at (L, L) and L is the PML depth.
// The package performs no I/O; callers export state through Snapshot.
package fdtd
