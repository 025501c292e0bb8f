// Package probeio reads probe-placement instances and writes results.
//
// Text format (line oriented, whitespace separated):
//
//	H W                 grid height then width
//	a00 a01 ... a0W-1   H rows of W integer altitudes
//	...
//	N                   declared probe count (informational)
//	r0 r1 ... rK-1      probe ranges; K is taken from this line
//
// Blank lines are ignored. A declared count that disagrees with the list is
// tolerated and reported through Instance.DeclaredProbes.
//
// JSON format:
//
//	{"grid": [[a00, a01, ...], ...], "probes": [r0, r1, ...]}
//
// Output is a single line: "peaks altitudeSum placedAltitude".
//
// Errors identify the failing stage and wrap one of ErrDimensions, ErrMatrix,
// ErrProbeCount, ErrProbeList, ErrCapacity or ErrJSON; inspect them with
// errors.Is.
package probeio
