// Package probeplace places a handful of ranged observation probes on a small
// altitude grid so that together they observe as many cells as possible.
//
// Layout:
//
//	terrain/      — the altitude Grid and 64-bit CellSet
//	visibility/   — radial horizon sweep and the probe×cell observation Table
//	placement/    — exact branch-and-bound search and outcome ranking
//	probeio/      — text and JSON instance readers, result writer
//	cmd/probeplace — batch binary: stdin (or -in FILE) to one result line
//
// Result ranking, most significant first: more observed cells, then a higher
// altitude sum over the observed cells, then a lower altitude sum over the
// cells holding a probe.
//
// Quick start:
//
//	g, _ := terrain.NewGrid([][]int{{0, 0, 9, 0, 0}})
//	res, _ := placement.Solve(g, []int{1, 4})
//	fmt.Println(res.Peaks, res.AltitudeSum, res.PlacedAltitude) // 5 9 0
//
// Capacity: at most 64 cells and 8 probes.
package probeplace
