// Package grid builds uniform sampling grids.
//
// A grid is the half-open interval [start, end) cut into instants spaced
// 1/frequency apart. The end instant is never part of the grid.
package grid
