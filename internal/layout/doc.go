// Package layout turns a year into a positioned scene: week rows, month
// blocks and the packed grid of months.
//
// Builders are pure. Each call allocates a fresh tree and identical inputs
// give value-equal trees, so callers rebuild instead of patching.
//
//	grid, err := layout.BuildGrid(2024, layout.DefaultMonthsOptions())
package layout
