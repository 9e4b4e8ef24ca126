// Package analysis turns an analysis window into per-band display levels.
//
// An [Analyzer] windows the samples (Hann by default), takes a real FFT and
// reduces the one-sided amplitude spectrum to one RMS level in dBFS per
// [Band], clamped to a floor. A [Mapper] then maps those levels to display
// percentages with a gamma curve so quiet bands remain visible.
//
// Constructors validate their configuration and fail fast; the per-tick
// methods are total and return floor or zero values for degenerate input.
package analysis
