// Package spectrum provides FFT-adjacent spectrum-domain utilities.
//
// The package does not implement an FFT itself. It operates on complex bins
// produced by an external FFT backend, turning them into one-sided amplitude
// spectra with matching bin frequencies, and offers a Goertzel evaluator for
// single bins when no FFT plan is available for a given length.
package spectrum
