// Package source provides audio producers that feed a capture queue at
// real-time cadence: a sine generator for demos and tests, and a WAV file
// player standing in for a live input device.
package source
