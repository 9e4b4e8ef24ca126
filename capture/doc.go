// Package capture holds the producer side of the meter: reducing device
// blocks to mono, queueing them in a bounded drop-oldest queue that the audio
// callback can push to without waiting on the analyser, and assembling the
// fixed-length, right-aligned analysis window the consumer reads each tick.
package capture
