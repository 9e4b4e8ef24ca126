// Package buffer provides a reusable float32 sample buffer and a pool of them.
//
// Audio callbacks hand over blocks of device-determined size at a steady
// cadence; recycling their storage through a Pool keeps the producer path
// free of steady-state allocations once buffers have grown to the block size.
package buffer
