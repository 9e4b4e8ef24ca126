// Package meter drives the consumer side of the band meter: each tick drains
// the capture queue, assembles an analysis window, computes band levels and
// maps them to display percentages.
//
// The queue lock is held only while draining; windowing, the transform and
// rendering run without it, so a slow renderer never blocks the producer.
package meter
