package capture

import "github.com/cwbudde/algo-bandmeter/dsp/core"

// FrameCount returns the number of whole frames in n interleaved samples.
// A channel count below 2 means the samples are already mono.
func FrameCount(n, channels int) int {
	if channels <= 1 {
		return n
	}
	return n / channels
}

// ReduceInterleaved returns the per-frame mean of an interleaved block.
// channels <= 1 is treated as already mono and returns a copy; a trailing
// partial frame is ignored.
func ReduceInterleaved(samples []float32, channels int) []float32 {
	return ReduceInto(nil, samples, channels)
}

// ReduceInto is [ReduceInterleaved] writing into dst, which is reused when it
// has enough capacity. It is the allocation-free form used by audio callbacks.
func ReduceInto(dst, samples []float32, channels int) []float32 {
	frames := FrameCount(len(samples), channels)
	dst = core.EnsureLen32(dst, frames)

	switch {
	case channels <= 1:
		copy(dst, samples)
	case channels == 2:
		for i := range dst {
			dst[i] = (samples[2*i] + samples[2*i+1]) * 0.5
		}
	default:
		inv := 1 / float32(channels)
		for i := range dst {
			frame := samples[i*channels : (i+1)*channels]
			var sum float32
			for _, v := range frame {
				sum += v
			}
			dst[i] = sum * inv
		}
	}

	return dst
}

// ReduceFrames averages a frames-by-channels block. A frame with no channels
// contributes a zero sample.
func ReduceFrames(frames [][]float32) []float32 {
	out := make([]float32, len(frames))
	for i, frame := range frames {
		switch len(frame) {
		case 0:
		case 1:
			out[i] = frame[0]
		default:
			var sum float32
			for _, v := range frame {
				sum += v
			}
			out[i] = sum / float32(len(frame))
		}
	}
	return out
}
