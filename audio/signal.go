// SPDX-License-Identifier: EPL-2.0

package audio

import "math"

// Signal is a fully materialized audio buffer: interleaved float32
// samples in [-1, 1], a sample rate in Hz and a channel count.
// Signals returned by decoders and transforms are treated as immutable;
// every operation below returns a fresh Signal and leaves the receiver
// untouched.
type Signal struct {
	Samples  []float32
	Rate     int
	Channels int
}

// Silence returns a zero-filled Signal of frames frames.
func Silence(rate, channels, frames int) Signal {
	if frames < 0 {
		frames = 0
	}
	return Signal{
		Samples:  make([]float32, frames*channels),
		Rate:     rate,
		Channels: channels,
	}
}

// Frames returns the number of sample frames (samples per channel).
func (s Signal) Frames() int {
	if s.Channels <= 0 {
		return 0
	}
	return len(s.Samples) / s.Channels
}

// Duration returns the playback length in seconds.
func (s Signal) Duration() float64 {
	if s.Rate <= 0 {
		return 0
	}
	return float64(s.Frames()) / float64(s.Rate)
}

// Empty reports whether the signal holds no samples.
func (s Signal) Empty() bool { return len(s.Samples) == 0 }

// Clone returns a deep copy of the signal.
func (s Signal) Clone() Signal {
	out := s
	out.Samples = make([]float32, len(s.Samples))
	copy(out.Samples, s.Samples)
	return out
}

// WithRate reinterprets the sample data at a different rate without
// touching the samples. This is the playback-rate pitch transform:
// raising the rate speeds playback up and raises pitch together.
func (s Signal) WithRate(rate int) Signal {
	if rate < 1 {
		rate = 1
	}
	out := s
	out.Rate = rate
	return out
}

// Gain returns a copy with every sample scaled by volume.
func (s Signal) Gain(volume float64) Signal {
	out := s.Clone()
	g := float32(volume)
	for i := range out.Samples {
		out.Samples[i] *= g
	}
	return out
}

// SliceSeconds extracts the sub-range [from, to) measured in seconds.
// The range is clamped to the available material; a from at or past the
// end yields an empty Signal with the same rate and channel count.
func (s Signal) SliceSeconds(from, to float64) Signal {
	frames := s.Frames()
	lo := secondsToFrames(from, s.Rate)
	hi := secondsToFrames(to, s.Rate)
	if lo < 0 {
		lo = 0
	}
	if hi > frames {
		hi = frames
	}
	if lo >= hi {
		return Signal{Rate: s.Rate, Channels: s.Channels}
	}
	out := Signal{Rate: s.Rate, Channels: s.Channels}
	out.Samples = make([]float32, (hi-lo)*s.Channels)
	copy(out.Samples, s.Samples[lo*s.Channels:hi*s.Channels])
	return out
}

// MixAt adds src into the receiver's samples starting at dstFrame,
// writing only the overlap of both buffers. Material that would land
// past the end of the receiver is dropped, never grown into. Addition
// is commutative, so the order in which several sources are mixed onto
// the same canvas does not change the result.
//
// MixAt mutates the receiver's sample buffer in place; it is the one
// operation reserved for a canvas that the caller exclusively owns.
func (s Signal) MixAt(src Signal, dstFrame int) {
	if s.Channels != src.Channels {
		src = src.ToChannels(s.Channels)
	}
	srcFrame := 0
	if dstFrame < 0 {
		srcFrame = -dstFrame
		dstFrame = 0
	}
	n := src.Frames() - srcFrame
	if avail := s.Frames() - dstFrame; n > avail {
		n = avail
	}
	if n <= 0 {
		return
	}
	dst := s.Samples[dstFrame*s.Channels:]
	from := src.Samples[srcFrame*s.Channels:]
	for i := 0; i < n*s.Channels; i++ {
		dst[i] += from[i]
	}
}

// ToMono averages all channels into one.
func (s Signal) ToMono() Signal {
	if s.Channels == 1 {
		return s
	}
	frames := s.Frames()
	out := Signal{Rate: s.Rate, Channels: 1, Samples: make([]float32, frames)}
	inv := float32(1.0) / float32(s.Channels)
	for f := 0; f < frames; f++ {
		sum := float32(0)
		base := f * s.Channels
		for c := 0; c < s.Channels; c++ {
			sum += s.Samples[base+c]
		}
		out.Samples[f] = sum * inv
	}
	return out
}

// ToChannels converts the signal to n channels: a mismatched layout is
// first downmixed to mono, then replicated across the n channels.
func (s Signal) ToChannels(n int) Signal {
	if n < 1 {
		n = 1
	}
	if s.Channels == n {
		return s
	}
	mono := s.ToMono()
	if n == 1 {
		return mono
	}
	frames := mono.Frames()
	out := Signal{Rate: s.Rate, Channels: n, Samples: make([]float32, frames*n)}
	for f := 0; f < frames; f++ {
		v := mono.Samples[f]
		base := f * n
		for c := 0; c < n; c++ {
			out.Samples[base+c] = v
		}
	}
	return out
}

// secondsToFrames converts a position in seconds to a frame index at
// rate, rounding to the nearest frame.
func secondsToFrames(sec float64, rate int) int {
	return int(math.Round(sec * float64(rate)))
}
