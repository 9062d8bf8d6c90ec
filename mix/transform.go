// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"math"

	"github.com/audiolay/mixdown/audio"
)

// Transform shapes one clip: playback-rate pitch shift, then trim, then
// gain, in that order.
//
// The pitch step reinterprets the signal's sample rate as rate*pitch
// (truncated to an integer) without touching the sample data, so speed
// and pitch change together. This is the cheap playback-rate transform,
// not a formant-preserving pitch shift. Content that took T seconds
// before takes T/pitch seconds after.
//
// The trim step extracts [start, start+length) measured against the
// pitch-adjusted signal, clamped to the available material; a start at
// or past the end, or a non-positive length, yields an empty Signal.
//
// The gain step scales every sample by volume. Volume and pitch below
// ParamFloor are clamped up, never rejected.
//
// The result keeps the post-pitch sample rate; bringing it to a
// canonical output rate is the caller's decision.
func Transform(sig audio.Signal, start, length, volume, pitch float64) audio.Signal {
	if volume < ParamFloor {
		volume = ParamFloor
	}
	if pitch < ParamFloor {
		pitch = ParamFloor
	}

	rate := int(float64(sig.Rate) * pitch)
	if rate < 1 {
		rate = 1
	}
	shifted := sig.WithRate(rate)

	if length <= 0 {
		return audio.Signal{Rate: rate, Channels: sig.Channels}
	}

	trimmed := shifted.SliceSeconds(start, start+length)

	if volume == 1.0 {
		return trimmed
	}
	return trimmed.Gain(volume)
}

// placementFrame converts a timeline offset in seconds to a canvas
// frame index.
func placementFrame(offset float64, rate int) int {
	return int(math.Round(offset * float64(rate)))
}
