// SPDX-License-Identifier: EPL-2.0

package mix

import "github.com/audiolay/mixdown/audio"

// ParamFloor is the epsilon floor for volume and pitch. Values at or
// below it are clamped up rather than rejected: silence and near-zero
// playback rates are valid artistic choices, and the floor keeps the
// gain finite in dB terms and the playback rate away from zero.
const ParamFloor = 1e-8

// ClipSpec places one piece of source material on the output timeline.
//
// Offset is the position on the timeline in seconds. Start and Length
// select the material in post-pitch wall-clock seconds. Volume is a
// linear gain scale and Pitch a playback-rate scale (>1 faster/higher,
// <1 slower/lower).
//
// Either Signal or Path identifies the material: a non-nil Signal is
// used directly, otherwise the mixer decodes Path through its decode
// collaborator.
type ClipSpec struct {
	Path   string
	Signal *audio.Signal

	Offset float64
	Start  float64
	Length float64
	Volume float64
	Pitch  float64
}

// clamped returns the spec with Volume and Pitch raised to ParamFloor.
func (c ClipSpec) clamped() ClipSpec {
	if c.Volume < ParamFloor {
		c.Volume = ParamFloor
	}
	if c.Pitch < ParamFloor {
		c.Pitch = ParamFloor
	}
	return c
}

// playDuration is the clip's wall-clock playback length in seconds:
// a pitch scale below 1 stretches the material in time.
func (c ClipSpec) playDuration() float64 {
	if c.Length <= 0 {
		return 0
	}
	return c.Length / c.Pitch
}
