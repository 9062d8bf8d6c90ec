// SPDX-License-Identifier: EPL-2.0

package profile

import (
	"fmt"
	"strings"

	"github.com/audiolay/mixdown/audio"
)

// Default analysis parameters for silence trimming.
const (
	DefaultTopDB       = 60.0
	DefaultFrameLength = 2048
	DefaultHopLength   = 512
)

// Options configures one profiling request.
type Options struct {
	// Spacing is the bucket width in seconds. Must be positive.
	Spacing float64

	// Trim enables silence trimming before bucketing.
	Trim bool

	// TopDB, FrameLength and HopLength tune the trimmer; zero values
	// take the defaults above.
	TopDB       float64
	FrameLength int
	HopLength   int
}

func (o Options) withDefaults() Options {
	if o.TopDB == 0 {
		o.TopDB = DefaultTopDB
	}
	if o.FrameLength == 0 {
		o.FrameLength = DefaultFrameLength
	}
	if o.HopLength == 0 {
		o.HopLength = DefaultHopLength
	}
	return o
}

// Profile computes the normalized loudness-over-time profile of sig:
// one value in [0, 1] per Spacing-wide interval, in chronological
// order, ceil(duration/spacing) values in total.
//
// Multi-channel signals are averaged to mono before measurement. When
// Trim is set, low-energy edges are removed first. An empty (possibly
// trimmed-to-original-empty) signal yields an empty profile; that is a
// defined terminal case, not an error.
func Profile(sig audio.Signal, opts Options) ([]float64, error) {
	if opts.Spacing <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrNonPositiveSpacing, opts.Spacing)
	}
	opts = opts.withDefaults()

	if opts.Trim {
		sig = TrimSilence(sig, opts.TopDB, opts.FrameLength, opts.HopLength)
	}

	if sig.Empty() {
		return nil, nil
	}

	mono := sig.ToMono()
	return Normalize(BucketRMS(mono.Samples, mono.Rate, opts.Spacing)), nil
}

// FormatProfile renders the profile output line: space-separated
// fixed-point values with five decimal places, chronological order.
func FormatProfile(values []float64) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.5f", v)
	}
	return b.String()
}
