// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"

	"github.com/audiolay/mixdown/utils"
)

// Resample converts sig to dstRate using Catmull-Rom cubic interpolation.
// Works on interleaved samples; preserves channel count and wall-clock
// duration. The same signal always resamples to the same output.
func Resample(sig Signal, dstRate int) Signal {
	if dstRate < 1 {
		dstRate = 1
	}
	if sig.Rate == dstRate || sig.Empty() {
		return sig.WithRate(dstRate)
	}

	srcFrames := sig.Frames()
	ratio := float64(sig.Rate) / float64(dstRate)
	dstFrames := int(math.Round(float64(srcFrames) / ratio))
	if dstFrames < 1 {
		dstFrames = 1
	}

	out := Signal{
		Rate:     dstRate,
		Channels: sig.Channels,
		Samples:  make([]float32, dstFrames*sig.Channels),
	}

	frame := func(i int) []float32 {
		// Clamp so edge frames are duplicated instead of read out of range.
		if i < 0 {
			i = 0
		}
		if i >= srcFrames {
			i = srcFrames - 1
		}
		return sig.Samples[i*sig.Channels : (i+1)*sig.Channels]
	}

	for f := 0; f < dstFrames; f++ {
		pos := float64(f) * ratio
		idx := int(pos)
		alpha := float32(pos - float64(idx))

		y0 := frame(idx - 1)
		y1 := frame(idx)
		y2 := frame(idx + 1)
		y3 := frame(idx + 2)

		base := f * sig.Channels
		for c := 0; c < sig.Channels; c++ {
			out.Samples[base+c] = utils.CubicInterpolate(y0[c], y1[c], y2[c], y3[c], alpha)
		}
	}

	return out
}
