// SPDX-License-Identifier: EPL-2.0

package profile

import (
	"github.com/audiolay/mixdown/audio"
	"github.com/audiolay/mixdown/utils"
)

// TrimSilence strips low-energy head and tail regions, typically codec
// priming and padding that would skew loudness readings at the edges.
//
// The signal is split into analysis frames of frameLength samples
// advanced by hopLength (mono-averaged when multi-channel). A frame
// qualifies when its mean-square energy sits within topDB of the peak
// frame's. The returned Signal spans the first through last qualifying
// frame. When nothing qualifies (a fully silent signal), the input is
// returned untouched: trimming never produces an empty signal out of a
// non-empty one.
//
// Trimming is idempotent: the peak frame survives the cut and the kept
// edge frames stay on the same hop grid, so a second pass removes
// nothing.
func TrimSilence(sig audio.Signal, topDB float64, frameLength, hopLength int) audio.Signal {
	if sig.Empty() || frameLength <= 0 || hopLength <= 0 {
		return sig
	}

	mono := sig.ToMono()
	n := len(mono.Samples)

	var energies []float64
	for start := 0; start < n; start += hopLength {
		end := start + frameLength
		if end > n {
			end = n
		}
		sum := 0.0
		for _, s := range mono.Samples[start:end] {
			sum += float64(s) * float64(s)
		}
		energies = append(energies, sum/float64(end-start))
	}

	peak := 0.0
	for _, e := range energies {
		if e > peak {
			peak = e
		}
	}
	if peak == 0 {
		return sig
	}

	first, last := -1, -1
	for i, e := range energies {
		if utils.PowerToDB(e/peak) > -topDB {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return sig
	}

	lo := first * hopLength
	hi := last*hopLength + frameLength
	if hi > n {
		hi = n
	}

	out := audio.Signal{Rate: sig.Rate, Channels: sig.Channels}
	out.Samples = make([]float32, (hi-lo)*sig.Channels)
	copy(out.Samples, sig.Samples[lo*sig.Channels:hi*sig.Channels])
	return out
}
