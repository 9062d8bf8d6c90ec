// SPDX-License-Identifier: EPL-2.0

package profile

import "math"

// BucketRMS computes one exact RMS value per spacing-wide bucket of the
// mono sample sequence.
//
// The per-bucket mean square is taken from a float64 prefix sum of
// squared amplitudes with a leading zero, so each bucket is two lookups
// and a subtraction. This avoids the fencepost drift of re-slicing the
// signal per bucket and keeps long signals numerically stable; float32
// accumulation would lose low buckets to cancellation.
func BucketRMS(samples []float32, rate int, spacingSeconds float64) []float64 {
	n := len(samples)
	if n == 0 {
		return nil
	}

	spacing := int(math.Round(spacingSeconds * float64(rate)))
	if spacing < 1 {
		spacing = 1
	}

	prefix := make([]float64, n+1)
	for i, s := range samples {
		prefix[i+1] = prefix[i] + float64(s)*float64(s)
	}

	count := (n + spacing - 1) / spacing
	rms := make([]float64, count)
	for i := range rms {
		start := i * spacing
		end := start + spacing
		if end > n {
			end = n
		}
		length := end - start
		if length < 1 {
			length = 1
		}
		rms[i] = math.Sqrt((prefix[end] - prefix[start]) / float64(length))
	}

	return rms
}

// Normalize scales RMS values by their maximum, clamped to 1.0. A fully
// silent sequence (max 0) normalizes to all zeros rather than dividing
// by zero. At least one value equals 1.0 otherwise.
func Normalize(rms []float64) []float64 {
	out := make([]float64, len(rms))

	maxRMS := 0.0
	for _, v := range rms {
		if v > maxRMS {
			maxRMS = v
		}
	}
	if maxRMS == 0 {
		return out
	}

	for i, v := range rms {
		out[i] = math.Min(v/maxRMS, 1.0)
	}
	return out
}
