// SPDX-License-Identifier: EPL-2.0

// Package profile measures normalized loudness over time.
//
// Profile splits a signal into fixed-width time buckets, computes each
// bucket's exact RMS amplitude through a float64 prefix sum, and scales
// the sequence by its maximum so the loudest bucket reads 1.0:
//
//	values, err := profile.Profile(sig, profile.Options{
//	    Spacing: 0.5,
//	    Trim:    true,
//	})
//	fmt.Println(profile.FormatProfile(values))
//
// TrimSilence optionally removes low-energy head and tail regions
// before measurement, gated at a dB distance from the peak analysis
// frame. A fully silent signal profiles to all zeros, and an empty
// signal to an empty profile; neither is an error.
package profile
