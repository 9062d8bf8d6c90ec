// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// MinDB is the floor returned for non-positive amplitudes, standing in
// for -infinity dB.
const MinDB = -200.0

// LinearToDB converts a linear amplitude ratio to decibels.
// Returns MinDB for values <= 0.
func LinearToDB(linear float64) float64 {
	if linear <= 0 {
		return MinDB
	}
	return 20.0 * math.Log10(linear)
}

// DBToLinear converts a decibel value to a linear amplitude ratio.
// Values <= MinDB return 0.
func DBToLinear(db float64) float64 {
	if db <= MinDB {
		return 0
	}
	return math.Pow(10.0, db/20.0)
}

// PowerToDB converts a power ratio (amplitude squared) to decibels.
// Returns MinDB for values <= 0.
func PowerToDB(power float64) float64 {
	if power <= 0 {
		return MinDB
	}
	return 10.0 * math.Log10(power)
}
