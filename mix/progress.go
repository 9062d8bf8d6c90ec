// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"fmt"
	"io"
	"strconv"
)

// Phase names a coarse milestone of a mix run.
type Phase string

const (
	// PhaseDownload covers acquiring and decoding source material.
	PhaseDownload Phase = "download"
	// PhaseExport covers compositing and writing the output.
	PhaseExport Phase = "export"
)

// ProgressFunc receives coarse progress milestones. fraction is in
// [0, 1]. Callbacks run on the mixer's goroutines; implementations that
// share state must synchronize. A nil ProgressFunc disables reporting.
type ProgressFunc func(phase Phase, fraction float64)

// FormatStatus renders the machine-readable status line for a
// milestone: "<phase>$<fraction>". Consumers tolerate repeated lines
// and treat the last export line as completion.
func FormatStatus(phase Phase, fraction float64) string {
	return string(phase) + "$" + strconv.FormatFloat(fraction, 'g', -1, 64)
}

// WriteStatus emits a FormatStatus line to w. It returns a ProgressFunc
// suitable for Mixer.Progress.
func WriteStatus(w io.Writer) ProgressFunc {
	return func(phase Phase, fraction float64) {
		fmt.Fprintln(w, FormatStatus(phase, fraction))
	}
}
