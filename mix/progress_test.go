// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"strings"
	"testing"
)

func TestFormatStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		phase    Phase
		fraction float64
		want     string
	}{
		{phase: PhaseDownload, fraction: 0.5, want: "download$0.5"},
		{phase: PhaseDownload, fraction: 1, want: "download$1"},
		{phase: PhaseExport, fraction: 0.25, want: "export$0.25"},
		{phase: PhaseExport, fraction: 1, want: "export$1"},
	}

	for _, tt := range tests {
		if got := FormatStatus(tt.phase, tt.fraction); got != tt.want {
			t.Errorf("FormatStatus(%q, %v) = %q, want %q", tt.phase, tt.fraction, got, tt.want)
		}
	}
}

func TestWriteStatus(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	report := WriteStatus(&buf)

	report(PhaseDownload, 0.5)
	report(PhaseExport, 1)

	want := "download$0.5\nexport$1\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
