// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"testing"
)

func TestResample_SameRatePassthrough(t *testing.T) {
	t.Parallel()

	sig := Signal{Rate: 44100, Channels: 1, Samples: []float32{0.1, 0.2, 0.3}}
	out := Resample(sig, 44100)

	if &out.Samples[0] != &sig.Samples[0] {
		t.Error("same-rate resample should not copy samples")
	}
}

func TestResample_PreservesDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		srcRate int
		dstRate int
	}{
		{name: "downsample", srcRate: 44100, dstRate: 22050},
		{name: "upsample", srcRate: 22050, dstRate: 44100},
		{name: "non-integer ratio", srcRate: 44100, dstRate: 48000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sig := Silence(tt.srcRate, 2, tt.srcRate) // one second
			out := Resample(sig, tt.dstRate)

			if out.Rate != tt.dstRate {
				t.Errorf("Rate = %d, want %d", out.Rate, tt.dstRate)
			}

			if out.Channels != 2 {
				t.Errorf("Channels = %d, want 2", out.Channels)
			}

			if d := out.Duration(); math.Abs(d-1.0) > 0.001 {
				t.Errorf("Duration() = %v, want 1.0", d)
			}
		})
	}
}

func TestResample_ConstantStaysConstant(t *testing.T) {
	t.Parallel()

	sig := Signal{Rate: 8000, Channels: 1, Samples: make([]float32, 8000)}
	for i := range sig.Samples {
		sig.Samples[i] = 0.5
	}

	out := Resample(sig, 16000)

	for i, s := range out.Samples {
		if math.Abs(float64(s)-0.5) > 1e-6 {
			t.Fatalf("Samples[%d] = %v, want 0.5", i, s)
		}
	}
}

func TestResample_SineStaysBounded(t *testing.T) {
	t.Parallel()

	src := Signal{Rate: 44100, Channels: 1, Samples: make([]float32, 44100)}
	for i := range src.Samples {
		src.Samples[i] = float32(math.Sin(2 * math.Pi * 440 * float64(i) / 44100))
	}

	out := Resample(src, 22050)

	for i, s := range out.Samples {
		if s < -1.2 || s > 1.2 {
			t.Fatalf("Samples[%d] = %v, outside interpolation bounds", i, s)
		}
	}
}

func TestResample_Deterministic(t *testing.T) {
	t.Parallel()

	src := Signal{Rate: 44100, Channels: 2, Samples: make([]float32, 2000)}
	for i := range src.Samples {
		src.Samples[i] = float32(math.Sin(float64(i) * 0.01))
	}

	a := Resample(src, 48000)
	b := Resample(src, 48000)

	if len(a.Samples) != len(b.Samples) {
		t.Fatalf("lengths differ: %d vs %d", len(a.Samples), len(b.Samples))
	}

	for i := range a.Samples {
		if a.Samples[i] != b.Samples[i] {
			t.Fatalf("Samples[%d] differs: %v vs %v", i, a.Samples[i], b.Samples[i])
		}
	}
}

func TestResample_Empty(t *testing.T) {
	t.Parallel()

	out := Resample(Signal{Rate: 44100, Channels: 1}, 22050)

	if !out.Empty() {
		t.Errorf("resampling empty signal produced %d samples", len(out.Samples))
	}

	if out.Rate != 22050 {
		t.Errorf("Rate = %d, want 22050", out.Rate)
	}
}
