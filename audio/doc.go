// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level audio primitives shared by the
// mixing and profiling pipelines.
//
// # Signal
//
// Signal is the fully materialized audio value used everywhere above the
// decoder layer: interleaved float32 samples in [-1.0, 1.0] plus a sample
// rate and a channel count. Signals behave as immutable values; every
// transformation (Gain, SliceSeconds, WithRate, ToMono, Resample) returns
// a new Signal. The single in-place operation, MixAt, is reserved for an
// output canvas that its caller exclusively owns.
//
// # Source and decoding
//
// The Source interface is the streaming decode surface implemented by the
// formats subpackages:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadAll drains a Source into a Signal for the batch pipelines. The
// Registry maps format keys to decoders and FormatForPath resolves a
// file extension to a format key:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	d, _ := registry.Get(audio.FormatForPath("clip.wav"))
//
// # Resampling
//
// Resample converts a Signal between sample rates using Catmull-Rom
// cubic interpolation. It preserves wall-clock duration, so a Signal
// whose rate was reinterpreted for a playback-rate pitch shift keeps its
// shifted duration and pitch when brought to a canonical output rate.
//
// # Sample format
//
// Samples are float32 in [-1.0, 1.0]: 0.0 is silence, ±1.0 full scale.
// The range is not clamped by these primitives; overlaying several
// signals may exceed it and downstream PCM encoding clips.
package audio
