// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio decoding and encoding.
//
// Decoding wraps github.com/go-audio/wav and streams PCM as an
// audio.Source with float32 samples in [-1.0, 1.0]. 8, 16, 24 and
// 32-bit PCM inputs are normalized by their bit depth:
//
//	decoder := wav.Decoder{}
//	f, _ := os.Open("clip.wav")
//	src, err := decoder.Decode(f)
//
// Encoding writes a materialized audio.Signal as 16-bit PCM:
//
//	out, _ := os.Create("mix.wav")
//	err := wav.Encode(out, canvas)
//
// WAV is the only container this module encodes; the remaining formats
// packages decode only.
package wav
