// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio decoding.
//
// The decoder wraps github.com/hajimehoshi/go-mp3 and exposes the
// 16-bit little-endian PCM it produces as an audio.Source with float32
// samples in [-1.0, 1.0]. go-mp3 always emits two channels:
//
//	decoder := mp3.Decoder{}
//	f, _ := os.Open("clip.mp3")
//	src, err := decoder.Decode(f)
package mp3
