// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio decoding.
//
// The decoder wraps github.com/go-audio/aiff and streams 16-bit PCM as
// an audio.Source with float32 samples in [-1.0, 1.0]:
//
//	decoder := aiff.Decoder{}
//	f, _ := os.Open("clip.aif")
//	src, err := decoder.Decode(f)
//
// Only 16-bit PCM AIFF is accepted; other depths return
// ErrOnlyPCM16bitSupported. AIFF-C compression is not supported.
package aiff
