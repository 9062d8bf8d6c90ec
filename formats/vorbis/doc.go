// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio decoding.
//
// The decoder wraps github.com/jfreymuth/oggvorbis, which already
// produces float32 samples, so decoding is a frame-count bookkeeping
// passthrough:
//
//	decoder := vorbis.Decoder{}
//	f, _ := os.Open("clip.ogg")
//	src, err := decoder.Decode(f)
//
// Ogg Vorbis is the container the mixdown exporter historically worked
// with, so this package is the most exercised decoder of the set.
package vorbis
