// SPDX-License-Identifier: EPL-2.0

// Package mixdown composites audio clips onto a single output timeline
// and measures normalized loudness over time.
//
// Two independent pipelines share no state:
//
//   - the mixer places N clips on one canvas with per-clip timing,
//     trimming, gain and playback-rate pitch control (package mix);
//   - the profiler produces one normalized RMS value per fixed-width
//     time bucket of a single signal (package profile).
//
// # Supported formats
//
// Decoding: WAV, MP3, Ogg Vorbis and AIFF through formats/{wav,mp3,
// vorbis,aiff}. Encoding: 16-bit PCM WAV. CheckDecode and CheckEncode
// report the built-in capabilities up front; nothing is probed or
// installed at run time.
//
// # Quick start
//
// Mix two clips, the second starting halfway through the first at half
// volume, and write the result:
//
//	plan, err := mix.NewPlan([]mix.ClipSpec{
//	    {Path: "a.ogg", Offset: 0, Length: 1},
//	    {Path: "b.ogg", Offset: 0.5, Length: 1, Volume: 0.5},
//	}, 44100)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := mixdown.MixToFile(plan, "out.wav", "wav", nil); err != nil {
//	    log.Fatal(err)
//	}
//
// Profile a file's loudness in half-second buckets:
//
//	values, err := mixdown.ProfileFile("out.wav", profile.Options{Spacing: 0.5})
//	fmt.Println(profile.FormatProfile(values))
//
// # Errors
//
// Boundary failures are sentinel-wrapped with the offending path:
// ErrUnreadableSource for decode failures, ErrWriteFailure for encode
// failures. Both are fatal; a single-shot batch mix or profile has no
// meaningful partial success, so nothing retries.
package mixdown
