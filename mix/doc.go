// SPDX-License-Identifier: EPL-2.0

// Package mix composites audio clips onto a single output timeline.
//
// A Plan holds an ordered set of ClipSpecs plus the output sample rate
// and channel layout. For each clip the mixer decodes its source,
// applies Transform (playback-rate pitch shift, trim in post-pitch
// seconds, linear gain), brings the result to the plan rate and layout,
// and sums it into a silent canvas at round(offset * rate) frames.
//
//	plan, err := mix.NewPlan([]mix.ClipSpec{
//	    {Path: "a.ogg", Offset: 0, Length: 1},
//	    {Path: "b.ogg", Offset: 0.5, Length: 1, Volume: 0.5},
//	}, 44100)
//	...
//	mixer := mix.Mixer{Decode: decode, Progress: mix.WriteStatus(os.Stdout)}
//	canvas, err := mixer.Mix(plan)
//
// # Determinism
//
// Identical plans produce bit-identical canvases. The overlay is
// commutative addition applied in one sequential pass; the concurrent
// part of a mix run only prepares per-clip buffers, which touch no
// shared state.
//
// # Degenerate parameters
//
// A volume or pitch at or below ParamFloor is clamped up and the mix
// proceeds; requesting silence or an extremely slow playback rate is
// not an error. Shape errors are: parallel per-clip lists of unequal
// length fail plan construction with ErrShapeMismatch before any
// decoding starts.
package mix
