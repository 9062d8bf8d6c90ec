// SPDX-License-Identifier: EPL-2.0

package mixdown

import (
	"github.com/audiolay/mixdown/audio"
	"github.com/audiolay/mixdown/mix"
	"github.com/audiolay/mixdown/profile"
)

// MixToFile renders plan and writes the result to outPath in the given
// container format. progress may be nil. This is the whole exporter
// pipeline in one call:
//
//	plan, _ := mix.NewPlanFromLists(files, offsets, nil, lengths, nil, nil, 44100)
//	err := mixdown.MixToFile(plan, "out.wav", "wav", mix.WriteStatus(os.Stdout))
func MixToFile(plan *mix.Plan, outPath, format string, progress mix.ProgressFunc) error {
	mixer := mix.Mixer{
		Decode:   DecodeFile,
		Progress: progress,
	}

	canvas, err := mixer.Mix(plan)
	if err != nil {
		return err
	}

	if err := EncodeFile(canvas, outPath, format); err != nil {
		return err
	}

	// The last export line marks completion once the file is on disk.
	if progress != nil {
		progress(mix.PhaseExport, 1)
	}

	return nil
}

// Mix renders plan in memory using the built-in decoders.
func Mix(plan *mix.Plan, progress mix.ProgressFunc) (audio.Signal, error) {
	mixer := mix.Mixer{
		Decode:   DecodeFile,
		Progress: progress,
	}
	return mixer.Mix(plan)
}

// ProfileFile decodes path and computes its normalized loudness
// profile.
func ProfileFile(path string, opts profile.Options) ([]float64, error) {
	sig, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}
	return profile.Profile(sig, opts)
}
