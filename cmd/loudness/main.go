// SPDX-License-Identifier: EPL-2.0

// Command loudness prints the normalized loudness profile of an audio
// file: one space-separated fixed-point value per spacing interval,
// loudest interval scaled to 1.00000.
//
//	loudness -input song.ogg -spacing 0.5 -trim
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/audiolay/mixdown"
	"github.com/audiolay/mixdown/audio"
	"github.com/audiolay/mixdown/profile"
)

func main() {
	var (
		input   = flag.String("input", "", "path to the audio file")
		spacing = flag.Float64("spacing", 0, "interval in seconds between loudness samples")
		trim    = flag.Bool("trim", false, "strip low-energy head and tail before measuring")
		topDB   = flag.Float64("top-db", profile.DefaultTopDB, "trim threshold in dB below the peak frame")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *input == "" {
		logger.Error("missing -input")
		os.Exit(1)
	}
	if *spacing <= 0 {
		logger.Error("missing or non-positive -spacing")
		os.Exit(1)
	}

	if c := mixdown.CheckDecode(audio.FormatForPath(*input)); !c.Available {
		logger.Error("input format unavailable", "file", *input, "reason", c.Reason)
		os.Exit(1)
	}

	values, err := mixdown.ProfileFile(*input, profile.Options{
		Spacing: *spacing,
		Trim:    *trim,
		TopDB:   *topDB,
	})
	if err != nil {
		logger.Error("profiling failed", "error", err)
		os.Exit(1)
	}

	fmt.Println(profile.FormatProfile(values))
}
