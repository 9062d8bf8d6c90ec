// SPDX-License-Identifier: EPL-2.0

// Command mixdown composites audio clips onto a single timeline and
// writes the result as a WAV file.
//
// Clips come either from parallel comma-separated lists:
//
//	mixdown -files a.ogg,b.ogg -offsets 0,0.5 -lengths 1,1 -volumes 1,0.5 -output out.wav
//
// or from a YAML plan file:
//
//	mixdown -plan session.yaml -output out.wav
//
// Progress is reported on stdout as machine-readable "<phase>$<fraction>"
// lines; the last "export" line marks completion.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/audiolay/mixdown"
	"github.com/audiolay/mixdown/audio"
	"github.com/audiolay/mixdown/mix"
)

func main() {
	var (
		files    = flag.String("files", "", "comma-separated input audio files")
		offsets  = flag.String("offsets", "", "comma-separated timeline offsets in seconds, one per file")
		starts   = flag.String("starts", "", "comma-separated head trims in seconds (optional)")
		lengths  = flag.String("lengths", "", "comma-separated clip durations in seconds, one per file")
		volumes  = flag.String("volumes", "", "comma-separated linear gain scales (optional)")
		pitches  = flag.String("pitches", "", "comma-separated playback-rate scales (optional)")
		planPath = flag.String("plan", "", "YAML plan file (alternative to the list flags)")
		output   = flag.String("output", "output.wav", "output file")
		format   = flag.String("format", "wav", "output container format")
		rate     = flag.Int("rate", 44100, "output sample rate in Hz")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if c := mixdown.CheckEncode(*format); !c.Available {
		logger.Error("output format unavailable", "format", *format, "reason", c.Reason)
		os.Exit(1)
	}

	plan, err := loadPlan(*planPath, *files, *offsets, *starts, *lengths, *volumes, *pitches, *rate)
	if err != nil {
		logger.Error("invalid mix plan", "error", err)
		os.Exit(1)
	}

	if len(plan.Clips) == 0 {
		logger.Error("no input clips given; use -files or -plan")
		os.Exit(1)
	}

	for _, clip := range plan.Clips {
		if c := mixdown.CheckDecode(audio.FormatForPath(clip.Path)); !c.Available {
			logger.Error("input format unavailable", "file", clip.Path, "reason", c.Reason)
			os.Exit(1)
		}
	}

	if err := mixdown.MixToFile(plan, *output, *format, mix.WriteStatus(os.Stdout)); err != nil {
		logger.Error("mix failed", "error", err)
		os.Exit(1)
	}

	logger.Info("mix written", "output", *output, "clips", len(plan.Clips),
		"duration_seconds", plan.TotalDuration())
}

// loadPlan builds the plan from either the YAML file or the parallel
// list flags. Shape validation happens here, before any decoding.
func loadPlan(planPath, files, offsets, starts, lengths, volumes, pitches string, rate int) (*mix.Plan, error) {
	if planPath != "" {
		return mix.LoadPlanFile(planPath)
	}

	paths := splitList(files)

	offsetVals, err := parseFloats("offsets", offsets)
	if err != nil {
		return nil, err
	}
	startVals, err := parseFloats("starts", starts)
	if err != nil {
		return nil, err
	}
	lengthVals, err := parseFloats("lengths", lengths)
	if err != nil {
		return nil, err
	}
	volumeVals, err := parseFloats("volumes", volumes)
	if err != nil {
		return nil, err
	}
	pitchVals, err := parseFloats("pitches", pitches)
	if err != nil {
		return nil, err
	}

	return mix.NewPlanFromLists(paths, offsetVals, startVals, lengthVals, volumeVals, pitchVals, rate)
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func parseFloats(name, s string) ([]float64, error) {
	parts := splitList(s)
	vals := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("-%s: %q is not a number", name, p)
		}
		vals = append(vals, v)
	}
	return vals, nil
}
