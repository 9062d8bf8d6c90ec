// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/audiolay/mixdown/audio"
)

// DecodeFunc resolves a clip path to a materialized Signal. It is the
// mixer's external decode collaborator; failures are fatal for the run.
type DecodeFunc func(path string) (audio.Signal, error)

// Mixer composites a Plan's clips onto one output canvas.
//
// Clip preparation (decode, transform, resample, channel harmonization)
// runs on a bounded worker pool; the overlay itself is one sequential
// pass over the prepared clips in plan order onto the exclusively owned
// canvas. Overlay is commutative addition, so the result is
// bit-identical for any clip order and any worker scheduling.
type Mixer struct {
	// Decode resolves clip paths. Only needed when a ClipSpec carries a
	// Path instead of a pre-decoded Signal.
	Decode DecodeFunc

	// Progress receives coarse milestones; nil disables reporting.
	Progress ProgressFunc

	// Workers bounds concurrent clip preparation. Zero means NumCPU.
	Workers int
}

// Mix renders the plan. The returned Signal is the finished canvas:
// silence of the plan's total duration at the plan rate, with every
// clip's transformed material summed in at its timeline offset.
// Material falling past the canvas end is truncated, not grown into.
func (m *Mixer) Mix(plan *Plan) (audio.Signal, error) {
	frames := placementFrame(plan.TotalDuration(), plan.Rate)
	canvas := audio.Silence(plan.Rate, plan.Channels, frames)

	prepared, err := m.prepare(plan)
	if err != nil {
		return audio.Signal{}, err
	}

	for i, clip := range plan.Clips {
		canvas.MixAt(prepared[i], placementFrame(clip.Offset, plan.Rate))
		m.report(PhaseExport, float64(i+1)/float64(len(plan.Clips)))
	}

	// A plan with no clips still completes.
	m.report(PhaseExport, 1)

	return canvas, nil
}

// prepare decodes and shapes every clip concurrently, returning results
// indexed by clip position. The first error wins; remaining work still
// drains before returning.
func (m *Mixer) prepare(plan *Plan) ([]audio.Signal, error) {
	n := len(plan.Clips)
	prepared := make([]audio.Signal, n)

	workers := m.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		done     int
	)

	jobs := make(chan int)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				sig, err := m.prepareClip(plan, plan.Clips[i])

				mu.Lock()
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}
				} else {
					prepared[i] = sig
					done++
					m.report(PhaseDownload, float64(done)/float64(n))
				}
				mu.Unlock()
			}
		}()
	}

	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return prepared, nil
}

// prepareClip produces the overlay-ready form of one clip: decoded,
// transformed, at the plan rate and channel layout.
func (m *Mixer) prepareClip(plan *Plan, clip ClipSpec) (audio.Signal, error) {
	var sig audio.Signal
	switch {
	case clip.Signal != nil:
		sig = *clip.Signal
	case m.Decode != nil:
		var err error
		sig, err = m.Decode(clip.Path)
		if err != nil {
			return audio.Signal{}, fmt.Errorf("clip %q: %w", clip.Path, err)
		}
	default:
		return audio.Signal{}, fmt.Errorf("clip %q: %w", clip.Path, ErrNoDecoder)
	}

	shaped := Transform(sig, clip.Start, clip.Length, clip.Volume, clip.Pitch)
	shaped = audio.Resample(shaped, plan.Rate)
	if shaped.Channels != plan.Channels {
		shaped = shaped.ToChannels(plan.Channels)
	}
	return shaped, nil
}

func (m *Mixer) report(phase Phase, fraction float64) {
	if m.Progress != nil {
		m.Progress(phase, fraction)
	}
}
