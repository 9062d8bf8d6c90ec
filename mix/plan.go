// SPDX-License-Identifier: EPL-2.0

package mix

import "fmt"

// Plan is an ordered set of clips sharing one output sample rate and
// channel layout. Construct plans through NewPlan or NewPlanFromLists
// so every clip carries clamped, strictly positive volume and pitch.
type Plan struct {
	Clips    []ClipSpec
	Rate     int
	Channels int
}

// DefaultChannels is the canvas layout used when a plan does not pick one.
const DefaultChannels = 2

// NewPlan builds a plan over clips at the given output sample rate.
func NewPlan(clips []ClipSpec, rate int) (*Plan, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d", ErrInvalidRate, rate)
	}

	p := &Plan{
		Clips:    make([]ClipSpec, len(clips)),
		Rate:     rate,
		Channels: DefaultChannels,
	}
	for i, c := range clips {
		p.Clips[i] = c.clamped()
	}
	return p, nil
}

// NewPlanFromLists builds a plan from parallel per-clip lists, the shape
// the command surface hands over. offsets and lengths must match paths
// in count; starts, volumes and pitches may each be empty, meaning
// all-default (0, 1.0, 1.0). Any other count disagreement is a fatal
// ErrShapeMismatch, reported before any decoding starts.
func NewPlanFromLists(paths []string, offsets, starts, lengths, volumes, pitches []float64, rate int) (*Plan, error) {
	n := len(paths)

	if len(offsets) != n || len(lengths) != n {
		return nil, fmt.Errorf("%w: %d files, %d offsets, %d lengths",
			ErrShapeMismatch, n, len(offsets), len(lengths))
	}

	optional := func(name string, vals []float64, def float64) ([]float64, error) {
		if len(vals) == 0 {
			filled := make([]float64, n)
			for i := range filled {
				filled[i] = def
			}
			return filled, nil
		}
		if len(vals) != n {
			return nil, fmt.Errorf("%w: %d files, %d %s", ErrShapeMismatch, n, len(vals), name)
		}
		return vals, nil
	}

	var err error
	if starts, err = optional("starts", starts, 0); err != nil {
		return nil, err
	}
	if volumes, err = optional("volumes", volumes, 1.0); err != nil {
		return nil, err
	}
	if pitches, err = optional("pitches", pitches, 1.0); err != nil {
		return nil, err
	}

	clips := make([]ClipSpec, n)
	for i := range clips {
		clips[i] = ClipSpec{
			Path:   paths[i],
			Offset: offsets[i],
			Start:  starts[i],
			Length: lengths[i],
			Volume: volumes[i],
			Pitch:  pitches[i],
		}
	}

	return NewPlan(clips, rate)
}

// TotalDuration is the output timeline length in seconds: the maximum
// over all clips of offset plus post-pitch playback duration. It is
// never shorter than any single clip's contribution.
func (p *Plan) TotalDuration() float64 {
	total := 0.0
	for _, c := range p.Clips {
		if end := c.Offset + c.playDuration(); end > total {
			total = end
		}
	}
	return total
}
