// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// planFile is the on-disk YAML shape of a mix plan.
type planFile struct {
	SampleRate int            `yaml:"sample_rate"`
	Channels   int            `yaml:"channels"`
	Clips      []planFileClip `yaml:"clips"`
}

type planFileClip struct {
	File   string  `yaml:"file"`
	Offset float64 `yaml:"offset"`
	Start  float64 `yaml:"start"`
	Length float64 `yaml:"length"`
	// Volume and Pitch default to 1.0 when omitted or zero; an explicit
	// near-silent volume can be expressed as any value below ParamFloor.
	Volume float64 `yaml:"volume"`
	Pitch  float64 `yaml:"pitch"`
}

func (f *planFile) validate() error {
	if f.SampleRate <= 0 {
		return fmt.Errorf("%w: sample_rate %d", ErrInvalidRate, f.SampleRate)
	}
	for i, c := range f.Clips {
		if c.File == "" {
			return fmt.Errorf("clip %d: missing file", i)
		}
		if c.Offset < 0 {
			return fmt.Errorf("clip %d (%s): negative offset %v", i, c.File, c.Offset)
		}
		if c.Length <= 0 {
			return fmt.Errorf("clip %d (%s): non-positive length %v", i, c.File, c.Length)
		}
	}
	return nil
}

// LoadPlanFile reads a YAML plan description:
//
//	sample_rate: 44100
//	channels: 2
//	clips:
//	  - file: intro.ogg
//	    offset: 0.0
//	    length: 4.5
//	  - file: bed.ogg
//	    offset: 2.0
//	    start: 1.0
//	    length: 10.0
//	    volume: 0.5
//	    pitch: 1.2
func LoadPlanFile(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file %s: %w", path, err)
	}

	var f planFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing plan file %s: %w", path, err)
	}

	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("plan file %s: %w", path, err)
	}

	clips := make([]ClipSpec, len(f.Clips))
	for i, c := range f.Clips {
		volume, pitch := c.Volume, c.Pitch
		if volume == 0 {
			volume = 1.0
		}
		if pitch == 0 {
			pitch = 1.0
		}
		clips[i] = ClipSpec{
			Path:   c.File,
			Offset: c.Offset,
			Start:  c.Start,
			Length: c.Length,
			Volume: volume,
			Pitch:  pitch,
		}
	}

	plan, err := NewPlan(clips, f.SampleRate)
	if err != nil {
		return nil, err
	}
	if f.Channels > 0 {
		plan.Channels = f.Channels
	}
	return plan, nil
}
