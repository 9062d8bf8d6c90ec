// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/audiolay/mixdown/audio"
	"github.com/audiolay/mixdown/utils"
)

// Encode writes sig to w as a 16-bit PCM WAV file. Samples outside
// [-1, 1] are clamped during the float-to-PCM conversion.
func Encode(w io.WriteSeeker, sig audio.Signal) error {
	channels := sig.Channels
	if channels < 1 {
		channels = 1
	}

	enc := gowav.NewEncoder(w, sig.Rate, 16, channels, 1)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sig.Rate,
		},
		SourceBitDepth: 16,
	}

	// Convert and write in chunks to bound the conversion buffer.
	const chunkSize = 8192
	data := make([]int, 0, min(len(sig.Samples), chunkSize))

	if len(sig.Samples) == 0 {
		// Still emit a header-only file.
		buf.Data = data
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	for i := 0; i < len(sig.Samples); i += chunkSize {
		end := min(i+chunkSize, len(sig.Samples))
		data = data[:0]
		for _, s := range sig.Samples[i:end] {
			data = append(data, int(utils.Float32ToInt16(s)))
		}
		buf.Data = data
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
