// SPDX-License-Identifier: EPL-2.0

package mixdown

import (
	"fmt"
	"os"
	"sync"

	"github.com/audiolay/mixdown/audio"
	"github.com/audiolay/mixdown/formats/aiff"
	"github.com/audiolay/mixdown/formats/mp3"
	"github.com/audiolay/mixdown/formats/vorbis"
	"github.com/audiolay/mixdown/formats/wav"
)

var (
	defaultRegistry     *audio.Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the registry holding every built-in decoder,
// keyed by the file extensions they serve.
func DefaultRegistry() *audio.Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = audio.NewRegistry()
		defaultRegistry.Register("wav", wav.Decoder{})
		defaultRegistry.Register("mp3", mp3.Decoder{})
		defaultRegistry.Register("ogg", vorbis.Decoder{})
		defaultRegistry.Register("aif", aiff.Decoder{})
		defaultRegistry.Register("aiff", aiff.Decoder{})
	})
	return defaultRegistry
}

// DecodeFile opens path, picks a decoder by extension and materializes
// the whole stream. The file handle is released before returning; any
// failure wraps ErrUnreadableSource with the offending path.
func DecodeFile(path string) (audio.Signal, error) {
	format := audio.FormatForPath(path)
	dec, ok := DefaultRegistry().Get(format)
	if !ok {
		return audio.Signal{}, fmt.Errorf("%w: %s (%w: %q)",
			ErrUnreadableSource, path, ErrUnsupportedFormat, format)
	}

	f, err := os.Open(path)
	if err != nil {
		return audio.Signal{}, fmt.Errorf("%w: %s: %w", ErrUnreadableSource, path, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return audio.Signal{}, fmt.Errorf("%w: %s: %w", ErrUnreadableSource, path, err)
	}
	defer src.Close()

	sig, err := audio.ReadAll(src)
	if err != nil {
		return audio.Signal{}, fmt.Errorf("%w: %s: %w", ErrUnreadableSource, path, err)
	}

	return sig, nil
}

// EncodeFile writes sig to path in the given container format. Only
// "wav" encoding is built in; anything else wraps ErrUnsupportedFormat.
// I/O failures wrap ErrWriteFailure with the offending path.
func EncodeFile(sig audio.Signal, path, format string) error {
	if format != "wav" {
		return fmt.Errorf("%w: %s: %w: %q", ErrWriteFailure, path, ErrUnsupportedFormat, format)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailure, path, err)
	}

	if err := wav.Encode(f, sig); err != nil {
		f.Close()
		return fmt.Errorf("%w: %s: %w", ErrWriteFailure, path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailure, path, err)
	}

	return nil
}
