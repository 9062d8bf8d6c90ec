package wav

import "errors"

var (
	// ErrNotWavFile indicates the input is not a valid RIFF/WAVE stream.
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrOnlyPCMSupported indicates a compressed or non-PCM WAV variant.
	ErrOnlyPCMSupported = errors.New("only PCM WAV is supported")

	// ErrUnsupportedWavLayout indicates missing or malformed format chunks.
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
)
