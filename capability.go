// SPDX-License-Identifier: EPL-2.0

package mixdown

import "fmt"

// Capability is the result of an explicit, one-time codec check.
// Callers run it at startup instead of probing or mutating the process
// environment mid-run; this module never locates or installs external
// codec tooling.
type Capability struct {
	Available bool
	Reason    string
}

// CheckDecode reports whether a decoder for the format key is built in.
func CheckDecode(format string) Capability {
	if _, ok := DefaultRegistry().Get(format); ok {
		return Capability{Available: true}
	}
	return Capability{
		Reason: fmt.Sprintf("no decoder for format %q (have %v)", format, DefaultRegistry().Formats()),
	}
}

// CheckEncode reports whether an encoder for the format key is built in.
func CheckEncode(format string) Capability {
	if format == "wav" {
		return Capability{Available: true}
	}
	return Capability{
		Reason: fmt.Sprintf("no encoder for format %q (only wav encoding is built in)", format),
	}
}
