// SPDX-License-Identifier: MIT

package device

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Features is the subset of host CPU capabilities that selects the cluster
// lane width.
type Features struct {
	HasAVX512    bool
	HasAVX2      bool
	HasAVX       bool
	HasSSE2      bool
	HasNEON      bool
	Architecture string
}

// DetectFeatures reports the vector features of the current process.
func DetectFeatures() Features {
	return Features{
		HasAVX512:    cpu.X86.HasAVX512,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX:       cpu.X86.HasAVX,
		HasSSE2:      cpu.X86.HasSSE2,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}

// Lanes returns the number of float64 values one vector register holds on
// this CPU, or fallbackLanes when no known vector unit is present.
func (f Features) Lanes() int {
	switch {
	case f.HasAVX512:
		return 8
	case f.HasAVX2, f.HasAVX:
		return 4
	case f.HasSSE2, f.HasNEON:
		return 2
	default:
		return fallbackLanes
	}
}

// String renders the architecture and its widest vector extension,
// e.g. "amd64+avx2" or "arm64+neon".
func (f Features) String() string {
	var sb strings.Builder
	sb.WriteString(f.Architecture)
	switch {
	case f.HasAVX512:
		sb.WriteString("+avx512")
	case f.HasAVX2:
		sb.WriteString("+avx2")
	case f.HasAVX:
		sb.WriteString("+avx")
	case f.HasSSE2:
		sb.WriteString("+sse2")
	case f.HasNEON:
		sb.WriteString("+neon")
	}

	return sb.String()
}
