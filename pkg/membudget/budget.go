// Package membudget bounds the codec's working-set allocation.
//
// Encoding materializes the whole RGB grid before any output is written, so
// a small input can demand a much larger allocation (the grid rounds up to
// the next power-of-two square). The budget lets the CLI refuse such jobs up
// front instead of thrashing or dying on allocation.
package membudget

import (
	"errors"
	"fmt"

	"github.com/eunmann/hilbertpix/pkg/humanfmt"
	"github.com/eunmann/hilbertpix/pkg/sysmem"
)

// Source indicates how the memory budget was determined.
type Source string

const (
	// SourceAuto50Pct indicates the budget was set to 50% of detected RAM.
	SourceAuto50Pct Source = "auto-50pct"
	// SourceDefault indicates the budget used the fallback default.
	SourceDefault Source = "default"
	// SourceCLI indicates the budget was set via CLI flag.
	SourceCLI Source = "cli"
	// SourceEnv indicates the budget was set via environment variable.
	SourceEnv Source = "env"
)

// Budget is a fixed allocation ceiling. The pipelines are single-threaded and
// allocate once up front, so a plain check suffices; there is no reservation
// or release protocol.
type Budget struct {
	total  uint64
	source Source
}

// New creates a Budget with the given ceiling.
func New(total uint64, source Source) *Budget {
	return &Budget{total: total, source: source}
}

// FromSystemRAM creates a Budget set to 50% of detected system RAM. When
// detection is unreliable the source is SourceDefault and the ceiling is half
// of sysmem's fallback value.
func FromSystemRAM() *Budget {
	result := sysmem.Total()
	source := SourceAuto50Pct
	if !result.Reliable {
		source = SourceDefault
	}
	return New(result.TotalBytes/2, source)
}

// Total returns the budget ceiling in bytes.
func (b *Budget) Total() uint64 {
	return b.total
}

// Source returns how the budget was determined.
func (b *Budget) Source() Source {
	return b.source
}

// Check returns an error when an n-byte working set would exceed the budget.
func (b *Budget) Check(n uint64) error {
	if n > b.total {
		return fmt.Errorf("working set of %s exceeds memory budget of %s (source %s)",
			humanfmt.Bytes(int64(n)), humanfmt.Bytes(int64(b.total)), b.source)
	}
	return nil
}

// ParseHumanSize parses a human-readable size string (e.g., "4GiB", "512MB").
// Supported suffixes: B, KB, KiB, MB, MiB, GB, GiB, TB, TiB.
func ParseHumanSize(s string) (uint64, error) {
	if s == "" {
		return 0, errors.New("empty size string")
	}

	// Find where the number ends
	numEnd := 0
	for i, c := range s {
		if (c < '0' || c > '9') && c != '.' {
			numEnd = i
			break
		}
		numEnd = i + 1
	}

	numStr := s[:numEnd]
	suffix := s[numEnd:]

	var num float64
	if _, err := fmt.Sscanf(numStr, "%f", &num); err != nil {
		return 0, fmt.Errorf("invalid number: %s", numStr)
	}

	var multiplier float64
	switch suffix {
	case "", "B":
		multiplier = 1.0
	case "KB":
		multiplier = 1000
	case "KiB", "K":
		multiplier = 1024
	case "MB":
		multiplier = 1000 * 1000
	case "MiB", "M":
		multiplier = 1024 * 1024
	case "GB":
		multiplier = 1000 * 1000 * 1000
	case "GiB", "G":
		multiplier = 1024 * 1024 * 1024
	case "TB":
		multiplier = 1000 * 1000 * 1000 * 1000
	case "TiB", "T":
		multiplier = 1024 * 1024 * 1024 * 1024
	default:
		return 0, fmt.Errorf("unknown size suffix: %s", suffix)
	}

	return uint64(num * multiplier), nil
}
