// Package sysmem detects total system RAM.
//
// The encoder materializes the whole pixel grid in memory, so the CLI sizes
// its allocation budget from the machine's RAM. Detection uses
// platform-specific calls with a safe default on unsupported platforms.
package sysmem

// DefaultMemoryBytes is the fallback memory value (4 GiB) used when
// platform-specific detection fails or is unsupported.
const DefaultMemoryBytes uint64 = 4 * 1024 * 1024 * 1024

// Result holds the result of memory detection.
type Result struct {
	// TotalBytes is the total system memory in bytes.
	TotalBytes uint64

	// Reliable indicates whether the value came from a platform-specific
	// call (true) or is the fallback default (false).
	Reliable bool
}

// Total returns the total system memory, falling back to DefaultMemoryBytes
// with Reliable=false when detection is unavailable.
func Total() Result {
	bytes, ok := totalSystemMemory()
	if !ok || bytes == 0 {
		return Result{TotalBytes: DefaultMemoryBytes, Reliable: false}
	}
	return Result{TotalBytes: bytes, Reliable: true}
}

// TotalBytes returns just the memory value. Use Total when the caller needs
// to know whether the value is reliable.
func TotalBytes() uint64 {
	return Total().TotalBytes
}
