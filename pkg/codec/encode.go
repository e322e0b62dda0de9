// Package codec converts arbitrary byte streams into square RGB rasters and
// back. Bytes are placed along a Hilbert curve so that neighboring bytes of
// the payload stay spatially close in the image, and a terminator marker one
// slot past the payload makes the original length recoverable on decode.
package codec

import (
	"fmt"
	"math"

	"github.com/eunmann/hilbertpix/pkg/hilbert"
	"github.com/eunmann/hilbertpix/pkg/ppm"
)

// Terminator is the sentinel byte written at the channel slot immediately
// following the last payload byte in curve order.
const Terminator = 0xFF

// Plan describes the grid the encoder builds for a given payload length.
type Plan struct {
	// Order is the Hilbert curve order; the grid side is 2^Order.
	Order uint
	// Side is the grid side length in pixels.
	Side int
	// GridBytes is the size of the flat RGB buffer (3 * Side * Side).
	GridBytes int
}

// PlanFor computes the smallest power-of-two square grid holding
// payloadLen/3 + 1 pixels. The extra pixel reserves room for the terminator.
func PlanFor(payloadLen int) Plan {
	pixels := payloadLen/3 + 1
	order := uint(math.Ceil(math.Log2(math.Sqrt(float64(pixels)))))
	side := 1 << order
	return Plan{
		Order:     order,
		Side:      side,
		GridBytes: 3 * side * side,
	}
}

// Encode scatters payload into a Hilbert-ordered RGB grid, writes the
// terminator one slot past the end, and serializes the grid as P6 bytes.
func Encode(payload []byte) ([]byte, error) {
	plan := PlanFor(len(payload))
	grid := make([]byte, plan.GridBytes)

	for i, b := range payload {
		grid[hilbert.MapByte(uint64(i), plan.Order)] = b
	}

	term := hilbert.MapByte(uint64(len(payload)), plan.Order)
	if term >= uint64(len(grid)) {
		// The sizing formula reserves one pixel past the last triplet, so
		// this can only fire on an arithmetic bug.
		return nil, fmt.Errorf("terminator slot %d outside %d-byte grid for %d-byte payload",
			term, len(grid), len(payload))
	}
	grid[term] = Terminator

	return ppm.Encode(ppm.Image{Width: plan.Side, Height: plan.Side, Pixels: grid}), nil
}
