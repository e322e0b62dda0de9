// Package hilbert maps linear indexes onto a Hilbert space-filling curve.
//
// The curve of order k visits every cell of a 2^k x 2^k grid exactly once,
// and consecutive indexes always land on spatially adjacent cells. This is
// what keeps neighboring bytes of a payload near each other in the raster.
package hilbert

// Map converts a position along the Hilbert traversal of a 2^order x 2^order
// grid into the row-major pixel index of the cell it lands on.
//
// The function is pure and total. Callers must keep order small enough that
// 4^order fits in a uint64 (order <= 31 in practice, since pixel indexes are
// derived from byte offsets held in an int).
func Map(order uint, index uint64) uint64 {
	var x, y uint64
	t := index
	side := uint64(1) << order

	for s := uint64(1); s < side; s <<= 1 {
		rx := (t >> 1) & 1
		ry := (t ^ rx) & 1

		if ry == 0 {
			// Rotate the quadrant; reflect first when rx is set.
			if rx == 1 {
				x = s - 1 - x
				y = s - 1 - y
			}
			x, y = y, x
		}

		x += s * rx
		y += s * ry
		t >>= 2
	}

	return x + (y << order)
}

// MapByte converts a byte offset within a payload into the byte offset of the
// same channel slot inside the flat RGB grid buffer. Each pixel holds three
// channel bytes, so the pixel index is offset/3 and the channel is offset%3.
func MapByte(offset uint64, order uint) uint64 {
	pixel := Map(order, offset/3)
	return pixel*3 + offset%3
}
