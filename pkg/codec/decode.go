package codec

import (
	"fmt"
	"math/bits"

	"github.com/eunmann/hilbertpix/pkg/hilbert"
	"github.com/eunmann/hilbertpix/pkg/ppm"
)

// Decode parses a P6 image produced by Encode and gathers the payload back
// into its original byte order. PPM header problems surface as
// ppm.ErrInvalidPPM; a well-formed image that is not square, whose side is
// not a power of two, or that carries no terminator fails with
// ErrInvalidData.
func Decode(data []byte) ([]byte, error) {
	img, err := ppm.Decode(data)
	if err != nil {
		return nil, err
	}

	if img.Width != img.Height {
		return nil, fmt.Errorf("%w: image %dx%d is not square", ErrInvalidData, img.Width, img.Height)
	}
	if bits.OnesCount(uint(img.Width)) != 1 {
		return nil, fmt.Errorf("%w: side %d is not a power of two", ErrInvalidData, img.Width)
	}
	order := uint(bits.TrailingZeros(uint(img.Width)))

	n, err := dataLength(img.Pixels, order)
	if err != nil {
		return nil, err
	}

	payload := make([]byte, n)
	for i := range payload {
		payload[i] = img.Pixels[hilbert.MapByte(uint64(i), order)]
	}
	return payload, nil
}

// dataLength locates the terminator by reading channel slots in reverse curve
// order. The byte offset holding the terminator is the payload length: every
// slot past it is zero fill, so the first marker seen from the end is the one
// the encoder wrote.
func dataLength(pixels []byte, order uint) (int, error) {
	if len(pixels) == 0 {
		return 0, nil
	}
	for off := len(pixels) - 1; off >= 0; off-- {
		if pixels[hilbert.MapByte(uint64(off), order)] == Terminator {
			return off, nil
		}
	}
	return 0, fmt.Errorf("%w: no terminator marker", ErrInvalidData)
}
