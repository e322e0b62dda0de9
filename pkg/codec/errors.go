package codec

import "errors"

// ErrInvalidData indicates a structurally valid PPM image that does not carry
// an encoded payload: non-square, side length not a power of two, or no
// terminator marker in the pixel data.
var ErrInvalidData = errors.New("invalid encoded data")
