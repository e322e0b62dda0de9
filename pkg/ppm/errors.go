package ppm

import "errors"

// ErrInvalidPPM indicates a malformed or unsupported PPM byte stream.
// Decode wraps it with the specific cause.
var ErrInvalidPPM = errors.New("invalid PPM")
