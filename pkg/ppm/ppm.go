// Package ppm encodes and decodes the binary (P6) variant of the PPM raster
// format: an ASCII header of four whitespace-separated tokens followed by raw
// RGB bytes. Only the fixed 8-bit depth (max value 255) is supported.
package ppm

import (
	"fmt"
	"strconv"
)

const (
	// Magic identifies the binary PPM variant.
	Magic = "P6"
	// MaxVal is the only supported channel depth.
	MaxVal = 255
)

// Image is a decoded PPM raster. Pixels holds Width*Height RGB triplets as a
// flat buffer. Decode returns Pixels as a view into the input bytes, not a
// copy; callers must not mutate it while the input is still in use.
type Image struct {
	Width  int
	Height int
	Pixels []byte
}

// Encode serializes the image as P6 bytes: the header "P6\n<w> <h>\n255\n"
// followed by the pixel buffer verbatim.
func Encode(img Image) []byte {
	header := fmt.Sprintf("%s\n%d %d\n%d\n", Magic, img.Width, img.Height, MaxVal)
	out := make([]byte, 0, len(header)+len(img.Pixels))
	out = append(out, header...)
	out = append(out, img.Pixels...)
	return out
}

// Decode parses P6 bytes into an Image. The pixel buffer is borrowed from
// data. It fails with ErrInvalidPPM when a header token is missing or wrong,
// the dimensions do not parse, the depth is not 255, or the body length does
// not match Width*Height*3.
func Decode(data []byte) (Image, error) {
	magic, pos, err := nextToken(data, 0)
	if err != nil {
		return Image{}, err
	}
	if magic != Magic {
		return Image{}, fmt.Errorf("%w: magic %q, want %q", ErrInvalidPPM, magic, Magic)
	}

	widthTok, pos, err := nextToken(data, pos)
	if err != nil {
		return Image{}, err
	}
	width, err := strconv.Atoi(widthTok)
	if err != nil {
		return Image{}, fmt.Errorf("%w: width %q", ErrInvalidPPM, widthTok)
	}

	heightTok, pos, err := nextToken(data, pos)
	if err != nil {
		return Image{}, err
	}
	height, err := strconv.Atoi(heightTok)
	if err != nil {
		return Image{}, fmt.Errorf("%w: height %q", ErrInvalidPPM, heightTok)
	}

	if width < 0 || height < 0 {
		return Image{}, fmt.Errorf("%w: negative dimensions %dx%d", ErrInvalidPPM, width, height)
	}

	depthTok, pos, err := nextToken(data, pos)
	if err != nil {
		return Image{}, err
	}
	if depthTok != strconv.Itoa(MaxVal) {
		return Image{}, fmt.Errorf("%w: depth %q, only %d supported", ErrInvalidPPM, depthTok, MaxVal)
	}

	// The body starts one separator byte past the depth token.
	var pixels []byte
	if pos < len(data) {
		pixels = data[pos+1:]
	}
	if want := width * height * 3; len(pixels) != want {
		return Image{}, fmt.Errorf("%w: body is %d bytes, want %d for %dx%d",
			ErrInvalidPPM, len(pixels), want, width, height)
	}

	return Image{Width: width, Height: height, Pixels: pixels}, nil
}

// nextToken skips whitespace and returns the next token along with the
// position of the byte that terminated it.
func nextToken(data []byte, pos int) (string, int, error) {
	for pos < len(data) && isSpace(data[pos]) {
		pos++
	}
	if pos == len(data) {
		return "", pos, fmt.Errorf("%w: missing header token", ErrInvalidPPM)
	}
	start := pos
	for pos < len(data) && !isSpace(data[pos]) {
		pos++
	}
	return string(data[start:pos]), pos, nil
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
