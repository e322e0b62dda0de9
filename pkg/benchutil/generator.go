// Package benchutil provides deterministic synthetic payloads for benchmarks
// and testing.
package benchutil

import "math/rand"

// Payload returns n pseudo-random bytes. The same n and seed always produce
// the same bytes, so benchmark runs stay comparable.
func Payload(n int, seed int64) []byte {
	rng := rand.New(rand.NewSource(seed))
	buf := make([]byte, n)
	rng.Read(buf)
	return buf
}

// textAlphabet approximates the byte distribution of source and log files.
const textAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 .,:/-_\n"

// TextPayload returns n bytes of ASCII text-like data. Useful for exercising
// payloads with long runs of similar bytes rather than uniform noise.
func TextPayload(n int, seed int64) []byte {
	rng := rand.New(rand.NewSource(seed))
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = textAlphabet[rng.Intn(len(textAlphabet))]
	}
	return buf
}

// ZeroRunPayload returns n bytes where roughly half the content is zero runs.
// Zero bytes match the encoder's grid fill, which makes this the adversarial
// shape for the terminator scan.
func ZeroRunPayload(n int, seed int64) []byte {
	rng := rand.New(rand.NewSource(seed))
	buf := make([]byte, n)
	i := 0
	for i < n {
		run := 1 + rng.Intn(32)
		if run > n-i {
			run = n - i
		}
		if rng.Intn(2) == 0 {
			// Leave the run as zero fill.
			i += run
			continue
		}
		for j := 0; j < run; j++ {
			buf[i+j] = byte(1 + rng.Intn(255))
		}
		i += run
	}
	return buf
}
