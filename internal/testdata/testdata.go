// Package testdata provides deterministic inputs and failing I/O stubs for tests.
package testdata

import (
	"crypto/sha3"
	"io"
)

// DRBG is a deterministic random bit generator based on SHAKE128.
type DRBG struct {
	h *sha3.SHAKE
}

// New returns a new DRBG instance initialized with the given customization string.
func New(customization string) *DRBG {
	h := sha3.NewSHAKE128()
	_, _ = h.Write([]byte(customization))
	return &DRBG{h}
}

// Data returns n bytes of deterministic data from the DRBG.
func (d *DRBG) Data(n int) []byte {
	b := make([]byte, n)
	_, _ = d.h.Read(b)
	return b
}

// Split cuts msg into consecutive pieces of pseudorandom length between 0 and limit bytes. The concatenation of the
// pieces is always msg.
func (d *DRBG) Split(msg []byte, limit int) [][]byte {
	var pieces [][]byte
	for len(msg) > 0 {
		n := min(int(d.Data(1)[0])%(limit+1), len(msg))
		pieces = append(pieces, msg[:n])
		msg = msg[n:]
	}
	return pieces
}

// Reader returns pseudorandom reader seeded with a value from this DRBG.
func (d *DRBG) Reader() io.Reader {
	h := sha3.NewSHAKE128()
	_, _ = h.Write(d.Data(32))
	return h
}
