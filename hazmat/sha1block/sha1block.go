// Package sha1block implements the SHA-1 compression function as specified in FIPS PUB 180-1.
//
// This is a low-level primitive. It performs no padding and keeps no length; callers are responsible for feeding
// whole 64-byte blocks and for finalization.
package sha1block

// BlockSize is the size, in bytes, of a SHA-1 message block.
const BlockSize = 64

// Initial hash values.
const (
	Init0 = 0x67452301
	Init1 = 0xEFCDAB89
	Init2 = 0x98BADCFE
	Init3 = 0x10325476
	Init4 = 0xC3D2E1F0
)

// Round constants for the four 20-round stages.
const (
	K0 = 0x5A827999
	K1 = 0x6ED9EBA1
	K2 = 0x8F1BBCDC
	K3 = 0xCA62C1D6
)

// Block compresses each complete 64-byte block of p into the state h. Trailing bytes that do not fill a block are
// ignored.
func Block(h *[5]uint32, p []byte) {
	block(h, p)
}

// expand fills the 80-word message schedule for one 64-byte block. Words 0-15 are assembled big-endian from the
// block, one byte at a time, so the result does not depend on host byte order or alignment.
func expand(w *[80]uint32, p []byte) {
	_ = p[BlockSize-1]
	for t := range 16 {
		j := t * 4
		w[t] = uint32(p[j])<<24 | uint32(p[j+1])<<16 | uint32(p[j+2])<<8 | uint32(p[j+3])
	}
	for t := 16; t < 80; t++ {
		w[t] = rotl(w[t-3]^w[t-8]^w[t-14]^w[t-16], 1)
	}
}
