package sha1block

import "math/bits"

func rotl(x uint32, k int) uint32 {
	return bits.RotateLeft32(x, k)
}

func ch(b, c, d uint32) uint32 { return (b & c) | (^b & d) }

func parity(b, c, d uint32) uint32 { return b ^ c ^ d }

func maj(b, c, d uint32) uint32 { return (b & c) | (b & d) | (c & d) }

// blockGeneric is the sequential 80-round formulation of the compression function.
func blockGeneric(h *[5]uint32, p []byte) {
	var w [80]uint32

	for len(p) >= BlockSize {
		expand(&w, p)

		a, b, c, d, e := h[0], h[1], h[2], h[3], h[4]

		for t := range 80 {
			var f, k uint32
			switch {
			case t < 20:
				f, k = ch(b, c, d), K0
			case t < 40:
				f, k = parity(b, c, d), K1
			case t < 60:
				f, k = maj(b, c, d), K2
			default:
				f, k = parity(b, c, d), K3
			}
			temp := rotl(a, 5) + e + w[t] + k + f
			a, b, c, d, e = temp, a, rotl(b, 30), c, d
		}

		h[0] += a
		h[1] += b
		h[2] += c
		h[3] += d
		h[4] += e

		p = p[BlockSize:]
	}
}
