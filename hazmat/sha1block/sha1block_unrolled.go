package sha1block

// blockUnrolled computes the same function as blockGeneric, two rounds per loop iteration.
//
// Each iteration computes round t into tb and round t+1 into ta without the intermediate register rotation: after two
// rounds E has become the old C, D the old rotl(B, 30), and C the old rotl(A, 30).
func blockUnrolled(h *[5]uint32, p []byte) {
	var w [80]uint32

	for len(p) >= BlockSize {
		expand(&w, p)

		a, b, c, d, e := h[0], h[1], h[2], h[3], h[4]

		for t := 0; t < 20; t += 2 {
			tb := rotl(a, 5) + e + w[t] + K0 + ((b & c) | (^b & d))
			b30 := rotl(b, 30)
			ta := rotl(tb, 5) + d + w[t+1] + K0 + ((a & b30) | (^a & c))
			e, d, c = c, b30, rotl(a, 30)
			a, b = ta, tb
		}

		for t := 20; t < 40; t += 2 {
			tb := rotl(a, 5) + e + w[t] + K1 + (b ^ c ^ d)
			b30 := rotl(b, 30)
			ta := rotl(tb, 5) + d + w[t+1] + K1 + (a ^ b30 ^ c)
			e, d, c = c, b30, rotl(a, 30)
			a, b = ta, tb
		}

		for t := 40; t < 60; t += 2 {
			tb := rotl(a, 5) + e + w[t] + K2 + ((b & c) | (b & d) | (c & d))
			b30 := rotl(b, 30)
			ta := rotl(tb, 5) + d + w[t+1] + K2 + ((a & b30) | (a & c) | (b30 & c))
			e, d, c = c, b30, rotl(a, 30)
			a, b = ta, tb
		}

		for t := 60; t < 80; t += 2 {
			tb := rotl(a, 5) + e + w[t] + K3 + (b ^ c ^ d)
			b30 := rotl(b, 30)
			ta := rotl(tb, 5) + d + w[t+1] + K3 + (a ^ b30 ^ c)
			e, d, c = c, b30, rotl(a, 30)
			a, b = ta, tb
		}

		h[0] += a
		h[1] += b
		h[2] += c
		h[3] += d
		h[4] += e

		p = p[BlockSize:]
	}
}
