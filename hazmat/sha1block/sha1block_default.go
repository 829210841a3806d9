//go:build !purego

package sha1block

func block(h *[5]uint32, p []byte) {
	blockUnrolled(h, p)
}
