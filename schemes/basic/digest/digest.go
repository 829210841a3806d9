// Package digest adapts the SHA-1 engine to the standard library's hash.Hash interface.
package digest

import (
	"encoding"
	"hash"

	"github.com/codahale/sha1ref"
)

const (
	// Size is the size, in bytes, of the digest.
	Size = sha1ref.Size

	// BlockSize is the block size, in bytes, of the hash.
	BlockSize = sha1ref.BlockSize
)

// New returns a new hash.Hash computing the SHA-1 checksum. The returned value also implements
// encoding.BinaryMarshaler and encoding.BinaryUnmarshaler.
func New() hash.Hash {
	return &digest{c: sha1ref.New()}
}

type digest struct {
	c *sha1ref.Context
}

func (d *digest) Write(p []byte) (n int, err error) {
	if err := d.c.Input(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Sum finalizes a copy of the context, so the caller can keep writing.
func (d *digest) Sum(b []byte) []byte {
	var out [Size]byte
	if err := d.c.Clone().Result(&out); err != nil {
		// Unreachable: the clone is never finalized, and only a 2^61-byte message can corrupt it through Write.
		panic(err)
	}
	return append(b, out[:]...)
}

func (d *digest) Reset() {
	_ = d.c.Reset()
}

func (d *digest) Size() int {
	return Size
}

func (d *digest) BlockSize() int {
	return BlockSize
}

func (d *digest) MarshalBinary() ([]byte, error) {
	return d.c.MarshalBinary()
}

func (d *digest) AppendBinary(b []byte) ([]byte, error) {
	return d.c.AppendBinary(b)
}

func (d *digest) UnmarshalBinary(b []byte) error {
	return d.c.UnmarshalBinary(b)
}

var (
	_ hash.Hash                  = (*digest)(nil)
	_ encoding.BinaryMarshaler   = (*digest)(nil)
	_ encoding.BinaryAppender    = (*digest)(nil)
	_ encoding.BinaryUnmarshaler = (*digest)(nil)
)
