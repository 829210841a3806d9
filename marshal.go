package sha1ref

import (
	"encoding/binary"

	"github.com/codahale/sha1ref/hazmat/sha1block"
)

// The serialized state matches crypto/sha1: magic, five state words, the block buffer padded to 64 bytes and the
// message length in bytes, all big-endian.
const (
	magic         = "sha\x01"
	marshaledSize = len(magic) + 5*4 + BlockSize + 8
)

// MarshalBinary returns a snapshot of an in-progress computation which UnmarshalBinary (or crypto/sha1) can resume.
// Finalized contexts fail with ErrState, corrupted contexts with their stored error.
func (c *Context) MarshalBinary() ([]byte, error) {
	return c.AppendBinary(make([]byte, 0, marshaledSize))
}

// AppendBinary appends the snapshot produced by MarshalBinary to b.
func (c *Context) AppendBinary(b []byte) ([]byte, error) {
	if c == nil {
		return nil, ErrNullArgument
	}
	if err := c.check(); err != nil {
		return nil, err
	}
	if c.finalized {
		return nil, ErrState
	}

	b = append(b, magic...)
	for _, v := range c.h {
		b = binary.BigEndian.AppendUint32(b, v)
	}
	b = append(b, c.block[:c.n]...)
	b = append(b, make([]byte, BlockSize-c.n)...)
	b = binary.BigEndian.AppendUint64(b, c.length>>3)
	return b, nil
}

// UnmarshalBinary restores a snapshot produced by MarshalBinary, replacing any state in c.
func (c *Context) UnmarshalBinary(b []byte) error {
	if c == nil {
		return ErrNullArgument
	}
	if len(b) != marshaledSize || string(b[:len(magic)]) != magic {
		return ErrInvalidState
	}
	b = b[len(magic):]

	n := binary.BigEndian.Uint64(b[5*4+BlockSize:])
	if n > maxBytes {
		return ErrInvalidState
	}

	_ = c.Reset()
	for i := range c.h {
		c.h[i] = binary.BigEndian.Uint32(b[i*4:])
	}
	b = b[5*4:]
	c.n = int(n % sha1block.BlockSize)
	copy(c.block[:c.n], b)
	c.length = n << 3
	return nil
}
