// Package sha1ref implements an incremental SHA-1 message digest as specified in FIPS PUB 180-1.
//
// A Context is reset to the standard initial hash values, fed any number of Input calls and finalized exactly once by
// Result, which pads the message, compresses the final block(s) and emits the 160-bit digest. Misuse (input after
// finalization, a message longer than 2^64-1 bits) corrupts the context: every later call fails with the stored error
// until Reset.
//
// SHA-1 is cryptographically broken and must not be used where collision resistance matters.
package sha1ref

import (
	"encoding/binary"

	"github.com/codahale/sha1ref/hazmat/sha1block"
)

const (
	// Size is the size, in bytes, of a SHA-1 digest.
	Size = 20

	// BlockSize is the size, in bytes, of a SHA-1 message block.
	BlockSize = sha1block.BlockSize
)

// maxBytes is the longest message, in bytes, whose bit length fits the 64-bit length field.
const maxBytes = 1<<61 - 1

// Context holds the running state of one digest computation. The zero value is ready for input and equivalent to a
// freshly reset Context. A Context must not be used concurrently by multiple goroutines.
type Context struct {
	h         [5]uint32
	block     [BlockSize]byte
	n         int    // bytes buffered in block, always < BlockSize
	length    uint64 // message length in bits
	finalized bool
	err       error
	ready     bool // false only for the zero value
}

// New returns a Context ready for input.
func New() *Context {
	c := new(Context)
	_ = c.Reset()
	return c
}

// Sum returns the SHA-1 digest of data.
func Sum(data []byte) [Size]byte {
	var c Context
	_ = c.Input(data)
	d, _ := c.Digest()
	return d
}

// Reset initializes c to the standard SHA-1 initial state, discarding any buffered input, computed digest or stored
// error.
func (c *Context) Reset() error {
	if c == nil {
		return ErrNullArgument
	}

	c.h = [5]uint32{sha1block.Init0, sha1block.Init1, sha1block.Init2, sha1block.Init3, sha1block.Init4}
	clear(c.block[:])
	c.n = 0
	c.length = 0
	c.finalized = false
	c.err = nil
	c.ready = true
	return nil
}

// Input appends p to the message. It may be called any number of times with any split of the message; the digest only
// depends on the concatenation of all inputs.
//
// Empty input always succeeds and changes nothing. Otherwise Input fails with ErrState once the context has been finalized, and with ErrInputTooLong if the total message would
// exceed 2^64-1 bits. Both failures are stored: every later call returns them, wrapped as ErrCorrupted, until Reset.
func (c *Context) Input(p []byte) error {
	if c == nil {
		return ErrNullArgument
	}
	if len(p) == 0 {
		return nil
	}
	if err := c.check(); err != nil {
		return err
	}
	if c.finalized {
		return c.corrupt(ErrState)
	}
	if uint64(len(p)) > maxBytes-c.length/8 {
		return c.corrupt(ErrInputTooLong)
	}
	c.length += uint64(len(p)) << 3

	if c.n > 0 {
		w := copy(c.block[c.n:], p)
		c.n += w
		p = p[w:]
		if c.n < BlockSize {
			return nil
		}
		c.compress()
	}

	if len(p) >= BlockSize {
		w := len(p) &^ (BlockSize - 1)
		sha1block.Block(&c.h, p[:w])
		p = p[w:]
	}

	c.n = copy(c.block[:], p)
	return nil
}

// Result writes the digest of the message to out. The first call pads and finalizes the message; later calls return
// the same digest without recomputation.
func (c *Context) Result(out *[Size]byte) error {
	if c == nil || out == nil {
		return ErrNullArgument
	}
	if err := c.check(); err != nil {
		return err
	}

	if !c.finalized {
		c.pad()
		clear(c.block[:])
		c.length = 0
		c.finalized = true
	}

	for i, v := range c.h {
		binary.BigEndian.PutUint32(out[i*4:], v)
	}
	return nil
}

// Digest returns the digest of the message. It is a convenience wrapper around Result.
func (c *Context) Digest() ([Size]byte, error) {
	var out [Size]byte
	if err := c.Result(&out); err != nil {
		return [Size]byte{}, err
	}
	return out, nil
}

// Clone returns an independent copy of c.
func (c *Context) Clone() *Context {
	if c == nil {
		return nil
	}
	c2 := *c
	return &c2
}

// Len returns the number of message bytes consumed so far. It is zero once the context has been finalized.
func (c *Context) Len() uint64 {
	return c.length >> 3
}

// Finalized reports whether Result has run on c since the last Reset.
func (c *Context) Finalized() bool {
	return c.finalized
}

// Err returns the error stored in c, or nil if c is not corrupted.
func (c *Context) Err() error {
	return c.err
}

func (c *Context) check() error {
	if !c.ready {
		_ = c.Reset()
	}
	if c.err != nil {
		return &corruptedError{cause: c.err}
	}
	return nil
}

func (c *Context) corrupt(err error) error {
	c.err = err
	return err
}

// compress consumes the full block buffer.
func (c *Context) compress() {
	sha1block.Block(&c.h, c.block[:])
	c.n = 0
}

// pad appends the 0x80 marker, zero fill and the 64-bit big-endian bit length, compressing one or two blocks.
func (c *Context) pad() {
	c.block[c.n] = 0x80
	c.n++

	if c.n > BlockSize-8 {
		clear(c.block[c.n:])
		c.compress()
	}
	clear(c.block[c.n : BlockSize-8])

	binary.BigEndian.PutUint64(c.block[BlockSize-8:], c.length)
	c.compress()
}
