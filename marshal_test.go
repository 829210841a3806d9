package sha1ref_test

import (
	"crypto/sha1"
	"encoding"
	"errors"
	"testing"

	"github.com/codahale/sha1ref"
	"github.com/codahale/sha1ref/internal/testdata"
)

func TestMarshalRoundTrip(t *testing.T) {
	msg := testdata.New("sha1ref marshal").Data(300)
	want := sha1ref.Sum(msg)

	for _, split := range []int{0, 1, 55, 64, 100, 299, 300} {
		c := sha1ref.New()
		_ = c.Input(msg[:split])

		state, err := c.MarshalBinary()
		if err != nil {
			t.Fatalf("split=%d: MarshalBinary() error = %v", split, err)
		}

		var c2 sha1ref.Context
		if err := c2.UnmarshalBinary(state); err != nil {
			t.Fatalf("split=%d: UnmarshalBinary() error = %v", split, err)
		}
		_ = c2.Input(msg[split:])

		if got, _ := c2.Digest(); got != want {
			t.Errorf("split=%d: got %x, want %x", split, got, want)
		}
	}
}

func TestMarshalCompatibleWithStdlib(t *testing.T) {
	msg := testdata.New("sha1ref stdlib state").Data(200)
	want := sha1.Sum(msg)

	t.Run("to stdlib", func(t *testing.T) {
		c := sha1ref.New()
		_ = c.Input(msg[:77])
		state, err := c.MarshalBinary()
		if err != nil {
			t.Fatalf("MarshalBinary() error = %v", err)
		}

		h := sha1.New()
		if err := h.(encoding.BinaryUnmarshaler).UnmarshalBinary(state); err != nil {
			t.Fatalf("crypto/sha1 UnmarshalBinary() error = %v", err)
		}
		_, _ = h.Write(msg[77:])
		if got := h.Sum(nil); string(got) != string(want[:]) {
			t.Errorf("got %x, want %x", got, want)
		}
	})

	t.Run("from stdlib", func(t *testing.T) {
		h := sha1.New()
		_, _ = h.Write(msg[:130])
		state, err := h.(encoding.BinaryMarshaler).MarshalBinary()
		if err != nil {
			t.Fatalf("crypto/sha1 MarshalBinary() error = %v", err)
		}

		var c sha1ref.Context
		if err := c.UnmarshalBinary(state); err != nil {
			t.Fatalf("UnmarshalBinary() error = %v", err)
		}
		_ = c.Input(msg[130:])
		if got, _ := c.Digest(); got != want {
			t.Errorf("got %x, want %x", got, want)
		}
	})
}

func TestMarshalFinalized(t *testing.T) {
	c := sha1ref.New()
	_, _ = c.Digest()
	if _, err := c.MarshalBinary(); !errors.Is(err, sha1ref.ErrState) {
		t.Errorf("MarshalBinary() error = %v, want %v", err, sha1ref.ErrState)
	}
}

func TestMarshalCorrupted(t *testing.T) {
	c := sha1ref.New()
	_, _ = c.Digest()
	_ = c.Input([]byte("late"))
	if _, err := c.MarshalBinary(); !errors.Is(err, sha1ref.ErrCorrupted) {
		t.Errorf("MarshalBinary() error = %v, want %v", err, sha1ref.ErrCorrupted)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	good, _ := sha1ref.New().MarshalBinary()

	badMagic := append([]byte(nil), good...)
	badMagic[0] = 'x'

	tooLong := append([]byte(nil), good...)
	for i := len(tooLong) - 8; i < len(tooLong); i++ {
		tooLong[i] = 0xFF
	}

	for name, state := range map[string][]byte{
		"empty":     nil,
		"short":     good[:len(good)-1],
		"bad magic": badMagic,
		"too long":  tooLong,
	} {
		var c sha1ref.Context
		if err := c.UnmarshalBinary(state); !errors.Is(err, sha1ref.ErrInvalidState) {
			t.Errorf("%s: UnmarshalBinary() error = %v, want %v", name, err, sha1ref.ErrInvalidState)
		}
	}
}
