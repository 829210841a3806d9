package sha1ref

import "errors"

var (
	// ErrNullArgument is returned when a required context or output buffer is nil.
	ErrNullArgument = errors.New("sha1ref: nil argument")

	// ErrState is returned when input is supplied to a finalized context.
	ErrState = errors.New("sha1ref: input after finalization")

	// ErrInputTooLong is returned when the total message length would not fit in the 64-bit length field.
	ErrInputTooLong = errors.New("sha1ref: message too long")

	// ErrCorrupted matches every error returned by a context that already carries a stored error. The stored error is
	// available via errors.Is and errors.Unwrap.
	ErrCorrupted = errors.New("sha1ref: context corrupted")

	// ErrInvalidState is returned by UnmarshalBinary for malformed or foreign state.
	ErrInvalidState = errors.New("sha1ref: invalid hash state")
)

type corruptedError struct {
	cause error
}

func (e *corruptedError) Error() string {
	return ErrCorrupted.Error() + ": " + e.cause.Error()
}

func (e *corruptedError) Is(target error) bool {
	return target == ErrCorrupted
}

func (e *corruptedError) Unwrap() error {
	return e.cause
}
