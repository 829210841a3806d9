package testdata

// ErrReader is an io.Reader whose every Read fails with Err.
type ErrReader struct {
	Err error
}

func (e *ErrReader) Read(_ []byte) (int, error) {
	return 0, e.Err
}

// ErrWriter is an io.Writer whose every Write fails with Err.
type ErrWriter struct {
	Err error
}

func (e *ErrWriter) Write(_ []byte) (int, error) {
	return 0, e.Err
}
