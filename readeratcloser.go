package speedscore

import "io"

// ReaderAtCloser is satisfied by *os.File and by MappedFile, letting callers
// treat mapped and unmapped inputs alike.
type ReaderAtCloser interface {
	io.Reader
	io.ReaderAt
	io.Closer
}
