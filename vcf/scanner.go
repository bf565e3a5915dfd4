package vcf

import (
	"bufio"
	"bytes"
	"io"
)

// LineScanner yields successive lines of VCF text, trailing newline removed.
// Scanners are forward-only and not restartable.
type LineScanner interface {
	Next() ([]byte, bool)
	Err() error
}

// RegionScanner iterates the lines of an in-memory byte region without
// copying. Returned slices alias the region and are only valid while the
// region is.
type RegionScanner struct {
	data []byte
	pos  int
}

func NewRegionScanner(data []byte) *RegionScanner {
	return &RegionScanner{data: data}
}

func (s *RegionScanner) Next() ([]byte, bool) {
	if s.pos >= len(s.data) {
		return nil, false
	}
	line := s.data[s.pos:]
	if i := bytes.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
		s.pos += i + 1
	} else {
		s.pos = len(s.data)
	}
	return trimCR(line), true
}

// Err is always nil: an in-memory region cannot fail mid-scan.
func (s *RegionScanner) Err() error { return nil }

// Rest returns the region beyond the last line read.
func (s *RegionScanner) Rest() []byte { return s.data[s.pos:] }

// StreamScanner iterates lines from a one-shot reader. It reads with
// bufio.Reader rather than bufio.Scanner so that lines longer than any fixed
// buffer, as cohort VCFs with many sample columns produce, are never
// truncated or dropped.
type StreamScanner struct {
	r    *bufio.Reader
	err  error
	done bool
}

func NewStreamScanner(r io.Reader) *StreamScanner {
	return &StreamScanner{r: bufio.NewReaderSize(r, 1<<20)}
}

func (s *StreamScanner) Next() ([]byte, bool) {
	if s.done {
		return nil, false
	}
	line, err := s.r.ReadBytes('\n')
	if err != nil {
		s.done = true
		if err != io.EOF {
			s.err = err
			return nil, false
		}
		if len(line) == 0 {
			return nil, false
		}
	}
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	return trimCR(line), true
}

func (s *StreamScanner) Err() error { return s.err }

func trimCR(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\r' {
		return line[:n-1]
	}
	return line
}
