package speedscore

import (
	"errors"
	"io"
	"os"
)

// MappedFile is a read-only memory mapping of a file. Bytes returns the
// mapping directly; the slice is shared with the page cache and must not be
// modified or retained past Close.
type MappedFile struct {
	data []byte
	off  int64
	f    *os.File
}

var _ ReaderAtCloser = (*MappedFile)(nil)

// MapFile maps the file at path into memory as read-only. An empty file maps
// to an empty byte slice rather than an error.
func MapFile(path string) (*MappedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	size := fi.Size()
	if size == 0 {
		return &MappedFile{f: f}, nil
	}
	if size < 0 || size != int64(int(size)) {
		f.Close()
		return nil, errors.New("mmap: file size out of range")
	}

	data, err := mmap(f, int(size))
	if err != nil {
		f.Close()
		return nil, err
	}

	return &MappedFile{data: data, f: f}, nil
}

// Bytes returns the mapped contents, valid until Close.
func (m *MappedFile) Bytes() []byte { return m.data }

func (m *MappedFile) Len() int { return len(m.data) }

func (m *MappedFile) Read(p []byte) (int, error) {
	if m.off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n := copy(p, m.data[m.off:])
	m.off += int64(n)
	return n, nil
}

func (m *MappedFile) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n := copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Close unmaps the memory and closes the underlying file.
func (m *MappedFile) Close() error {
	if m == nil {
		return nil
	}
	var err error
	if m.data != nil {
		err = munmap(m.data)
		m.data = nil
	}
	if m.f != nil {
		if closeErr := m.f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		m.f = nil
	}
	return err
}
