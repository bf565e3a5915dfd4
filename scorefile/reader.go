package scorefile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/SauersML/SpeedScore"
	"github.com/carbocation/pfx"
)

// Reader streams entries from a scoring file on disk, transparently
// decompressing it. Not safe for concurrent use.
type Reader struct {
	path   string
	parser *Parser
	file   *os.File
	body   io.Closer
	csv    *csv.Reader
	sawRow bool
	err    error
}

func Open(path string, parser *Parser) (*Reader, error) {
	r := &Reader{path: path, parser: parser}

	file, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	r.file = file

	body, err := speedscore.MaybeDecompressReadCloserFromFile(file)
	if err != nil {
		file.Close()
		return nil, pfx.Err(err)
	}
	r.body = body
	r.csv = newCSVReader(body, parser)

	return r, nil
}

func (r *Reader) Close() error {
	if r.body != nil {
		r.body.Close()
	}
	return r.file.Close()
}

func (r *Reader) Err() error {
	return r.err
}

// Read returns the next entry, or nil at end of input or on error. A header
// row is permitted in the first position only; check Err after the last
// entry.
func (r *Reader) Read() *Entry {
	if r.err != nil {
		return nil
	}

	for {
		row, err := r.csv.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			r.err = pfx.Err(err)
			return nil
		}

		entry, err := r.parser.ParseRow(row)
		if err != nil && !r.sawRow {
			// Permit a header and skip it
			r.sawRow = true
			continue
		}
		if err != nil {
			line, _ := r.csv.FieldPos(0)
			r.err = fmt.Errorf("%s line %d: %w", r.path, line, err)
			return nil
		}

		r.sawRow = true
		return &entry
	}
}

// ReadAll parses every entry from r under the parser's layout. Comment lines
// are dropped by the csv layer and a single header row is tolerated in the
// first position; any later unparseable row is fatal.
func ReadAll(r io.Reader, parser *Parser) ([]Entry, error) {
	cr := newCSVReader(r, parser)

	var entries []Entry
	sawRow := false
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, pfx.Err(err)
		}

		entry, err := parser.ParseRow(row)
		if err != nil && !sawRow {
			// Permit a header and skip it
			sawRow = true
			continue
		}
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("scoring line %d: %w", line, err)
		}

		sawRow = true
		entries = append(entries, entry)
	}

	return entries, nil
}

func newCSVReader(r io.Reader, parser *Parser) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = parser.CSVReaderSettings.Comma
	cr.Comment = parser.CSVReaderSettings.Comment
	cr.FieldsPerRecord = parser.CSVReaderSettings.FieldsPerRecord
	cr.TrimLeadingSpace = parser.CSVReaderSettings.TrimLeadingSpace
	return cr
}
