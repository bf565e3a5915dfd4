package vcf

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// ErrMissingHeader marks VCF text without a usable #CHROM column header.
var ErrMissingHeader = errors.New("missing or malformed #CHROM header line")

// HeaderColumns are the fixed column names preceding any sample IDs.
var HeaderColumns = []string{"#CHROM", "POS", "ID", "REF", "ALT", "QUAL", "FILTER", "INFO", "FORMAT"}

// ParseHeader extracts the sample IDs from the #CHROM column header line.
// Sites-only files, which stop after INFO or FORMAT, yield an empty list.
func ParseHeader(line []byte) ([]string, error) {
	fields := strings.Split(string(line), "\t")

	n := len(HeaderColumns)
	if len(fields) < n-1 {
		return nil, fmt.Errorf("%w: %d columns", ErrMissingHeader, len(fields))
	}
	for i, want := range HeaderColumns[:min(len(fields), n)] {
		if fields[i] != want {
			return nil, fmt.Errorf("%w: column %d is %q, want %q", ErrMissingHeader, i+1, fields[i], want)
		}
	}
	if len(fields) <= n {
		return []string{}, nil
	}

	return fields[n:], nil
}

// ReadHeader consumes ## metadata lines through the #CHROM column header and
// returns the sample IDs found there. Data lines cannot precede the header.
func ReadHeader(sc LineScanner) ([]string, error) {
	for {
		line, ok := sc.Next()
		if !ok {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, ErrMissingHeader
		}
		if len(line) == 0 {
			continue
		}
		if bytes.HasPrefix(line, []byte("##")) {
			continue
		}
		if line[0] == '#' {
			return ParseHeader(line)
		}
		return nil, fmt.Errorf("%w: data line precedes column header", ErrMissingHeader)
	}
}
