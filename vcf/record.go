package vcf

import (
	"bytes"
	"errors"
	"fmt"
	"math"
)

// Map VCF columns to their positions
const (
	chromIdx int = iota
	posIdx
	idIdx
	refIdx
	altIdx
	qualIdx
	filterIdx
	infoIdx
	formatIdx
)

// ErrMalformedLine marks a data line with the wrong column count or an
// unparseable position. Scanning continues past such lines.
var ErrMalformedLine = errors.New("malformed VCF data line")

// Record is one tokenized VCF data line. Chrom, Ref, and Alts alias the
// parsed line, so a Record is only valid until its line is; records are
// parsed, consumed, and discarded, never retained.
type Record struct {
	Chrom     []byte
	Pos       uint32
	Ref       []byte
	Alts      [][]byte
	Genotypes []GenotypeCall
}

// ParseRecord tokenizes one data line into rec, reusing its slices. Files
// with samples must carry 9 fixed columns plus one per sample; sites-only
// files carry 8 or 9. The GT subfield is located through the FORMAT column,
// so its position may vary per line.
func ParseRecord(line []byte, nSamples int, rec *Record) error {
	rec.Alts = rec.Alts[:0]
	rec.Genotypes = rec.Genotypes[:0]

	gtSub := -1
	col := 0
	for start := 0; ; col++ {
		end := len(line)
		if i := bytes.IndexByte(line[start:], '\t'); i >= 0 {
			end = start + i
		}
		field := line[start:end]

		switch {
		case col == chromIdx:
			rec.Chrom = field
		case col == posIdx:
			pos, ok := parseUint32(field)
			if !ok {
				return fmt.Errorf("%w: position %q", ErrMalformedLine, field)
			}
			rec.Pos = pos
		case col == refIdx:
			rec.Ref = field
		case col == altIdx:
			rec.Alts = appendAlts(rec.Alts, field)
		case col == formatIdx:
			gtSub = gtSubfieldIndex(field)
		case col > formatIdx:
			rec.Genotypes = append(rec.Genotypes, parseSampleField(field, gtSub))
		}

		if end == len(line) {
			col++
			break
		}
		start = end + 1
	}

	if nSamples > 0 {
		if want := formatIdx + 1 + nSamples; col != want {
			return fmt.Errorf("%w: %d columns, want %d", ErrMalformedLine, col, want)
		}
	} else if col != formatIdx && col != formatIdx+1 {
		return fmt.Errorf("%w: %d columns, want 8 or 9", ErrMalformedLine, col)
	}

	return nil
}

func parseUint32(b []byte) (uint32, bool) {
	if len(b) == 0 {
		return 0, false
	}
	var n uint64
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + uint64(c-'0')
		if n > math.MaxUint32 {
			return 0, false
		}
	}
	return uint32(n), true
}

func appendAlts(dst [][]byte, field []byte) [][]byte {
	for {
		i := bytes.IndexByte(field, ',')
		if i < 0 {
			return append(dst, field)
		}
		dst = append(dst, field[:i])
		field = field[i+1:]
	}
}

// gtSubfieldIndex locates GT among the FORMAT column's colon-separated
// fields, or -1 when the line carries no genotypes.
func gtSubfieldIndex(format []byte) int {
	idx := 0
	for {
		end := len(format)
		if i := bytes.IndexByte(format, ':'); i >= 0 {
			end = i
		}
		if end == 2 && format[0] == 'G' && format[1] == 'T' {
			return idx
		}
		if end == len(format) {
			return -1
		}
		format = format[end+1:]
		idx++
	}
}
