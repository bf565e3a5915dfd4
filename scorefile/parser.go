package scorefile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMalformedRow marks rows with too few columns or a non-numeric
	// weight. Fatal during loading: a corrupt scoring file cannot be
	// partially trusted.
	ErrMalformedRow = errors.New("malformed scoring row")

	// ErrInvalidPosition marks rows whose position does not parse as an
	// unsigned integer.
	ErrInvalidPosition = errors.New("invalid scoring position")
)

// Parser carries the csv settings and layout used to interpret scoring rows.
type Parser struct {
	CSVReaderSettings *csv.Reader
	Layout            Layout
}

func New(layout string) (*Parser, error) {
	l, exists := Layouts[layout]
	if !exists {
		return nil, fmt.Errorf("layout %s is not found. Valid layout names include: %s", layout, LayoutNames())
	}

	return NewWithLayout(l)
}

func NewWithLayout(layout Layout) (*Parser, error) {
	n := &Parser{}
	n.Layout = layout
	n.CSVReaderSettings = &csv.Reader{}
	n.CSVReaderSettings.Comma = layout.Delimiter
	n.CSVReaderSettings.Comment = layout.Comment

	// Jagged rows are tolerated at this level; ParseRow rejects rows that
	// are short of the columns the layout actually needs.
	n.CSVReaderSettings.FieldsPerRecord = -1

	return n, nil
}

func (p *Parser) ParseRow(row []string) (Entry, error) {
	if p.Layout.Parser == nil {
		return DefaultParseRow(&p.Layout, row)
	}

	return (*p.Layout.Parser)(&p.Layout, row)
}

// DefaultParseRow interprets row according to the column positions in layout.
func DefaultParseRow(layout *Layout, row []string) (Entry, error) {
	e := Entry{}

	if max := layout.maxColumn(); len(row) <= max {
		return e, fmt.Errorf("%w: %d fields, need at least %d", ErrMalformedRow, len(row), max+1)
	}

	e.Chromosome = row[layout.ColChromosome]
	e.EffectAllele = Allele(row[layout.ColEffectAllele])
	e.OtherAllele = Allele(row[layout.ColOtherAllele])

	pos, err := strconv.ParseUint(row[layout.ColPosition], 10, 32)
	if err != nil {
		return e, fmt.Errorf("%w: %q", ErrInvalidPosition, row[layout.ColPosition])
	}
	e.Position = uint32(pos)

	weight, err := strconv.ParseFloat(row[layout.ColWeight], 64)
	if err != nil {
		return e, fmt.Errorf("%w: weight %q", ErrMalformedRow, row[layout.ColWeight])
	}
	e.Weight = weight

	return e, nil
}

// ldpredParseRow handles LDpred-style rows, which prefix chromosomes with
// "chrom_" and list the weight for the second allele, flipping it to the
// first when the weight is negative.
func ldpredParseRow(layout *Layout, row []string) (Entry, error) {
	e, err := DefaultParseRow(layout, row)
	if err != nil {
		return e, err
	}

	e.Chromosome = strings.TrimPrefix(e.Chromosome, "chrom_")

	if e.Weight < 0 {
		e.Weight *= -1
	} else {
		e.EffectAllele, e.OtherAllele = e.OtherAllele, e.EffectAllele
	}

	return e, nil
}
