package scorefile

import (
	"io"

	"github.com/csimplestring/go-csv/detector"
)

// DetectDelimiter returns the single most likely rune that would delimit the
// values in the reader, assuming a CSV-like file. Scoring files default to
// tab when nothing can be determined.
func DetectDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return '\t'
}

// LayoutForDelimiter returns a copy of layout adjusted to the delimiter
// sniffed from sample, keeping every other setting.
func LayoutForDelimiter(layout Layout, sample io.Reader) Layout {
	layout.Delimiter = DetectDelimiter(sample)
	return layout
}
