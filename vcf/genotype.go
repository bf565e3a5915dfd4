package vcf

import (
	"bytes"
	"math"
)

// GenotypeCall holds a sample's allele indices at one site, where index 0 is
// REF and index i+1 is the i-th ALT. B is -1 for haploid calls. A call with
// A == -1 carries no usable alleles at all.
type GenotypeCall struct {
	A, B int16
}

// Missing reports whether the call contributes no alleles.
func (g GenotypeCall) Missing() bool { return g.A < 0 }

// parseSampleField extracts the GT subfield from one sample column and
// parses it. Samples whose columns stop before the GT subfield are missing.
func parseSampleField(field []byte, gtSub int) GenotypeCall {
	missing := GenotypeCall{A: -1, B: -1}
	if gtSub < 0 {
		return missing
	}

	for i := 0; i < gtSub; i++ {
		j := bytes.IndexByte(field, ':')
		if j < 0 {
			return missing
		}
		field = field[j+1:]
	}
	if j := bytes.IndexByte(field, ':'); j >= 0 {
		field = field[:j]
	}

	return parseGenotype(field)
}

// parseGenotype reads calls of the form "a", "a/b", or "a|b". A missing
// marker or unparseable index anywhere, or more than two alleles, renders
// the whole call missing.
func parseGenotype(gt []byte) GenotypeCall {
	missing := GenotypeCall{A: -1, B: -1}

	sep := -1
	for i, c := range gt {
		if c == '/' || c == '|' {
			if sep >= 0 {
				return missing
			}
			sep = i
		}
	}

	if sep < 0 {
		a, ok := parseAlleleIndex(gt)
		if !ok {
			return missing
		}
		return GenotypeCall{A: a, B: -1}
	}

	a, okA := parseAlleleIndex(gt[:sep])
	b, okB := parseAlleleIndex(gt[sep+1:])
	if !okA || !okB {
		return missing
	}
	return GenotypeCall{A: a, B: b}
}

func parseAlleleIndex(tok []byte) (int16, bool) {
	if len(tok) == 0 || (len(tok) == 1 && tok[0] == '.') {
		return -1, false
	}
	var n int
	for _, c := range tok {
		if c < '0' || c > '9' {
			return -1, false
		}
		n = n*10 + int(c-'0')
		if n > math.MaxInt16 {
			return -1, false
		}
	}
	return int16(n), true
}
