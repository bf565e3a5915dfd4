package scorefile

import "strings"

// Allele is a nucleotide sequence as written in a scoring file. Can contain
// more than one character for indels.
type Allele string

// EqualFold reports whether two alleles are equal ignoring case.
func (a Allele) EqualFold(b Allele) bool {
	return strings.EqualFold(string(a), string(b))
}

// Entry is one scoring-file variant: a genomic site, the allele the weight
// is defined against, its counterpart, and the weight itself. Entries are
// never modified after parsing.
type Entry struct {
	Chromosome   string
	Position     uint32
	EffectAllele Allele
	OtherAllele  Allele
	Weight       float64
}
