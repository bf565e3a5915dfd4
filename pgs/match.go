package pgs

import "github.com/SauersML/SpeedScore/scorefile"

// Orientation describes how a scoring entry lines up against a VCF site.
type Orientation uint8

const (
	// NoMatch means no candidate's allele pair fits the site.
	NoMatch Orientation = iota

	// MatchDirect means the effect allele is one of the ALTs and the other
	// allele is REF.
	MatchDirect

	// MatchFlipped means the effect allele is REF, so effect copies are
	// counted as reference copies. The weight keeps its sign either way;
	// the flip changes which allele is counted, never the weight.
	MatchFlipped
)

// MatchResult pairs the winning scoring entry with the genotype indices that
// carry its alleles at one site. Transient; never retained.
type MatchResult struct {
	Orientation Orientation
	EffectIndex int16
	OtherIndex  int16
	Entry       *scorefile.Entry
}

// Match finds the first candidate whose allele pair lines up with the site's
// REF and ALT alleles, in scoring-file order, trying the direct orientation
// before the flipped one. Alleles compare case-insensitively over their full
// strings, indels included; there are no length heuristics.
func Match(ref []byte, alts [][]byte, candidates []scorefile.Entry) MatchResult {
	for i := range candidates {
		e := &candidates[i]

		if foldEq(ref, e.OtherAllele) {
			for j := range alts {
				if foldEq(alts[j], e.EffectAllele) {
					return MatchResult{
						Orientation: MatchDirect,
						EffectIndex: int16(j + 1),
						OtherIndex:  0,
						Entry:       e,
					}
				}
			}
		}

		if foldEq(ref, e.EffectAllele) {
			for j := range alts {
				if foldEq(alts[j], e.OtherAllele) {
					return MatchResult{
						Orientation: MatchFlipped,
						EffectIndex: 0,
						OtherIndex:  int16(j + 1),
						Entry:       e,
					}
				}
			}
		}
	}

	return MatchResult{Orientation: NoMatch}
}

// foldEq compares a VCF allele against a scoring allele ASCII
// case-insensitively without converting either side.
func foldEq(b []byte, a scorefile.Allele) bool {
	if len(b) != len(a) {
		return false
	}
	for i := 0; i < len(b); i++ {
		c, d := b[i], a[i]
		if c == d {
			continue
		}
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if 'A' <= d && d <= 'Z' {
			d += 'a' - 'A'
		}
		if c != d {
			return false
		}
	}
	return true
}
