package pgs

import "github.com/SauersML/SpeedScore/vcf"

// EffectDosage counts how many of the call's alleles are the effect allele
// under the match's resolved orientation. ok is false when the call is
// missing or carries any allele outside the matched pair, in which case the
// call contributes nothing and does not count as matched. Haploid calls
// count their single allele.
func EffectDosage(call vcf.GenotypeCall, m MatchResult) (dosage int, ok bool) {
	if m.Orientation == NoMatch || call.Missing() {
		return 0, false
	}

	if call.A != m.EffectIndex && call.A != m.OtherIndex {
		return 0, false
	}
	if call.A == m.EffectIndex {
		dosage++
	}

	if call.B < 0 {
		return dosage, true
	}

	if call.B != m.EffectIndex && call.B != m.OtherIndex {
		return 0, false
	}
	if call.B == m.EffectIndex {
		dosage++
	}

	return dosage, true
}
