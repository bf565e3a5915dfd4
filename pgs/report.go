package pgs

// Report is the outcome of one Compute run.
type Report struct {
	// Samples holds the final per-sample accumulators in VCF column order.
	// Empty for sites-only files.
	Samples []SampleAccumulator

	// ScoringVariants is the number of entries loaded from the scoring file.
	ScoringVariants int

	// SkippedLines counts data lines dropped as unparseable.
	SkippedLines int
}

// TotalVariants returns the number of scored data lines, which is the same
// for every sample. Zero for sites-only files.
func (r *Report) TotalVariants() int {
	if len(r.Samples) == 0 {
		return 0
	}
	return r.Samples[0].Total
}

// Unmatched returns how many of the sample's records did not contribute to
// its score, so Matched+Unmatched always covers every valid record.
func (s SampleAccumulator) Unmatched() int {
	return s.Total - s.Matched
}

// MatchRate returns the fraction of the sample's records that contributed.
func (s SampleAccumulator) MatchRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Matched) / float64(s.Total)
}
