package pgs

import (
	"sync"

	"github.com/SauersML/SpeedScore/vcf"
	"github.com/carbocation/pfx"
)

// SampleAccumulator carries one sample's running totals. Each worker owns a
// private set per chunk; partials merge field-wise once all workers finish,
// and the merged accumulators are never modified again.
type SampleAccumulator struct {
	ID      string
	Score   float64
	Matched int
	Total   int
}

func newAccumulators(samples []string) []SampleAccumulator {
	accs := make([]SampleAccumulator, len(samples))
	for i, id := range samples {
		accs[i].ID = id
	}
	return accs
}

// mergeInto adds src into dst, which must be index-aligned with it.
func mergeInto(dst, src []SampleAccumulator) {
	for i := range src {
		dst[i].Score += src[i].Score
		dst[i].Matched += src[i].Matched
		dst[i].Total += src[i].Total
	}
}

// lineScorer runs data lines through parse, lookup, match, and dosage. Each
// worker keeps one so record buffers are reused across lines.
type lineScorer struct {
	idx      *Index
	nSamples int
	accs     []SampleAccumulator
	skipped  int
	rec      vcf.Record
	scratch  [8]byte
}

func (ls *lineScorer) reset(samples []string) {
	ls.accs = newAccumulators(samples)
	ls.skipped = 0
}

// scoreLine scores one line. Blank lines and stray comment lines are
// ignored; an unparseable line is tallied and skipped, never fatal.
func (ls *lineScorer) scoreLine(line []byte) {
	if len(line) == 0 || line[0] == '#' {
		return
	}

	if err := vcf.ParseRecord(line, ls.nSamples, &ls.rec); err != nil {
		ls.skipped++
		return
	}

	for i := range ls.accs {
		ls.accs[i].Total++
	}

	chrom := normalizeChromBytes(ls.rec.Chrom, ls.scratch[:0])
	candidates := ls.idx.Lookup(chrom, ls.rec.Pos)
	if len(candidates) == 0 {
		return
	}

	m := Match(ls.rec.Ref, ls.rec.Alts, candidates)
	if m.Orientation == NoMatch {
		return
	}

	for i := range ls.rec.Genotypes {
		dosage, ok := EffectDosage(ls.rec.Genotypes[i], m)
		if !ok {
			continue
		}
		ls.accs[i].Score += m.Entry.Weight * float64(dosage)
		ls.accs[i].Matched++
	}
}

// scoreRegion fans line-aligned chunks of data out to a fixed worker pool.
// Workers pull the next unclaimed chunk, so chunk count need not equal
// worker count. Partials land in a chunk-indexed slice and merge in chunk
// order after the join, keeping the summation sequence reproducible for a
// given chunking.
func scoreRegion(data []byte, idx *Index, samples []string, opt Options) (*Report, error) {
	chunks := vcf.SplitRegion(data, opt.chunkSize(len(data)))

	jobs := make(chan int, len(chunks))
	partials := make([][]SampleAccumulator, len(chunks))
	skipped := make([]int, len(chunks))

	var wg sync.WaitGroup
	for w := 0; w < opt.workerCount(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ls := lineScorer{idx: idx, nSamples: len(samples)}
			for c := range jobs {
				ls.reset(samples)
				sc := vcf.NewRegionScanner(data[chunks[c][0]:chunks[c][1]])
				for line, ok := sc.Next(); ok; line, ok = sc.Next() {
					ls.scoreLine(line)
				}
				partials[c] = ls.accs
				skipped[c] = ls.skipped
			}
		}()
	}

	for c := range chunks {
		jobs <- c
	}
	close(jobs)
	wg.Wait()

	report := &Report{
		Samples:         newAccumulators(samples),
		ScoringVariants: idx.Variants(),
	}
	for c := range chunks {
		mergeInto(report.Samples, partials[c])
		report.SkippedLines += skipped[c]
	}

	return report, nil
}

type streamBatch struct {
	seq   int
	lines [][]byte
}

type streamResult struct {
	seq     int
	accs    []SampleAccumulator
	skipped int
}

// scoreStream scores a one-shot line stream: the calling goroutine groups
// lines into numbered batches, workers score them, and a reducer goroutine
// folds results back in batch order so the summation sequence stays
// reproducible no matter which worker finishes first.
func scoreStream(sc *vcf.StreamScanner, idx *Index, samples []string, opt Options) (*Report, error) {
	workers := opt.workerCount()
	jobs := make(chan streamBatch, workers)
	results := make(chan streamResult, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ls := lineScorer{idx: idx, nSamples: len(samples)}
			for batch := range jobs {
				ls.reset(samples)
				for _, line := range batch.lines {
					ls.scoreLine(line)
				}
				results <- streamResult{seq: batch.seq, accs: ls.accs, skipped: ls.skipped}
			}
		}()
	}

	done := make(chan *Report)
	go func() {
		report := &Report{
			Samples:         newAccumulators(samples),
			ScoringVariants: idx.Variants(),
		}
		pending := make(map[int]streamResult)
		next := 0
		for res := range results {
			pending[res.seq] = res
			for {
				r, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				mergeInto(report.Samples, r.accs)
				report.SkippedLines += r.skipped
				next++
			}
		}
		done <- report
	}()

	batchSize := opt.batchLines()
	lines := make([][]byte, 0, batchSize)
	seq := 0
	for {
		line, ok := sc.Next()
		if !ok {
			break
		}
		lines = append(lines, append([]byte(nil), line...))
		if len(lines) == batchSize {
			jobs <- streamBatch{seq: seq, lines: lines}
			seq++
			lines = make([][]byte, 0, batchSize)
		}
	}
	if len(lines) > 0 {
		jobs <- streamBatch{seq: seq, lines: lines}
	}
	close(jobs)
	wg.Wait()
	close(results)
	report := <-done

	if err := sc.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	return report, nil
}
