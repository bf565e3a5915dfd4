package pgs

import "github.com/SauersML/SpeedScore/scorefile"

// Index holds scoring entries keyed by normalized chromosome, then position.
// Entries at one site keep their scoring-file order. An Index is built once
// and read-only afterwards, so any number of goroutines may Lookup
// concurrently without locking.
type Index struct {
	sites    map[string]map[uint32][]scorefile.Entry
	variants int
}

// BuildIndex groups entries by site. Chromosome names are normalized so that
// "chr1", "01", and "1" key identically. Duplicate and multi-allelic rows
// for one site accumulate in file order.
func BuildIndex(entries []scorefile.Entry) *Index {
	idx := &Index{sites: make(map[string]map[uint32][]scorefile.Entry)}

	for _, e := range entries {
		chrom := NormalizeChromosome(e.Chromosome)
		byPos, exists := idx.sites[chrom]
		if !exists {
			byPos = make(map[uint32][]scorefile.Entry)
			idx.sites[chrom] = byPos
		}
		byPos[e.Position] = append(byPos[e.Position], e)
		idx.variants++
	}

	return idx
}

// Variants returns the number of indexed scoring entries.
func (idx *Index) Variants() int { return idx.variants }

// Lookup returns the entries at chrom:pos, or nil. chrom must already be in
// normalized form.
func (idx *Index) Lookup(chrom []byte, pos uint32) []scorefile.Entry {
	byPos, exists := idx.sites[string(chrom)]
	if !exists {
		return nil
	}
	return byPos[pos]
}

// NormalizeChromosome rewrites a chromosome token into its canonical form:
// "chr" and "chrom_" prefixes dropped, leading zeros dropped from numeric
// contigs, sex and mitochondrial contigs uppercased with "M" spelled "MT".
// Unrecognized contigs pass through untouched and simply never match.
func NormalizeChromosome(chrom string) string {
	var scratch [8]byte
	return string(normalizeChromBytes([]byte(chrom), scratch[:0]))
}

// normalizeChromBytes is the allocation-free form used on the scan path. The
// result aliases b or scratch.
func normalizeChromBytes(b, scratch []byte) []byte {
	if foldHasPrefix(b, "chrom_") {
		b = b[6:]
	} else if foldHasPrefix(b, "chr") {
		b = b[3:]
	}

	if allDigits(b) {
		for len(b) > 1 && b[0] == '0' {
			b = b[1:]
		}
		return b
	}

	if len(b) > 0 && len(b) <= 2 && allAlpha(b) {
		up := scratch
		for _, c := range b {
			if 'a' <= c && c <= 'z' {
				c -= 'a' - 'A'
			}
			up = append(up, c)
		}
		if len(up) == 1 && up[0] == 'M' {
			up = append(up, 'T')
		}
		return up
	}

	return b
}

func foldHasPrefix(b []byte, prefix string) bool {
	if len(b) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		c := b[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != prefix[i] {
			return false
		}
	}
	return true
}

func allDigits(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	for _, c := range b {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func allAlpha(b []byte) bool {
	for _, c := range b {
		if ('A' > c || c > 'Z') && ('a' > c || c > 'z') {
			return false
		}
	}
	return len(b) > 0
}
