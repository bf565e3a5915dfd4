package pgs

import (
	"io"
	"runtime"

	"github.com/SauersML/SpeedScore/scorefile"
	"github.com/SauersML/SpeedScore/vcf"
	"github.com/carbocation/pfx"
	"golang.org/x/sync/errgroup"
)

// Source supplies VCF text either as an in-memory byte region, typically a
// memory-mapped file shared read-only by every worker, or as a one-shot
// stream.
type Source struct {
	data []byte
	r    io.Reader
}

// Bytes scores an in-memory VCF region.
func Bytes(data []byte) Source { return Source{data: data} }

// Stream scores VCF text from a reader in a single forward pass.
func Stream(r io.Reader) Source { return Source{r: r} }

const (
	chunksPerWorker   = 4
	minChunkSize      = 64 << 10
	defaultBatchLines = 4096
)

// Options tunes Compute. The zero value uses one worker per CPU, chunks of
// vcf.DefaultChunkSize, 4096-line stream batches, and the DEFAULT scoring
// layout.
type Options struct {
	Workers    int
	ChunkBytes int
	BatchLines int
	Layout     *scorefile.Layout
}

func (o Options) workerCount() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.NumCPU()
}

// chunkSize targets several chunks per worker so faster workers pull more,
// with a floor that keeps tiny inputs from fragmenting.
func (o Options) chunkSize(total int) int {
	chunk := o.ChunkBytes
	if chunk <= 0 {
		chunk = vcf.DefaultChunkSize
	}
	if spread := total / (o.workerCount() * chunksPerWorker); spread < chunk {
		chunk = spread
	}
	if chunk < minChunkSize {
		chunk = minChunkSize
	}
	return chunk
}

func (o Options) batchLines() int {
	if o.BatchLines > 0 {
		return o.BatchLines
	}
	return defaultBatchLines
}

func (o Options) parser() (*scorefile.Parser, error) {
	if o.Layout != nil {
		return scorefile.NewWithLayout(*o.Layout)
	}
	return scorefile.New("DEFAULT")
}

// Compute loads the scoring table, reads the VCF column header, and scores
// every data record across opt.Workers goroutines. The index build and the
// header read run concurrently; a failure in either, including a scoring
// row that cannot be trusted, aborts the whole computation. Malformed VCF
// data lines never abort; they are skipped and tallied on the Report.
func Compute(src Source, scoring io.Reader, opt Options) (*Report, error) {
	parser, err := opt.parser()
	if err != nil {
		return nil, err
	}

	var (
		idx           *Index
		samples       []string
		regionScanner *vcf.RegionScanner
		streamScanner *vcf.StreamScanner
	)

	// The index build and the header read touch independent inputs
	var g errgroup.Group
	g.Go(func() error {
		entries, err := scorefile.ReadAll(scoring, parser)
		if err != nil {
			return err
		}
		idx = BuildIndex(entries)
		return nil
	})
	g.Go(func() error {
		var sc vcf.LineScanner
		if src.r == nil {
			regionScanner = vcf.NewRegionScanner(src.data)
			sc = regionScanner
		} else {
			streamScanner = vcf.NewStreamScanner(src.r)
			sc = streamScanner
		}
		s, err := vcf.ReadHeader(sc)
		if err != nil {
			return pfx.Err(err)
		}
		samples = s
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if regionScanner != nil {
		return scoreRegion(regionScanner.Rest(), idx, samples, opt)
	}
	return scoreStream(streamScanner, idx, samples, opt)
}
