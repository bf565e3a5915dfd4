// speedscore computes polygenic scores for the samples of a VCF file from a
// tab-separated table of per-variant effect weights, in parallel over a
// memory-mapped view of the file whenever the file is a plain local one, and
// over a decompressing stream otherwise.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/SauersML/SpeedScore"
	_ "github.com/SauersML/SpeedScore/compileinfoprint"
	"github.com/SauersML/SpeedScore/pgs"
	"github.com/SauersML/SpeedScore/scorefile"
	"github.com/carbocation/pfx"
	"github.com/kelseyhightower/envconfig"
)

var (
	BufferSize = 4096 * 8
	STDOUT     = bufio.NewWriterSize(os.Stdout, BufferSize)
)

// tuning holds knobs resolved from SPEEDSCORE_* environment variables. They
// become flag defaults, so explicit flags always win.
type tuning struct {
	Workers    int `envconfig:"WORKERS"`
	ChunkMB    int `envconfig:"CHUNK_MB"`
	BatchLines int `envconfig:"BATCH_LINES"`
}

func main() {
	defer STDOUT.Flush()

	var tun tuning
	if err := envconfig.Process("speedscore", &tun); err != nil {
		log.Fatalln(pfx.Err(err))
	}

	var (
		vcfPath      string
		scoringPath  string
		outputPath   string
		layout       string
		customLayout string
		info         bool
		workers      int
		chunkMB      int
	)
	flag.StringVar(&vcfPath, "vcf", "", "Path to the VCF whose samples will be scored. May be gzip-, bgzf-, zip-, xz-, or bzip2-compressed.")
	flag.StringVar(&scoringPath, "scoring", "", "Path to the scoring file with per-variant effect weights.")
	flag.StringVar(&outputPath, "output", "", "Path for the tab-separated result. Use - for standard output.")
	flag.StringVar(&layout, "layout", "DEFAULT", fmt.Sprint("Layout of your scoring file. Currently, options include: ", scorefile.LayoutNames()))
	flag.StringVar(&customLayout, "custom-layout", "", "Optional: a scoring layout with 0-based columns as follows: ChromosomeCol,PositionCol,EffectAlleleCol,OtherAlleleCol,WeightCol")
	flag.BoolVar(&info, "info", false, "Print detailed match and timing information to standard output.")
	flag.IntVar(&workers, "workers", tun.Workers, "Number of scoring goroutines. Defaults to the CPU count.")
	flag.IntVar(&chunkMB, "chunk-mb", tun.ChunkMB, "Target chunk size in megabytes when scanning a mapped VCF.")
	flag.Parse()

	if vcfPath == "" {
		flag.PrintDefaults()
		log.Fatalln("Please provide --vcf")
	}
	if scoringPath == "" {
		flag.PrintDefaults()
		log.Fatalln("Please provide --scoring")
	}
	if outputPath == "" {
		flag.PrintDefaults()
		log.Fatalln("Please provide --output")
	}

	if customLayout != "" {
		layout = "CUSTOM"
		scorefile.Layouts["CUSTOM"] = parseCustomLayout(customLayout)
	}

	opt := pgs.Options{
		Workers:    workers,
		ChunkBytes: chunkMB << 20,
		BatchLines: tun.BatchLines,
	}

	if err := run(vcfPath, scoringPath, outputPath, layout, info, opt); err != nil {
		log.Fatalln(err)
	}
}

func parseCustomLayout(customLayout string) scorefile.Layout {
	cols := strings.Split(customLayout, ",")
	if x := len(cols); x != 5 {
		log.Fatalf("--custom-layout was toggled; 5 column numbers were expected, but %d were given\n", x)
	}
	intCols := make([]int, 0, len(cols))
	for i, col := range cols {
		j, err := strconv.ParseInt(col, 10, 32)
		if err != nil {
			log.Fatalf("The identifier for column %d (value %s) is not an integer", i, col)
		}
		intCols = append(intCols, int(j))
	}

	udf := scorefile.Layout{
		Delimiter:       '\t',
		Comment:         '#',
		ColChromosome:   intCols[0],
		ColPosition:     intCols[1],
		ColEffectAllele: intCols[2],
		ColOtherAllele:  intCols[3],
		ColWeight:       intCols[4],
	}

	log.Println("Using custom parser:")
	fmt.Fprintf(os.Stderr, "%+v\n", udf)

	return udf
}

func run(vcfPath, scoringPath, outputPath, layoutName string, info bool, opt pgs.Options) error {
	vcfPath = speedscore.ExpandHome(vcfPath)
	scoringPath = speedscore.ExpandHome(scoringPath)

	l, exists := scorefile.Layouts[layoutName]
	if !exists {
		return fmt.Errorf("layout %s is not found. Valid layout names include: %s", layoutName, scorefile.LayoutNames())
	}

	sf, err := os.Open(scoringPath)
	if err != nil {
		return pfx.Err(err)
	}
	defer sf.Close()

	scoring, err := speedscore.MaybeDecompressReadCloserFromFile(sf)
	if err != nil {
		return pfx.Err(err)
	}
	defer scoring.Close()

	var scoringBody io.Reader = scoring
	if layoutName == "DEFAULT" {
		// Sniff the delimiter from the head of the file so space- and
		// comma-delimited variants of the default column order still load.
		head := make([]byte, 64<<10)
		n, err := io.ReadFull(scoring, head)
		if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
			return pfx.Err(err)
		}
		head = head[:n]
		l = scorefile.LayoutForDelimiter(l, bytes.NewReader(head))
		scoringBody = io.MultiReader(bytes.NewReader(head), scoring)
	}
	opt.Layout = &l

	src, closeSrc, err := openVCF(vcfPath)
	if err != nil {
		return err
	}
	defer closeSrc()

	log.Println("Scoring", vcfPath, "against", scoringPath)

	start := time.Now()
	report, err := pgs.Compute(src, scoringBody, opt)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if report.SkippedLines > 0 {
		log.Printf("Skipped %d unparseable data lines\n", report.SkippedLines)
	}
	if len(report.Samples) == 0 {
		log.Println("The VCF carries no sample columns; nothing to score")
	}
	log.Printf("Computed polygenic scores for %d sample(s) in %.3f seconds\n", len(report.Samples), elapsed.Seconds())

	if err := writeReport(outputPath, vcfPath, scoringPath, report, elapsed); err != nil {
		return err
	}

	if info {
		printInfo(report, elapsed)
	}

	return nil
}

// openVCF maps plain local files into memory and falls back to a
// decompressing stream for everything else.
func openVCF(path string) (pgs.Source, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return pgs.Source{}, nil, pfx.Err(err)
	}

	dt, err := speedscore.DetectDataType(f)
	if err != nil {
		f.Close()
		return pgs.Source{}, nil, pfx.Err(err)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return pgs.Source{}, nil, pfx.Err(err)
	}

	if dt == speedscore.DataTypeNoCompression && fi.Mode().IsRegular() {
		f.Close()

		mapped, err := speedscore.MapFile(path)
		if err != nil {
			return pgs.Source{}, nil, pfx.Err(err)
		}
		return pgs.Bytes(mapped.Bytes()), mapped.Close, nil
	}

	if _, err := f.Seek(0, 0); err != nil {
		f.Close()
		return pgs.Source{}, nil, pfx.Err(err)
	}
	body, err := speedscore.MaybeDecompressReadCloserFromFile(f)
	if err != nil {
		f.Close()
		return pgs.Source{}, nil, pfx.Err(err)
	}

	closer := func() error {
		body.Close()
		return f.Close()
	}
	return pgs.Stream(body), closer, nil
}
