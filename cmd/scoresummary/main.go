// scoresummary prints quality-control summaries for a scoring file before it
// is used to compute polygenic scores: row and per-chromosome counts,
// duplicated sites, and the distribution of effect weights.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/montanaflynn/stats"

	"github.com/SauersML/SpeedScore"
	_ "github.com/SauersML/SpeedScore/compileinfoprint"
	"github.com/SauersML/SpeedScore/pgs"
	"github.com/SauersML/SpeedScore/scorefile"
)

func main() {
	var (
		scoringPath string
		layout      string
		plot        bool
		bins        int
	)
	flag.StringVar(&scoringPath, "scoring", "", "Path to the scoring file with per-variant effect weights. May be compressed.")
	flag.StringVar(&layout, "layout", "DEFAULT", fmt.Sprint("Layout of your scoring file. Currently, options include: ", scorefile.LayoutNames()))
	flag.BoolVar(&plot, "hist", false, "Plot a histogram of the effect weights.")
	flag.IntVar(&bins, "bins", 25, "Number of histogram buckets.")
	flag.Parse()

	if scoringPath == "" {
		flag.PrintDefaults()
		log.Fatalln("Please provide --scoring")
	}

	if err := run(scoringPath, layout, plot, bins); err != nil {
		log.Fatalln(err)
	}
}

func run(path, layoutName string, plot bool, bins int) error {
	parser, err := scorefile.New(layoutName)
	if err != nil {
		return err
	}

	r, err := scorefile.Open(speedscore.ExpandHome(path), parser)
	if err != nil {
		return err
	}
	defer r.Close()

	var rows, dupRows, negative int
	var weights []float64
	perChrom := make(map[string]int)
	sites := make(map[string]map[uint32]struct{})

	for entry := r.Read(); entry != nil; entry = r.Read() {
		rows++
		chrom := pgs.NormalizeChromosome(entry.Chromosome)
		perChrom[chrom]++

		positions, ok := sites[chrom]
		if !ok {
			positions = make(map[uint32]struct{})
			sites[chrom] = positions
		}
		if _, seen := positions[entry.Position]; seen {
			dupRows++
		} else {
			positions[entry.Position] = struct{}{}
		}

		if entry.Weight < 0 {
			negative++
		}
		weights = append(weights, entry.Weight)
	}
	if err := r.Err(); err != nil {
		return err
	}

	fmt.Printf("Scoring file: %s\n", path)
	fmt.Printf("Rows: %d\n", rows)
	fmt.Printf("Distinct sites: %d\n", rows-dupRows)
	fmt.Printf("Rows repeating an earlier site: %d\n", dupRows)
	fmt.Printf("Rows with negative weights: %d\n", negative)

	fmt.Printf("\nRows per chromosome:\n")
	for _, chrom := range sortedChromosomes(perChrom) {
		fmt.Printf("%s\t%d\n", chrom, perChrom[chrom])
	}

	if err := printWeightStats(weights); err != nil {
		return err
	}

	if plot && len(weights) > 0 {
		fmt.Printf("\nWeight histogram:\n")
		hist := histogram.Hist(bins, weights)
		if err := histogram.Fprint(os.Stdout, hist, histogram.Linear(40)); err != nil {
			return err
		}
	}

	return nil
}

// sortedChromosomes orders numeric chromosome names numerically and places
// the named chromosomes (X, Y, MT) after them.
func sortedChromosomes(perChrom map[string]int) []string {
	chroms := make([]string, 0, len(perChrom))
	for chrom := range perChrom {
		chroms = append(chroms, chrom)
	}

	sort.Slice(chroms, func(i, j int) bool {
		ni, errI := strconv.Atoi(chroms[i])
		nj, errJ := strconv.Atoi(chroms[j])
		if errI == nil && errJ == nil {
			return ni < nj
		}
		if errI == nil {
			return true
		}
		if errJ == nil {
			return false
		}
		return chroms[i] < chroms[j]
	})

	return chroms
}

func printWeightStats(weights []float64) error {
	data := stats.LoadRawData(weights)
	if data.Len() < 1 {
		return nil
	}

	mean, err := data.Mean()
	if err != nil {
		return err
	}
	median, err := data.Median()
	if err != nil {
		return err
	}
	sd, err := data.StandardDeviation()
	if err != nil {
		return err
	}
	lo, err := data.Min()
	if err != nil {
		return err
	}
	hi, err := data.Max()
	if err != nil {
		return err
	}

	fmt.Printf("\nEffect weights:\n")
	fmt.Printf("Mean\t%g\n", mean)
	fmt.Printf("Median\t%g\n", median)
	fmt.Printf("SD\t%g\n", sd)
	fmt.Printf("Min\t%g\n", lo)
	fmt.Printf("Max\t%g\n", hi)

	return nil
}
