package main

import (
	"fmt"
	"time"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/montanaflynn/stats"

	"github.com/SauersML/SpeedScore/pgs"
)

// printInfo reports per-sample match detail and, when several samples were
// scored, the distribution of scores across them.
func printInfo(report *pgs.Report, elapsed time.Duration) {
	seconds := elapsed.Seconds()
	multi := len(report.Samples) > 1

	fmt.Fprintf(STDOUT, "\nDetailed Information:\n")
	fmt.Fprintf(STDOUT, "---------------------\n")
	fmt.Fprintf(STDOUT, "Total variants processed: %d\n", report.TotalVariants())
	fmt.Fprintf(STDOUT, "Variants in scoring file: %d\n", report.ScoringVariants)
	if report.SkippedLines > 0 {
		fmt.Fprintf(STDOUT, "Unparseable lines skipped: %d\n", report.SkippedLines)
	}

	for _, s := range report.Samples {
		if multi {
			fmt.Fprintf(STDOUT, "\nSample %s:\n", s.ID)
		}
		fmt.Fprintf(STDOUT, "Matched variants: %d\n", s.Matched)
		if report.ScoringVariants > 0 {
			fmt.Fprintf(STDOUT, "Match rate: %.2f%%\n", 100*float64(s.Matched)/float64(report.ScoringVariants))
		}
		fmt.Fprintf(STDOUT, "Polygenic Score: %s\n", FloatFormatter(s.Score))
	}

	fmt.Fprintf(STDOUT, "\nCalculation time: %.6f seconds\n", seconds)
	if seconds > 0 {
		fmt.Fprintf(STDOUT, "Variants processed per second: %.0f\n", float64(report.TotalVariants())/seconds)
	}

	if multi {
		printScoreDistribution(report)
	}
}

func printScoreDistribution(report *pgs.Report) {
	scores := make([]float64, 0, len(report.Samples))
	for _, s := range report.Samples {
		scores = append(scores, s.Score)
	}

	data := stats.LoadRawData(scores)
	if data.Len() < 1 {
		return
	}

	mean, err := data.Mean()
	if err != nil {
		return
	}
	median, err := data.Median()
	if err != nil {
		return
	}
	sd, err := data.StandardDeviation()
	if err != nil {
		return
	}
	lo, err := data.Min()
	if err != nil {
		return
	}
	hi, err := data.Max()
	if err != nil {
		return
	}

	fmt.Fprintf(STDOUT, "\nScore distribution across %d samples:\n", data.Len())
	fmt.Fprintf(STDOUT, "Mean: %s\n", FloatFormatter(mean))
	fmt.Fprintf(STDOUT, "Median: %s\n", FloatFormatter(median))
	fmt.Fprintf(STDOUT, "SD: %s\n", FloatFormatter(sd))
	fmt.Fprintf(STDOUT, "Min: %s\n", FloatFormatter(lo))
	fmt.Fprintf(STDOUT, "Max: %s\n", FloatFormatter(hi))

	hist := histogram.Hist(9, scores)
	if err := histogram.Fprint(STDOUT, hist, histogram.Linear(40)); err != nil {
		fmt.Fprintf(STDOUT, "(histogram unavailable: %v)\n", err)
	}
}
