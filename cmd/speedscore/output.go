package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/SauersML/SpeedScore/pgs"
	"github.com/carbocation/pfx"
	"gopkg.in/guregu/null.v3"
)

// writeReport renders one tab-delimited result row per sample. Single-sample
// runs keep the historical column set; when several samples were scored, a
// Sample_Name column is added after Score_File.
func writeReport(path, vcfPath, scoringPath string, report *pgs.Report, elapsed time.Duration) error {
	if path == "-" {
		return renderReport(STDOUT, vcfPath, scoringPath, report, elapsed)
	}

	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	w := bufio.NewWriterSize(f, BufferSize)
	if err := renderReport(w, vcfPath, scoringPath, report, elapsed); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return pfx.Err(err)
	}

	return nil
}

func renderReport(w io.Writer, vcfPath, scoringPath string, report *pgs.Report, elapsed time.Duration) error {
	multi := len(report.Samples) > 1

	if multi {
		fmt.Fprintf(w, "VCF_File\tScore_File\tSample_Name\tPolygenic_Score\tCalculation_Time_Seconds\tTotal_Variants\tMatched_Variants\tScoring_Variants\n")
	} else {
		fmt.Fprintf(w, "VCF_File\tScore_File\tPolygenic_Score\tCalculation_Time_Seconds\tTotal_Variants\tMatched_Variants\tScoring_Variants\n")
	}

	for _, s := range report.Samples {
		name := null.NewString(s.ID, multi)

		if multi {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.6f\t%d\t%d\t%d\n", vcfPath, scoringPath, NullStringFormatter(name), FloatFormatter(s.Score), elapsed.Seconds(), s.Total, s.Matched, report.ScoringVariants)
		} else {
			fmt.Fprintf(w, "%s\t%s\t%s\t%.6f\t%d\t%d\t%d\n", vcfPath, scoringPath, FloatFormatter(s.Score), elapsed.Seconds(), s.Total, s.Matched, report.ScoringVariants)
		}
	}

	return nil
}

// FloatFormatter renders a score with the fewest digits that still round-trip
// to the same float64, so small weights do not collapse to zero.
func FloatFormatter(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func NullStringFormatter(n null.String) string {
	if !n.Valid {
		return ""
	}

	return n.String
}
