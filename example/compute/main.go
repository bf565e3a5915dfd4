package main

import (
	"flag"
	"log"
	"os"

	"github.com/SauersML/SpeedScore"
	"github.com/SauersML/SpeedScore/pgs"
)

func main() {
	vcfPath := flag.String("vcf", "", "Path to an uncompressed VCF file")
	scoringPath := flag.String("scoring", "", "Path to a scoring file")
	flag.Parse()

	if *vcfPath == "" || *scoringPath == "" {
		flag.PrintDefaults()
		log.Fatalln("No path provided")
	}

	mapped, err := speedscore.MapFile(*vcfPath)
	if err != nil {
		log.Fatalln(err)
	}
	defer mapped.Close()

	scoring, err := os.Open(*scoringPath)
	if err != nil {
		log.Fatalln(err)
	}
	defer scoring.Close()

	report, err := pgs.Compute(pgs.Bytes(mapped.Bytes()), scoring, pgs.Options{})
	if err != nil {
		log.Fatalln(err)
	}

	for _, s := range report.Samples {
		log.Println(s.ID, s.Score, s.Matched, "of", report.ScoringVariants, "scoring variants matched")
	}
}
