// Package speedscore computes polygenic scores from VCF genotypes and a
// table of per-variant effect weights.
package speedscore
