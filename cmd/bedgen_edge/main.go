// Copyright 2026, Yasunobu Okamura and the bedgen contributors.

// bedgen_edge enumerates boundary condition intervals around
// multiples of 1024 on two synthetic chromosomes and writes matching
// BED and GFF3 files.  Every interval start and end sits at a block
// multiple or one base to either side of it, which exercises the
// off-by-one paths of bgzip/tabix style indexers.
//
// The two output files correspond line for line: the n-th GFF3
// record describes the same interval as the n-th BED record, in
// one-based inclusive rather than zero-based half-open coordinates.

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/informationsea/bedgen/utils"
)

const (
	maxRange = 100
	base     = 1024
)

var (
	bedOutput string
	gffOutput string

	logger *log.Logger
)

// enumerate writes one BED and one GFF3 record per valid combination
// and returns the number of pairs written.  Combinations whose start
// would precede the chromosome origin or exceed their end are
// skipped.
func enumerate(bed, gff io.Writer) int {

	var n int

	for chr := 1; chr <= 2; chr++ {
		chrom := utils.ChromName(chr)

		for i := 0; i < maxRange; i++ {
			for k := -1; k <= 1; k++ {

				if i*base+k < 0 {
					continue
				}

				for j := i; j < maxRange; j++ {
					for l := -1; l <= 1; l++ {

						if i*base+k > j*base+l {
							continue
						}

						iv := utils.Interval{
							Chrom: chrom,
							Start: i*base + k,
							End:   j*base + l + 1,
						}
						iv.Name = fmt.Sprintf("range-%d-%d", iv.Start+1, iv.End)

						if _, err := io.WriteString(bed, iv.BedLine()); err != nil {
							panic(err)
						}
						if _, err := io.WriteString(gff, iv.GffLine("EDGE", "region")); err != nil {
							panic(err)
						}
						n++
					}
				}
			}
		}
	}

	return n
}

func main() {

	flag.StringVar(&bedOutput, "bed-output", "edge.bed", "Path of the BED file to write")
	flag.StringVar(&gffOutput, "gff-output", "edge.gff3", "Path of the GFF3 file to write")
	flag.Parse()

	logger = log.New(os.Stderr, "", log.Ltime)

	bw, err := utils.NewAtomicWriter(bedOutput)
	if err != nil {
		log.Fatal(err)
	}
	gw, err := utils.NewAtomicWriter(gffOutput)
	if err != nil {
		log.Fatal(err)
	}

	n := enumerate(bw, gw)

	if err := bw.Close(); err != nil {
		log.Fatal(err)
	}
	if err := gw.Close(); err != nil {
		log.Fatal(err)
	}

	logger.Printf("wrote %d interval pairs to %s and %s\n", n, bedOutput, gffOutput)
}
