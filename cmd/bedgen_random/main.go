// Copyright 2026, Yasunobu Okamura and the bedgen contributors.

// bedgen_random generates a synthetic BED file for exercising bgzip
// compression and tabix indexing.  For each of the 22 autosomes it
// advances a cursor by a squared random step, draws a squared random
// length, and emits the resulting interval until the chromosome
// length is exceeded or 10000 attempts have been made.  The entry
// names carry a long constant suffix so that every line is wide
// enough to span block boundaries when compressed.
//
// The output is reproducible: running the tool twice with the same
// --seed yields byte-identical files.  A path ending in .sz is
// snappy compressed.

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strings"

	"github.com/pkg/profile"

	"github.com/informationsea/bedgen/utils"
)

const (
	// Attempts per chromosome before moving on.
	maxIter = 10000
)

// nameTail pads every entry name to a fixed width.
var nameTail = strings.Repeat("A", 57)

var (
	seed      int64
	bedOutput string
	doProfile bool

	logger *log.Logger
)

// writeChrom emits the intervals for chromosome c and returns the
// number of records written.  The cursor only moves forward, so
// starts are strictly increasing within a chromosome.
func writeChrom(w io.Writer, rng *rand.Rand, c int) int {

	chrom := utils.ChromName(c)
	start := 0
	var n int

	for i := 0; i < maxIter; i++ {

		r := rng.Intn(100+5*c) + 1
		start += r * r

		lenr := rng.Intn(60*c-1) + 1
		length := lenr * lenr / 2

		if start+length >= utils.ChromosomeLength[c-1] {
			break
		}

		iv := utils.Interval{
			Chrom: chrom,
			Start: start,
			End:   start + length,
			Name:  fmt.Sprintf("BED_ENTRY_%s_%d_%s", chrom, i, nameTail),
		}
		if _, err := io.WriteString(w, iv.BedLine()); err != nil {
			panic(err)
		}
		n++
	}

	return n
}

func generate(w io.Writer, rng *rand.Rand) int {

	var n int
	for c := 1; c <= 22; c++ {
		n += writeChrom(w, rng, c)
	}
	return n
}

func main() {

	flag.Int64Var(&seed, "seed", 102335, "Seed for the random number generator")
	flag.StringVar(&bedOutput, "bed-output", "generated.bed", "Path of the BED file to write")
	flag.BoolVar(&doProfile, "profile", false, "Write a CPU profile to the current directory")
	flag.Parse()

	logger = log.New(os.Stderr, "", log.Ltime)

	if doProfile {
		p := profile.Start(profile.ProfilePath("."))
		defer p.Stop()
	}

	wtr, err := utils.NewAtomicWriter(bedOutput)
	if err != nil {
		log.Fatal(err)
	}

	rng := rand.New(rand.NewSource(seed))
	n := generate(wtr, rng)

	if err := wtr.Close(); err != nil {
		log.Fatal(err)
	}

	logger.Printf("wrote %d intervals to %s\n", n, bedOutput)
}
