// Copyright 2026, Yasunobu Okamura and the bedgen contributors.

package utils

import "fmt"

// ChromosomeLength holds the length of each human chromosome (hg38),
// ordered chr1-chr22 followed by chrX and chrY.  Generated intervals
// must end strictly below the corresponding entry.  Only the first 22
// entries are consulted by the generators.
var ChromosomeLength = []int{
	248956422, 242193529, 198295559, 190214555, 181538259, 170805979, 159345973,
	145138636, 138394717, 133797422, 135086622, 133275309, 114364328, 107043718, 101991189,
	90338345, 83257441, 80373285, 58617616, 64444167, 46709983, 50818468, 156040895, 57227415,
}

// Interval is a genomic range in zero-based, half-open coordinates.
type Interval struct {
	Chrom string
	Start int
	End   int
	Name  string
}

// BedLine renders the interval as a four column BED record,
// newline-terminated.
func (iv *Interval) BedLine() string {
	return fmt.Sprintf("%s\t%d\t%d\t%s\n", iv.Chrom, iv.Start, iv.End, iv.Name)
}

// GffLine renders the interval as the eight column GFF3 record used
// in the fixture files.  GFF3 coordinates are one-based inclusive, so
// the start is shifted by one relative to the BED record.  The name
// occupies column six, followed by a "." score and a "+" strand.
func (iv *Interval) GffLine(source, ftype string) string {
	return fmt.Sprintf("%s\t%s\t%s\t%d\t%d\t%s\t.\t+\n",
		iv.Chrom, source, ftype, iv.Start+1, iv.End, iv.Name)
}

// ChromName returns the label of chromosome c, e.g. ChromName(1) is
// "chr1".
func ChromName(c int) string {
	return fmt.Sprintf("chr%d", c)
}
