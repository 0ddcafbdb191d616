// Copyright 2026, Yasunobu Okamura and the bedgen contributors.

package utils

import (
	"encoding/json"
	"os"
)

type Config struct {

	// The seed for the random interval generator.
	Seed int64

	// The directory where the fixture files are written.  If blank,
	// the current directory is used.
	Dir string

	// The directory where log files are written.  By default the
	// logs are placed into bedgen_logs/###### in the local
	// directory, where the number is a generated unique id.
	LogDir string

	// If true, the fixture files are snappy compressed and carry a
	// .sz suffix.
	Compress bool

	// The name of the randomly generated BED file.  Defaults to
	// generated.bed.
	RandomBedName string

	// The name of the edge case BED file.  Defaults to edge.bed.
	EdgeBedName string

	// The name of the edge case GFF3 file.  Defaults to edge.gff3.
	EdgeGffName string
}

func ReadConfig(filename string) *Config {
	fid, err := os.Open(filename)
	if err != nil {
		panic(err)
	}
	defer fid.Close()
	dec := json.NewDecoder(fid)
	config := new(Config)
	err = dec.Decode(config)
	if err != nil {
		panic(err)
	}

	return config
}
