// Copyright 2026, Yasunobu Okamura and the bedgen contributors.

// bedgen lays out a complete fixture directory by running the two
// generator tools, bedgen_random and bedgen_edge.  Both tools must be
// installed to a directory on the PATH, e.g. with go install ./... .
//
// bedgen can be invoked either using a configuration file in JSON
// format, or using command-line flags.  A typical invocation using
// flags is:
//
// bedgen --Seed=102335 --Dir=testfiles --Compress
//
// To use a JSON config file, create a file with the flag information
// in JSON format, e.g.
//
//    {"Seed": 102335, "Dir": "testfiles", "Compress": true}
//
// Then provide the configuration file path when invoking bedgen, e.g.
//
// bedgen --ConfigFileName=config.json
//
// See utils/config.go for the full set of configuration parameters.
// Logs are placed into the directory bedgen_logs/###### by default,
// where ###### is a generated unique id.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/scipipe/scipipe"

	"github.com/informationsea/bedgen/utils"
)

var (
	configFilePath string

	config *utils.Config
	logger *log.Logger
)

func handleArgs() {

	flag.StringVar(&configFilePath, "ConfigFileName", "", "JSON configuration file")
	seed := flag.Int64("Seed", 102335, "Seed for the random interval generator")
	dir := flag.String("Dir", ".", "Directory where the fixture files are written")
	logDir := flag.String("LogDir", "", "Directory where log files are written")
	compress := flag.Bool("Compress", false, "Snappy compress the fixture files")
	flag.Parse()

	if configFilePath != "" {
		config = utils.ReadConfig(configFilePath)
	} else {
		config = new(utils.Config)
		config.Seed = *seed
		config.Dir = *dir
		config.LogDir = *logDir
		config.Compress = *compress
	}

	if config.Seed == 0 {
		config.Seed = 102335
	}
	if config.Dir == "" {
		config.Dir = "."
	}
	if config.RandomBedName == "" {
		config.RandomBedName = "generated.bed"
	}
	if config.EdgeBedName == "" {
		config.EdgeBedName = "edge.bed"
	}
	if config.EdgeGffName == "" {
		config.EdgeGffName = "edge.gff3"
	}

	if config.Compress {
		for _, p := range []*string{&config.RandomBedName, &config.EdgeBedName, &config.EdgeGffName} {
			if !strings.HasSuffix(*p, ".sz") {
				*p += ".sz"
			}
		}
	}
}

func makeDirs() {

	// Log files are stored in a directory named by this unique id.
	xuid, err := uuid.NewUUID()
	if err != nil {
		os.Stderr.WriteString("Error generating log directory name.\n")
		log.Fatal(err)
	}
	uid := xuid.String()

	if config.LogDir == "" {
		config.LogDir = path.Join("bedgen_logs", uid)
	}

	for _, d := range []string{config.Dir, config.LogDir} {
		if err := os.MkdirAll(d, os.ModePerm); err != nil {
			log.Fatal(err)
		}
	}
}

func setupLog() {
	logname := path.Join(config.LogDir, "bedgen.log")
	fid, err := os.Create(logname)
	if err != nil {
		panic(err)
	}
	logger = log.New(fid, "", log.Ltime)
}

func run() {

	wf := scipipe.NewWorkflow("bedgen", 2)

	c := fmt.Sprintf("bedgen_random --seed=%d --bed-output={o:rand_bed}", config.Seed)
	logger.Printf(c)
	pr := wf.NewProc("random", c)
	pr.SetOut("rand_bed", path.Join(config.Dir, config.RandomBedName))

	c = "bedgen_edge --bed-output={o:edge_bed} --gff-output={o:edge_gff}"
	logger.Printf(c)
	pe := wf.NewProc("edge", c)
	pe.SetOut("edge_bed", path.Join(config.Dir, config.EdgeBedName))
	pe.SetOut("edge_gff", path.Join(config.Dir, config.EdgeGffName))

	wf.Run()
}

func main() {

	handleArgs()
	makeDirs()
	setupLog()

	run()

	logger.Printf("All done.\n")
}
