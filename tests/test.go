// Copyright 2026, Yasunobu Okamura and the bedgen contributors.

// test is a script that runs consistency checks on the installed
// bedgen tools.  Each test invokes a generator one or more times and
// compares pairs of output files, so e.g. two runs with the same seed
// must produce identical files, and a snappy compressed output must
// decompress to the same bytes as the plain one.
//
// The tools must be installed first (go install ./...).  To run the
// tests, use:
//
// go run test.go

package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/golang/snappy"
)

var (
	logger *log.Logger
)

type Test struct {
	Name    string
	Base    string
	Command string
	Runs    [][]string
	Files   [][2]string
}

func getTests() []Test {

	fid, err := os.Open("tests.toml")
	if err != nil {
		panic(err)
	}
	s, err := io.ReadAll(fid)
	if err != nil {
		panic(err)
	}
	fid.Close()

	type vd struct {
		Test []Test
	}

	var v vd
	_, err = toml.Decode(string(s), &v)
	if err != nil {
		panic(err)
	}

	logger.Printf("Found %d tests\n", len(v.Test))

	return v.Test
}

// getScanner returns a scanner for reading the contents of a file.
// Snappy compression is handled automatically.  An array of values
// that should be closed when the scanner is no longer needed is also
// returned.
func getScanner(f string) (*bufio.Scanner, []io.Closer) {

	var toclose []io.Closer
	var g io.Reader

	h, err := os.Open(f)
	if err != nil {
		panic(err)
	}
	toclose = append(toclose, h)
	g = h

	if strings.HasSuffix(f, ".sz") {
		g = snappy.NewReader(g)
	}

	s := bufio.NewScanner(g)
	s.Buffer(make([]byte, 1024*1024), 1024*1024)
	return s, toclose
}

// compare returns true if and only if the contents of the files named
// by the arguments f1 and f2 are identical.  Snappy compression is
// handled automatically.
func compare(f1, f2 string) bool {

	s1, tc1 := getScanner(f1)
	s2, tc2 := getScanner(f2)

	for {
		q1 := s1.Scan()
		q2 := s2.Scan()

		if q1 != q2 {
			msg := fmt.Sprintf("files %s and %s have different numbers of lines\n", f1, f2)
			panic(msg)
		}
		if !q1 {
			break
		}

		v1 := s1.Text()
		v2 := s2.Text()
		if v1 != v2 {
			msg := fmt.Sprintf("%s\nin file %s\ndiffers from\n%v\nin file %s\n", v1, f1, v2, f2)
			panic(msg)
		}
	}

	if err := s1.Err(); err != nil {
		panic(err)
	}
	if err := s2.Err(); err != nil {
		panic(err)
	}

	for _, x := range tc1 {
		x.Close()
	}
	for _, x := range tc2 {
		x.Close()
	}

	return true
}

func run(tests []Test) {

	for _, t := range tests {

		if err := os.MkdirAll(t.Base, os.ModePerm); err != nil {
			panic(err)
		}

		logger.Printf("%s\n", t.Name)
		for _, args := range t.Runs {
			logger.Printf("Running command %s\n", t.Command)
			logger.Printf("with arguments: %v\n", args)
			cmd := exec.Command(t.Command, args...)
			cmd.Dir = t.Base
			cmd.Stderr = os.Stderr
			err := cmd.Run()
			if err != nil {
				panic(err)
			}
		}

		for _, fp := range t.Files {
			compare(path.Join(t.Base, fp[0]), path.Join(t.Base, fp[1]))
		}

		logger.Printf("done\n\n")
	}
}

func setupLog() {
	fid, err := os.Create("test.log")
	if err != nil {
		panic(err)
	}
	logger = log.New(fid, "", log.Ltime)
}

func main() {
	setupLog()
	tests := getTests()
	run(tests)
}
