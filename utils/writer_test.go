// Copyright 2026, Yasunobu Okamura and the bedgen contributors.

package utils

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/snappy"
)

func TestAtomicWriterPlain(t *testing.T) {

	fname := filepath.Join(t.TempDir(), "out.bed")

	aw, err := NewAtomicWriter(fname)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := aw.WriteString("chr1\t0\t1\trange-1-1\n"); err != nil {
		t.Fatal(err)
	}

	// Nothing may appear under the final name before Close.
	if _, err := os.Stat(fname); !os.IsNotExist(err) {
		t.Fatalf("final path exists before Close: %v", err)
	}

	if err := aw.Close(); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "chr1\t0\t1\trange-1-1\n" {
		t.Fatalf("unexpected content %q", b)
	}
}

func TestAtomicWriterSnappy(t *testing.T) {

	fname := filepath.Join(t.TempDir(), "out.bed.sz")

	aw, err := NewAtomicWriter(fname)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := aw.Write([]byte("chr1\t0\t1\trange-1-1\n")); err != nil {
		t.Fatal(err)
	}
	if err := aw.Close(); err != nil {
		t.Fatal(err)
	}

	fid, err := os.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	defer fid.Close()

	b, err := io.ReadAll(snappy.NewReader(fid))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "chr1\t0\t1\trange-1-1\n" {
		t.Fatalf("unexpected content %q", b)
	}
}

func TestAtomicWriterBadPath(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "no", "such", "dir", "out.bed")
	if _, err := NewAtomicWriter(fname); err == nil {
		t.Fatal("expected an error for an unwritable path")
	}
}
