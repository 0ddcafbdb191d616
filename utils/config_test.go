// Copyright 2026, Yasunobu Okamura and the bedgen contributors.

package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadConfig(t *testing.T) {

	fname := filepath.Join(t.TempDir(), "config.json")
	js := `{"Seed": 42, "Dir": "testfiles", "Compress": true, "EdgeGffName": "e.gff3"}`
	if err := os.WriteFile(fname, []byte(js), 0644); err != nil {
		t.Fatal(err)
	}

	config := ReadConfig(fname)

	if config.Seed != 42 {
		t.Fatalf("Seed is %d, want 42", config.Seed)
	}
	if config.Dir != "testfiles" {
		t.Fatalf("Dir is %q, want testfiles", config.Dir)
	}
	if !config.Compress {
		t.Fatal("Compress is false, want true")
	}
	if config.EdgeGffName != "e.gff3" {
		t.Fatalf("EdgeGffName is %q, want e.gff3", config.EdgeGffName)
	}
	if config.RandomBedName != "" {
		t.Fatalf("RandomBedName is %q, want empty", config.RandomBedName)
	}
}
