// Copyright 2026, Yasunobu Okamura and the bedgen contributors.

package utils

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"
	"github.com/google/uuid"
)

// AtomicWriter writes a fixture file through a uniquely named
// temporary file in the same directory, renamed over the final path
// on Close.  An interrupted run leaves only the temporary file, never
// a truncated file under the final name.  Paths ending in .sz are
// compressed with snappy.
type AtomicWriter struct {
	final string
	tmp   string
	fid   *os.File
	buf   *bufio.Writer
	sz    *snappy.Writer
	w     io.Writer
}

// NewAtomicWriter opens a writer targeting fname.  The caller must
// Close it to flush and move the file into place.
func NewAtomicWriter(fname string) (*AtomicWriter, error) {

	xuid, err := uuid.NewUUID()
	if err != nil {
		return nil, err
	}

	tmp := fname + "." + xuid.String() + ".tmp"
	fid, err := os.Create(tmp)
	if err != nil {
		return nil, err
	}

	aw := &AtomicWriter{
		final: fname,
		tmp:   tmp,
		fid:   fid,
	}

	if strings.HasSuffix(fname, ".sz") {
		aw.sz = snappy.NewBufferedWriter(fid)
		aw.w = aw.sz
	} else {
		aw.buf = bufio.NewWriter(fid)
		aw.w = aw.buf
	}

	return aw, nil
}

func (aw *AtomicWriter) Write(p []byte) (int, error) {
	return aw.w.Write(p)
}

func (aw *AtomicWriter) WriteString(s string) (int, error) {
	return io.WriteString(aw.w, s)
}

// Close flushes all buffered data, closes the temporary file, and
// renames it to the final path.
func (aw *AtomicWriter) Close() error {

	if aw.sz != nil {
		if err := aw.sz.Close(); err != nil {
			return err
		}
	} else {
		if err := aw.buf.Flush(); err != nil {
			return err
		}
	}

	if err := aw.fid.Close(); err != nil {
		return err
	}

	return os.Rename(aw.tmp, aw.final)
}
