// Package mmapfile opens a file read-only and memory-maps it for the
// lifetime of a single aggregation run. The mapping must outlive every
// worker reading a shard slice borrowed from it.
package mmapfile

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// Region is the immutable mapped byte range backing an aggregation run.
type Region struct {
	mapping mmap.MMap
	file    *os.File
}

// Open maps path read-only. Callers must call Close once the mapping (and
// every slice borrowed from Bytes) is no longer needed.
//
// A zero-length file is never actually mmap'd (POSIX mmap rejects a
// zero-length mapping); Open instead returns a Region whose Bytes is an
// empty slice, so empty input is a valid, non-fatal case for the engine.
func Open(path string) (*Region, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("statting input file: %w", err)
	}

	if fi.Size() == 0 {
		return &Region{file: f}, nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mapping input file: %w", err)
	}

	return &Region{mapping: m, file: f}, nil
}

// Bytes returns the mapped byte region. The returned slice is valid only
// until Close is called.
func (r *Region) Bytes() []byte {
	return r.mapping
}

// Close unmaps the region, if one was made, and closes the underlying file
// descriptor. No slice returned by Bytes may be used after Close returns.
func (r *Region) Close() error {
	if r.mapping == nil {
		return r.file.Close()
	}
	if err := r.mapping.Unmap(); err != nil {
		r.file.Close()
		return fmt.Errorf("unmapping input file: %w", err)
	}
	return r.file.Close()
}
