// Package alf extracts individual files out of ALF archives, given the
// parsed metadata that describes which archive and byte range each file
// occupies.
package alf

import (
	"fmt"
	"io"

	"github.com/ageformats/age4fmt/internal/ageerr"
	"github.com/ageformats/age4fmt/internal/collision"
	"github.com/ageformats/age4fmt/internal/hash"
	"github.com/ageformats/age4fmt/internal/options"
	"github.com/ageformats/age4fmt/internal/pool"
	"github.com/ageformats/age4fmt/metadata"
)

// Source is a random-access byte source for one open archive.
type Source interface {
	io.ReaderAt
	io.Closer
}

// OpenFunc opens the archive named by an ArchiveName's filename. It is
// called at most once per distinct filename during an extraction.
type OpenFunc func(filename string) (Source, error)

// WriteFunc writes length bytes at the given offset in an archive to the
// named output. It is the caller's write/storage boundary: to disk, to an
// in-memory buffer, to a streaming endpoint. data is backed by a pooled
// buffer reused across entries; implementations must not retain it past
// the call, copying first if they need to keep the bytes.
type WriteFunc func(outputName string, data []byte) error

// extractConfig holds ExtractAll's optional behavior, set via Option values.
type extractConfig struct {
	force bool
}

// Option configures ExtractAll.
type Option = options.Option[*extractConfig]

// Force allows an extracted entry to overwrite an output path that has
// already been written during this extraction, instead of being skipped.
func Force() Option {
	return options.New(func(c *extractConfig) error {
		c.force = true
		return nil
	})
}

// Result reports the outcome of extracting a single entry.
type Result struct {
	Entry   metadata.Entry
	Skipped bool
}

// Extractor extracts entries named in a metadata.File, lazily opening and
// caching archive handles by filename for the lifetime of an extraction.
type Extractor struct {
	meta    *metadata.File
	open    OpenFunc
	handles map[uint64]Source
	names   map[uint64]string
	seen    *collision.Tracker
}

// NewExtractor creates an Extractor over meta, using open to resolve
// archive filenames to byte sources on demand.
func NewExtractor(meta *metadata.File, open OpenFunc) *Extractor {
	return &Extractor{
		meta:    meta,
		open:    open,
		handles: make(map[uint64]Source),
		names:   make(map[uint64]string),
		seen:    collision.NewTracker(),
	}
}

// outputName derives the output path for an entry: its metadata name,
// unchanged. Extractor has no per-entry extraction method; every entry is
// written under this name by ExtractAll.
func outputName(e metadata.Entry) string {
	return e.Name
}

// ExtractAll extracts every entry in the metadata via write, in metadata
// order. stop is polled between entries (the cooperative stop-file
// convention): when it returns true, extraction halts and returns the
// results gathered so far along with nil.
func (x *Extractor) ExtractAll(write WriteFunc, opts []Option, stop func() bool) ([]Result, error) {
	cfg := extractConfig{}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(x.meta.Entries))
	for _, entry := range x.meta.Entries {
		if stop != nil && stop() {
			break
		}

		res, err := x.extractOne(entry, write, cfg.force)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}

	return results, nil
}

// Close closes every archive handle opened during extraction. The first
// close error is returned, named by the archive filename it came from
// (x.names, keyed the same way as x.handles) rather than a bare handle.
func (x *Extractor) Close() error {
	var firstErr error
	for id, h := range x.handles {
		if err := h.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing archive %q: %w", x.names[id], err)
		}
	}
	return firstErr
}

func (x *Extractor) extractOne(entry metadata.Entry, write WriteFunc, force bool) (Result, error) {
	name := outputName(entry)

	if err := x.seen.Track(name, force); err != nil {
		return Result{Entry: entry, Skipped: true}, nil
	}

	if entry.ArchiveIndex >= uint32(len(x.meta.Archives)) {
		return Result{}, ageerr.New(ageerr.ArchiveOutOfRange, "entry %q references archive_index %d, have %d archives", entry.Name, entry.ArchiveIndex, len(x.meta.Archives))
	}
	archiveName := x.meta.Archives[entry.ArchiveIndex].Name

	src, err := x.handleFor(archiveName)
	if err != nil {
		return Result{}, err
	}

	buf := pool.GetEntryBuffer()
	defer pool.PutEntryBuffer(buf)
	buf.ExtendOrGrow(int(entry.Length))
	data := buf.Bytes()
	if _, err := src.ReadAt(data, int64(entry.Offset)); err != nil {
		return Result{}, ageerr.New(ageerr.ShortRead, "entry %q: %v", entry.Name, err)
	}

	if err := write(name, data); err != nil {
		return Result{}, ageerr.New(ageerr.IoError, "writing entry %q: %v", entry.Name, err)
	}

	return Result{Entry: entry}, nil
}

func (x *Extractor) handleFor(archiveName string) (Source, error) {
	id := hash.ID(archiveName)
	if src, ok := x.handles[id]; ok {
		return src, nil
	}

	src, err := x.open(archiveName)
	if err != nil {
		return nil, ageerr.New(ageerr.IoError, "opening archive %q: %v", archiveName, err)
	}

	x.handles[id] = src
	x.names[id] = archiveName

	return src, nil
}
