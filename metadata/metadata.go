// Package metadata parses the SYS4INI.BIN / *.AAI container: a fixed header
// followed by one section holding a table of archive names and a table of
// per-file entries pointing into those archives.
package metadata

import (
	"bytes"
	"io"

	"github.com/ageformats/age4fmt/endian"
	"github.com/ageformats/age4fmt/internal/ageerr"
	"github.com/ageformats/age4fmt/section"
)

var le = endian.GetLittleEndianEngine()

const (
	signatureSize = 240
	tailSize      = 60
	// addonSignatureSeek is the absolute offset the body section begins at
	// for add-on archives (signature prefix "S4AC"), a hack mirrored from
	// the original reader's "Hack for addon archives" comment.
	addonSignatureSeek = 268
	archiveRecordSize  = 256
	entryRecordSize    = 80
)

// ArchiveName is one entry in the archive name table.
type ArchiveName struct {
	Name string
}

// Entry is one entry in the per-file table, pointing into an archive by
// index.
type Entry struct {
	Name         string
	ArchiveIndex uint32
	FileIndex    uint32
	Offset       uint32
	Length       uint32
}

// File is a fully-parsed metadata container.
type File struct {
	Signature [signatureSize]byte
	Tail      [tailSize]byte
	Archives  []ArchiveName
	Entries   []Entry
}

// Parse reads a metadata file from r. If the 4-byte prefix of the signature
// block reads "S4AC" (the add-on-archive variant), the body section is read
// starting at absolute offset 268 instead of immediately following the
// 300-byte header.
func Parse(r io.ReadSeeker) (*File, error) {
	var f File

	if _, err := io.ReadFull(r, f.Signature[:]); err != nil {
		return nil, ageerr.New(ageerr.ShortRead, "metadata signature: %v", err)
	}
	if _, err := io.ReadFull(r, f.Tail[:]); err != nil {
		return nil, ageerr.New(ageerr.ShortRead, "metadata header tail: %v", err)
	}

	if bytes.Equal(f.Signature[0:4], []byte("S4AC")) {
		if _, err := r.Seek(addonSignatureSeek, io.SeekStart); err != nil {
			return nil, ageerr.New(ageerr.IoError, "seeking to add-on body offset: %v", err)
		}
	}

	body, err := section.Read(r)
	if err != nil {
		return nil, err
	}

	return parseBody(&f, body)
}

func parseBody(f *File, body []byte) (*File, error) {
	stream := bytes.NewReader(body)

	var countBuf [4]byte
	if _, err := io.ReadFull(stream, countBuf[:]); err != nil {
		return nil, ageerr.New(ageerr.ShortRead, "archive count: %v", err)
	}
	archiveCount := le.Uint32(countBuf[:])

	f.Archives = make([]ArchiveName, archiveCount)
	for i := range f.Archives {
		var rec [archiveRecordSize]byte
		if _, err := io.ReadFull(stream, rec[:]); err != nil {
			return nil, ageerr.New(ageerr.ShortRead, "archive record %d: %v", i, err)
		}
		f.Archives[i] = ArchiveName{Name: trimNUL(rec[:])}
	}

	if _, err := io.ReadFull(stream, countBuf[:]); err != nil {
		return nil, ageerr.New(ageerr.ShortRead, "entry count: %v", err)
	}
	entryCount := le.Uint32(countBuf[:])

	f.Entries = make([]Entry, entryCount)
	for i := range f.Entries {
		var rec [entryRecordSize]byte
		if _, err := io.ReadFull(stream, rec[:]); err != nil {
			return nil, ageerr.New(ageerr.ShortRead, "entry record %d: %v", i, err)
		}
		f.Entries[i] = Entry{
			Name:         trimNUL(rec[0:64]),
			ArchiveIndex: le.Uint32(rec[64:68]),
			FileIndex:    le.Uint32(rec[68:72]),
			Offset:       le.Uint32(rec[72:76]),
			Length:       le.Uint32(rec[76:80]),
		}
		if f.Entries[i].ArchiveIndex >= archiveCount {
			return nil, ageerr.New(ageerr.ArchiveOutOfRange, "entry %d references archive_index %d, have %d archives", i, f.Entries[i].ArchiveIndex, archiveCount)
		}
	}

	return f, nil
}

func trimNUL(b []byte) string {
	if idx := bytes.IndexByte(b, 0); idx >= 0 {
		b = b[:idx]
	}
	return string(b)
}
