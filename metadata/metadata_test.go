package metadata

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ageformats/age4fmt/internal/ageerr"
)

func nulPadded(s string, size int) []byte {
	b := make([]byte, size)
	copy(b, s)
	return b
}

func buildSection(payload []byte) []byte {
	var out []byte
	n := uint32(len(payload))
	out = append(out, byte(n), byte(n>>8), byte(n>>16), byte(n>>24))
	out = append(out, byte(n), byte(n>>8), byte(n>>16), byte(n>>24))
	out = append(out, byte(n), byte(n>>8), byte(n>>16), byte(n>>24))
	out = append(out, payload...)
	return out
}

func TestParse_Tiny(t *testing.T) {
	var body []byte
	body = append(body, 0x01, 0x00, 0x00, 0x00) // one archive
	body = append(body, nulPadded("a.alf", 256)...)
	body = append(body, 0x01, 0x00, 0x00, 0x00) // one entry
	entry := nulPadded("x.agf", 64)
	entry = append(entry, 0, 0, 0, 0) // archive_index=0
	entry = append(entry, 0, 0, 0, 0) // file_index=0
	entry = append(entry, 0xE8, 0x03, 0x00, 0x00) // offset=1000
	entry = append(entry, 0x2A, 0x00, 0x00, 0x00) // length=42
	body = append(body, entry...)

	var in []byte
	in = append(in, make([]byte, signatureSize)...)
	in = append(in, make([]byte, tailSize)...)
	in = append(in, buildSection(body)...)

	f, err := Parse(bytes.NewReader(in))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(f.Archives) != 1 || f.Archives[0].Name != "a.alf" {
		t.Fatalf("Archives = %+v", f.Archives)
	}
	if len(f.Entries) != 1 {
		t.Fatalf("Entries = %+v", f.Entries)
	}
	e := f.Entries[0]
	if e.Name != "x.agf" || e.ArchiveIndex != 0 || e.FileIndex != 0 || e.Offset != 1000 || e.Length != 42 {
		t.Fatalf("unexpected entry: %+v", e)
	}
}

func TestParse_S4ACSeeksToAddonOffset(t *testing.T) {
	var body []byte
	body = append(body, 0x00, 0x00, 0x00, 0x00) // zero archives
	body = append(body, 0x00, 0x00, 0x00, 0x00) // zero entries

	var in []byte
	sig := nulPadded("S4AC", signatureSize)
	in = append(in, sig...)
	in = append(in, make([]byte, tailSize)...)
	// the body section starts at the add-on seek offset (268), inside the
	// 300 bytes Parse reads first; zero-pad the rest of those 300 bytes.
	in = append(in[:addonSignatureSeek], buildSection(body)...)
	for len(in) < signatureSize+tailSize {
		in = append(in, 0)
	}

	f, err := Parse(bytes.NewReader(in))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(f.Archives) != 0 || len(f.Entries) != 0 {
		t.Fatalf("expected empty tables, got %+v / %+v", f.Archives, f.Entries)
	}
}

func TestParse_ArchiveOutOfRange(t *testing.T) {
	var body []byte
	body = append(body, 0x00, 0x00, 0x00, 0x00) // zero archives
	body = append(body, 0x01, 0x00, 0x00, 0x00) // one entry
	entry := nulPadded("x.agf", 64)
	entry = append(entry, 0, 0, 0, 0) // archive_index=0 but 0 archives exist
	entry = append(entry, 0, 0, 0, 0)
	entry = append(entry, 0, 0, 0, 0)
	entry = append(entry, 0, 0, 0, 0)
	body = append(body, entry...)

	var in []byte
	in = append(in, make([]byte, signatureSize)...)
	in = append(in, make([]byte, tailSize)...)
	in = append(in, buildSection(body)...)

	_, err := Parse(bytes.NewReader(in))
	if !errors.Is(err, ageerr.ErrArchiveOutOfRange) {
		t.Fatalf("Parse() error = %v, want ErrArchiveOutOfRange", err)
	}
}
