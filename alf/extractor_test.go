package alf

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/ageformats/age4fmt/metadata"
)

type memSource struct {
	data []byte
}

func (m *memSource) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || int(off) > len(m.data) {
		return 0, io.EOF
	}
	n := copy(p, m.data[off:])
	if n < len(p) {
		return n, io.ErrUnexpectedEOF
	}
	return n, nil
}

func (m *memSource) Close() error { return nil }

type failCloseSource struct {
	memSource
}

func (f *failCloseSource) Close() error { return errors.New("disk unplugged") }

func testMeta() *metadata.File {
	return &metadata.File{
		Archives: []metadata.ArchiveName{{Name: "a.alf"}},
		Entries: []metadata.Entry{
			{Name: "x.agf", ArchiveIndex: 0, Offset: 2, Length: 4},
			{Name: "y.bin", ArchiveIndex: 0, Offset: 6, Length: 3},
		},
	}
}

func TestExtractAll_Basic(t *testing.T) {
	archiveData := []byte("__DATA123END")
	opens := 0
	open := func(name string) (Source, error) {
		opens++
		if name != "a.alf" {
			t.Fatalf("unexpected archive name %q", name)
		}
		return &memSource{data: archiveData}, nil
	}

	written := map[string][]byte{}
	write := func(name string, data []byte) error {
		cp := make([]byte, len(data))
		copy(cp, data)
		written[name] = cp
		return nil
	}

	x := NewExtractor(testMeta(), open)
	defer x.Close()

	results, err := x.ExtractAll(write, nil, nil)
	if err != nil {
		t.Fatalf("ExtractAll() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if !bytes.Equal(written["x.agf"], []byte("DATA")) {
		t.Fatalf("x.agf = %q, want %q", written["x.agf"], "DATA")
	}
	if !bytes.Equal(written["y.bin"], []byte("123")) {
		t.Fatalf("y.bin = %q, want %q", written["y.bin"], "123")
	}
	if opens != 1 {
		t.Fatalf("archive opened %d times, want 1 (handle cache)", opens)
	}
}

func TestExtractAll_SkipsCollisionUnlessForce(t *testing.T) {
	archiveData := []byte("__DATA123END")
	open := func(name string) (Source, error) {
		return &memSource{data: archiveData}, nil
	}

	meta := &metadata.File{
		Archives: []metadata.ArchiveName{{Name: "a.alf"}},
		Entries: []metadata.Entry{
			{Name: "x.agf", ArchiveIndex: 0, Offset: 2, Length: 4},
			{Name: "x.agf", ArchiveIndex: 0, Offset: 6, Length: 3},
		},
	}

	var writes int
	write := func(name string, data []byte) error {
		writes++
		return nil
	}

	x := NewExtractor(meta, open)
	defer x.Close()

	results, err := x.ExtractAll(write, nil, nil)
	if err != nil {
		t.Fatalf("ExtractAll() error = %v", err)
	}
	if writes != 1 {
		t.Fatalf("writes = %d, want 1 (second entry should be skipped)", writes)
	}
	if !results[1].Skipped {
		t.Fatalf("results[1].Skipped = false, want true")
	}

	x2 := NewExtractor(meta, open)
	defer x2.Close()
	writes = 0
	results, err = x2.ExtractAll(write, []Option{Force()}, nil)
	if err != nil {
		t.Fatalf("ExtractAll() with Force error = %v", err)
	}
	if writes != 2 {
		t.Fatalf("writes = %d, want 2 with Force()", writes)
	}
	if results[1].Skipped {
		t.Fatalf("results[1].Skipped = true, want false with Force()")
	}
}

func TestExtractAll_ArchiveOutOfRange(t *testing.T) {
	meta := &metadata.File{
		Archives: nil,
		Entries: []metadata.Entry{
			{Name: "x.agf", ArchiveIndex: 0, Offset: 0, Length: 1},
		},
	}
	open := func(name string) (Source, error) {
		return &memSource{}, nil
	}

	x := NewExtractor(meta, open)
	defer x.Close()

	_, err := x.ExtractAll(func(string, []byte) error { return nil }, nil, nil)
	if err == nil {
		t.Fatal("ExtractAll() expected error, got nil")
	}
}

func TestExtractAll_StopsOnCancellation(t *testing.T) {
	meta := testMeta()
	open := func(name string) (Source, error) {
		return &memSource{data: []byte("__DATA123END")}, nil
	}

	calls := 0
	stop := func() bool {
		calls++
		return calls > 1
	}

	x := NewExtractor(meta, open)
	defer x.Close()

	results, err := x.ExtractAll(func(string, []byte) error { return nil }, nil, stop)
	if err != nil {
		t.Fatalf("ExtractAll() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1 (stopped after first entry)", len(results))
	}
}

var errWrite = errors.New("write failed")

func TestExtractAll_WriteError(t *testing.T) {
	meta := testMeta()
	open := func(name string) (Source, error) {
		return &memSource{data: []byte("__DATA123END")}, nil
	}

	x := NewExtractor(meta, open)
	defer x.Close()

	_, err := x.ExtractAll(func(string, []byte) error { return errWrite }, nil, nil)
	if err == nil {
		t.Fatal("ExtractAll() expected error, got nil")
	}
}

func TestClose_NamesFailingArchive(t *testing.T) {
	meta := testMeta()
	open := func(name string) (Source, error) {
		return &failCloseSource{memSource{data: []byte("__DATA123END")}}, nil
	}

	x := NewExtractor(meta, open)
	if _, err := x.ExtractAll(func(string, []byte) error { return nil }, nil, nil); err != nil {
		t.Fatalf("ExtractAll() error = %v", err)
	}

	err := x.Close()
	if err == nil {
		t.Fatal("Close() expected error, got nil")
	}
	if !strings.Contains(err.Error(), "a.alf") {
		t.Fatalf("Close() error = %v, want it to name archive %q", err, "a.alf")
	}
}
