package section

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ageformats/age4fmt/internal/ageerr"
)

func TestRead_Uncompressed(t *testing.T) {
	// header: original_length=4, original_length_repeat=4, length=4, then "DATA" literal.
	in := []byte{
		0x04, 0x00, 0x00, 0x00,
		0x04, 0x00, 0x00, 0x00,
		0x04, 0x00, 0x00, 0x00,
		'D', 'A', 'T', 'A',
	}

	got, err := Read(bytes.NewReader(in))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if string(got) != "DATA" {
		t.Fatalf("Read() = %q, want %q", got, "DATA")
	}
}

func TestRead_Compressed(t *testing.T) {
	// original_length=8 ("ABCDEFGH"), length=9 (the LZSS stream below),
	// which differs from original_length so the payload is decompressed.
	payload := []byte{0xFF, 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H'}

	var in []byte
	in = append(in, 0x08, 0x00, 0x00, 0x00)
	in = append(in, 0x08, 0x00, 0x00, 0x00)
	in = append(in, byte(len(payload)), 0x00, 0x00, 0x00)
	in = append(in, payload...)

	got, err := Read(bytes.NewReader(in))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if string(got) != "ABCDEFGH" {
		t.Fatalf("Read() = %q, want %q", got, "ABCDEFGH")
	}
}

func TestRead_CorruptSectionLengthMismatch(t *testing.T) {
	// original_length=99 (wrong), payload decodes to 8 bytes: mismatch.
	payload := []byte{0xFF, 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H'}

	var in []byte
	in = append(in, 99, 0x00, 0x00, 0x00)
	in = append(in, 99, 0x00, 0x00, 0x00)
	in = append(in, byte(len(payload)), 0x00, 0x00, 0x00)
	in = append(in, payload...)

	_, err := Read(bytes.NewReader(in))
	if err == nil {
		t.Fatal("Read() expected error, got nil")
	}
	if !errors.Is(err, ageerr.ErrCorruptSection) {
		t.Fatalf("Read() error = %v, want ErrCorruptSection", err)
	}
}

func TestRead_ShortHeader(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte{1, 2, 3}))
	if !errors.Is(err, ageerr.ErrShortRead) {
		t.Fatalf("Read() error = %v, want ErrShortRead", err)
	}
}

func TestRead_ShortPayload(t *testing.T) {
	in := []byte{
		0x04, 0x00, 0x00, 0x00,
		0x04, 0x00, 0x00, 0x00,
		0x04, 0x00, 0x00, 0x00,
		'D', 'A',
	}

	_, err := Read(bytes.NewReader(in))
	if !errors.Is(err, ageerr.ErrShortRead) {
		t.Fatalf("Read() error = %v, want ErrShortRead", err)
	}
}

