// Package section reads the 12-byte framing envelope that precedes every
// compressed or literal payload in the AGE engine's container formats, and
// the Windows-style bitmap header embedded inside some of those payloads.
package section

import (
	"fmt"
	"io"

	"github.com/ageformats/age4fmt/endian"
	"github.com/ageformats/age4fmt/internal/ageerr"
	"github.com/ageformats/age4fmt/internal/pool"
	"github.com/ageformats/age4fmt/lzss"
)

var le = endian.GetLittleEndianEngine()

// HeaderSize is the fixed size of the section envelope's length header.
const HeaderSize = 12

// Read parses a 12-byte section header from r, then reads its payload and
// returns the decoded content. If length equals originalLength the payload
// is returned as read; otherwise it is LZSS-decompressed and its decoded
// length is checked against originalLength, returning ageerr.ErrCorruptSection
// on mismatch.
func Read(r io.Reader) ([]byte, error) {
	var hdr [HeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("section header: %w", ageerr.ErrShortRead)
	}

	originalLength := le.Uint32(hdr[0:4])
	// originalLength2 at hdr[4:8] is a duplicate field; read but unused.
	length := le.Uint32(hdr[8:12])

	buf := pool.GetSectionBuffer()
	defer pool.PutSectionBuffer(buf)
	buf.ExtendOrGrow(int(length))
	payload := buf.Bytes()
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("section payload (%d bytes): %w", length, ageerr.ErrShortRead)
	}

	if length == originalLength {
		result := make([]byte, length)
		copy(result, payload)

		return result, nil
	}

	decoded := lzss.Decode(payload)
	if uint32(len(decoded)) != originalLength {
		return nil, fmt.Errorf("decoded section length %d, want %d: %w", len(decoded), originalLength, ageerr.ErrCorruptSection)
	}

	return decoded, nil
}
