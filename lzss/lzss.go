// Package lzss implements the classical Storer–Szymanski ring-buffer
// decompressor used to unpack every compressed section payload in the AGE
// engine's container formats (metadata file, AGF image sections). The bitstream is a specific historical variant — a fixed
// 4096-byte ring seeded with spaces, 12-bit offsets, 4-bit lengths biased by
// +3 — reproduced bit-for-bit rather than delegated to a generic LZ library,
// since no generic LZSS implementation is guaranteed to share this exact
// framing.
package lzss

import "github.com/ageformats/age4fmt/internal/pool"

const (
	// ringSize is the sliding-window size, N in the classical description.
	ringSize = 4096
	// matchUpperLimit is F, the longest match the format can encode.
	matchUpperLimit = 18
	// threshold is the minimum-useful-match bias folded into every encoded
	// match length.
	threshold = 2
	// ringFill is the byte every ring position starts as.
	ringFill = 0x20
)

// Decode decompresses an LZSS-framed byte stream and returns the decoded
// bytes. It never errors: every short read mid-stream (on the literal byte,
// or on the two-byte match pair) terminates decoding normally, matching the
// original decoder exactly — the enclosing section reader is the component
// that validates the decoded length against the section's declared
// original_length (see package section).
func Decode(data []byte) []byte {
	var ring [ringSize + matchUpperLimit - 1]byte
	for i := range ring {
		ring[i] = ringFill
	}

	r := ringSize - matchUpperLimit
	pos := 0
	flags := 0

	out := pool.GetSectionBuffer()
	defer pool.PutSectionBuffer(out)

	for {
		flags >>= 1

		if flags&0x100 == 0 {
			if pos >= len(data) {
				break
			}
			c := data[pos]
			pos++
			flags = int(c) | 0xFF00
		}

		if flags&1 != 0 {
			if pos >= len(data) {
				break
			}
			c := data[pos]
			pos++

			out.MustWrite([]byte{c})
			ring[r] = c
			r = (r + 1) % ringSize

			continue
		}

		if pos+2 > len(data) {
			break
		}
		i := int(data[pos])
		j := int(data[pos+1])
		pos += 2

		i |= (j & 0xF0) << 4
		matchLen := (j & 0x0F) + threshold

		for k := 0; k <= matchLen; k++ {
			c := ring[(i+k)%ringSize]
			out.MustWrite([]byte{c})
			ring[r] = c
			r = (r + 1) % ringSize
		}
	}

	result := make([]byte, out.Len())
	copy(result, out.Bytes())

	return result
}
