// Package persist writes and reads a disassembled BIN program as a compact,
// self-describing record: a gob-encoded bin.Program body wrapped in a tiny
// envelope that names the compression codec used on the body, plus a
// tab-separated export of its embedded strings.
package persist

import (
	"bytes"
	"encoding/gob"
	"io"
	"time"

	"github.com/ageformats/age4fmt/bin"
	"github.com/ageformats/age4fmt/compress"
	"github.com/ageformats/age4fmt/endian"
	"github.com/ageformats/age4fmt/format"
	"github.com/ageformats/age4fmt/internal/ageerr"
)

var le = endian.GetLittleEndianEngine()

// magic identifies a persisted record envelope. It has no version baked
// into its bytes; the single format-version byte that follows it does that
// job instead.
var magic = [4]byte{'A', '4', 'P', 'R'}

// formatVersion is bumped whenever the envelope layout changes incompatibly.
const formatVersion = 1

// envelopeHeaderSize is magic(4) + version(1) + codec(1) + length(4).
const envelopeHeaderSize = 4 + 1 + 1 + 4

// WriteRecord gob-encodes prog, compresses the result with the codec named
// by compression, writes the envelope to w, and returns stats describing
// the compression outcome (for logging, or for choosing a different codec
// on a subsequent run).
func WriteRecord(w io.Writer, prog *bin.Program, compression format.CompressionType) (compress.CompressionStats, error) {
	var body bytes.Buffer
	if err := gob.NewEncoder(&body).Encode(prog); err != nil {
		return compress.CompressionStats{}, ageerr.New(ageerr.IoError, "gob-encoding program: %v", err)
	}

	// A fresh codec instance per call, rather than the shared instance
	// compress.GetCodec returns, since Compressor's internal buffers may be
	// reused across calls on the same instance.
	codec, err := compress.CreateCodec(compression, "persisted record")
	if err != nil {
		return compress.CompressionStats{}, ageerr.New(ageerr.CorruptSection, "resolving codec: %v", err)
	}

	start := time.Now()
	payload, err := codec.Compress(body.Bytes())
	compressElapsed := time.Since(start)
	if err != nil {
		return compress.CompressionStats{}, ageerr.New(ageerr.IoError, "compressing record: %v", err)
	}

	stats := compress.CompressionStats{
		Algorithm:         compression,
		OriginalSize:      int64(body.Len()),
		CompressedSize:    int64(len(payload)),
		CompressionTimeNs: compressElapsed.Nanoseconds(),
	}
	stats.Ratio = stats.CompressionRatio()

	var hdr [envelopeHeaderSize]byte
	copy(hdr[0:4], magic[:])
	hdr[4] = formatVersion
	hdr[5] = byte(compression)
	le.PutUint32(hdr[6:10], uint32(len(payload)))

	if _, err := w.Write(hdr[:]); err != nil {
		return compress.CompressionStats{}, ageerr.New(ageerr.IoError, "writing envelope header: %v", err)
	}
	if _, err := w.Write(payload); err != nil {
		return compress.CompressionStats{}, ageerr.New(ageerr.IoError, "writing envelope payload: %v", err)
	}

	return stats, nil
}

// ReadRecord reads and decodes a record previously written by WriteRecord.
func ReadRecord(r io.Reader) (*bin.Program, error) {
	var hdr [envelopeHeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, ageerr.New(ageerr.ShortRead, "envelope header: %v", err)
	}
	if !bytes.Equal(hdr[0:4], magic[:]) {
		return nil, ageerr.New(ageerr.CorruptSection, "bad magic %x", hdr[0:4])
	}
	if hdr[4] != formatVersion {
		return nil, ageerr.New(ageerr.CorruptSection, "unsupported envelope version %d", hdr[4])
	}
	compression := format.CompressionType(hdr[5])
	length := le.Uint32(hdr[6:10])

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, ageerr.New(ageerr.ShortRead, "envelope payload: %v", err)
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, ageerr.New(ageerr.CorruptSection, "resolving codec: %v", err)
	}

	body, err := codec.Decompress(payload)
	if err != nil {
		return nil, ageerr.New(ageerr.CorruptSection, "decompressing record: %v", err)
	}

	var prog bin.Program
	if err := gob.NewDecoder(bytes.NewReader(body)).Decode(&prog); err != nil {
		return nil, ageerr.New(ageerr.CorruptSection, "gob-decoding program: %v", err)
	}

	return &prog, nil
}
