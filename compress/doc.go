// Package compress provides pluggable compression codecs for persisted
// records: disassembled BIN programs, exported string tables, and decoded
// rasters written to a cache file via package persist.
//
// # Overview
//
// Four codecs are available, selected per-record via format.CompressionType:
//   - None: no compression (fastest, largest)
//   - Zstd: best compression ratio, moderate speed
//   - S2: balanced compression and speed
//   - LZ4: fastest decompression, moderate compression
//
// # Architecture
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// CreateCodec and GetCodec resolve a format.CompressionType to a Codec;
// persist.WriteRecord uses CreateCodec to build the codec it names in the
// record's envelope, and persist.ReadRecord uses GetCodec to reverse that
// choice.
//
// # Choosing a codec
//
// Zstd favors cold, rarely-re-read caches (a full metadata-file dump, a
// strings-table export) where compression ratio matters more than CPU.
// LZ4 and S2 favor records re-read often (a disassembled-program cache
// consulted on every `age4ctl disasm` run) where decompression speed
// dominates. None is appropriate for data that's already compact, such as
// a small instruction list.
//
// # Thread safety
//
// All codec implementations are safe for concurrent use.
package compress
