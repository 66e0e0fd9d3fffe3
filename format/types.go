// Package format holds small shared enums used across the format-decoding
// pipeline: the AGF container's on-disk type discriminator, the tag of a
// decoded raster, and the compression scheme used by persisted BIN records.
package format

type (
	// AgfType is the agf_type discriminator at byte offset 4 of an AGF blob.
	AgfType uint32
	// RasterKind tags the shape of a decoded image (see package agf).
	RasterKind uint8
	// CompressionType selects the codec persisted BIN records are written
	// with (see package persist).
	CompressionType uint8
)

const (
	// AgfType24Bit is the 24-bit AGF variant (spec §3/§4.4).
	AgfType24Bit AgfType = 1
	// AgfType32Bit is the 32-bit AGF variant, carrying an ACIF sub-header
	// and a separate alpha/transparency plane.
	AgfType32Bit AgfType = 2
)

const (
	RasterGray8 RasterKind = iota + 1
	RasterBgr24
	RasterBgra32
	RasterPaletted8
)

const (
	CompressionNone CompressionType = iota + 1
	CompressionZstd
	CompressionS2
	CompressionLZ4
)

func (t AgfType) String() string {
	switch t {
	case AgfType24Bit:
		return "24-bit"
	case AgfType32Bit:
		return "32-bit"
	default:
		return "Unknown"
	}
}

func (k RasterKind) String() string {
	switch k {
	case RasterGray8:
		return "Gray8"
	case RasterBgr24:
		return "Bgr24"
	case RasterBgra32:
		return "Bgra32"
	case RasterPaletted8:
		return "Paletted8"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
