// Package agf decodes AGF image containers: a small header, a bitmap
// header section, a pixel-data section and, for 32-bit images, an ACIF
// sub-header plus an alpha-plane section. It returns one of a handful of
// concrete raster shapes rather than a single dynamically-typed buffer.
package agf

import "github.com/ageformats/age4fmt/format"

// Raster is a decoded image. Exactly one of Gray, Bgr, Bgra, or Paletted is
// non-nil, matching the tag in Kind.
type Raster struct {
	Kind format.RasterKind

	Gray     *Gray8
	Bgr      *Bgr24
	Bgra     *Bgra32
	Paletted *Paletted8
}

// Gray8 is a single 8-bit channel raster.
type Gray8 struct {
	Width, Height int
	Pixels        []byte
}

// Bgr24 is a 3-channel BGR raster.
type Bgr24 struct {
	Width, Height int
	Pixels        []byte
}

// Bgra32 is a 4-channel BGRA raster.
type Bgra32 struct {
	Width, Height int
	Pixels        []byte
}

// Paletted8 is a palette-indexed raster: one byte per pixel indexing a
// 256-entry BGRA palette. The alpha plane, when the source AGF carried one,
// is neither composited nor carried here; see Decode's documentation.
type Paletted8 struct {
	Width, Height int
	Palette       [1024]byte // 256 entries * 4 bytes (BGRA)
	Indices       []byte
}
