package section

const (
	fileHeaderSize = 14
	padSize        = 2
	infoHeaderSize = 40
	// BitmapHeaderMinSize is the minimum decoded buffer length accepted by
	// ParseBitmapHeader: file header, two pad bytes, then info header.
	BitmapHeaderMinSize = fileHeaderSize + padSize + infoHeaderSize
)

// FileHeader mirrors the 14-byte Windows BITMAPFILEHEADER.
type FileHeader struct {
	BfType      uint16
	BfSize      uint32
	BfReserved1 uint16
	BfReserved2 uint16
	BfOffBits   uint32
}

// InfoHeader mirrors the 40-byte Windows BITMAPINFOHEADER.
type InfoHeader struct {
	BiSize          uint32
	BiWidth         int32
	BiHeight        int32
	BiPlanes        uint16
	BiBitCount      uint16
	BiCompression   uint32
	BiSizeImage     uint32
	BiXPelsPerMeter int32
	BiYPelsPerMeter int32
	BiClrUsed       uint32
	BiClrImportant  uint32
}

// BitmapHeader is a decoded file header, info header, and trailing palette.
type BitmapHeader struct {
	FileHeader FileHeader
	InfoHeader InfoHeader
	Palette    []byte
}

// ParseBitmapHeader decodes buf as a BITMAPFILEHEADER, two bytes of padding,
// a BITMAPINFOHEADER, and a trailing BGRA palette. buf must be at least
// BitmapHeaderMinSize bytes; the palette is everything past that point, and
// its length must be a multiple of 4.
func ParseBitmapHeader(buf []byte) (BitmapHeader, error) {
	if len(buf) < BitmapHeaderMinSize {
		return BitmapHeader{}, newShortReadf("bitmap header buffer is %d bytes, need at least %d", len(buf), BitmapHeaderMinSize)
	}

	fh := FileHeader{
		BfType:      le.Uint16(buf[0:2]),
		BfSize:      le.Uint32(buf[2:6]),
		BfReserved1: le.Uint16(buf[6:8]),
		BfReserved2: le.Uint16(buf[8:10]),
		BfOffBits:   le.Uint32(buf[10:14]),
	}

	infoOff := fileHeaderSize + padSize
	ih := InfoHeader{
		BiSize:          le.Uint32(buf[infoOff+0 : infoOff+4]),
		BiWidth:         int32(le.Uint32(buf[infoOff+4 : infoOff+8])),
		BiHeight:        int32(le.Uint32(buf[infoOff+8 : infoOff+12])),
		BiPlanes:        le.Uint16(buf[infoOff+12 : infoOff+14]),
		BiBitCount:      le.Uint16(buf[infoOff+14 : infoOff+16]),
		BiCompression:   le.Uint32(buf[infoOff+16 : infoOff+20]),
		BiSizeImage:     le.Uint32(buf[infoOff+20 : infoOff+24]),
		BiXPelsPerMeter: int32(le.Uint32(buf[infoOff+24 : infoOff+28])),
		BiYPelsPerMeter: int32(le.Uint32(buf[infoOff+28 : infoOff+32])),
		BiClrUsed:       le.Uint32(buf[infoOff+32 : infoOff+36]),
		BiClrImportant:  le.Uint32(buf[infoOff+36 : infoOff+40]),
	}

	palette := buf[BitmapHeaderMinSize:]
	if len(palette)%4 != 0 {
		return BitmapHeader{}, newPaletteMisalignedf("palette is %d bytes, not a multiple of 4", len(palette))
	}

	return BitmapHeader{FileHeader: fh, InfoHeader: ih, Palette: palette}, nil
}
