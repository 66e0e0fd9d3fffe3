package agf

import (
	"io"

	"github.com/ageformats/age4fmt/endian"
	"github.com/ageformats/age4fmt/format"
	"github.com/ageformats/age4fmt/internal/ageerr"
	"github.com/ageformats/age4fmt/internal/options"
	"github.com/ageformats/age4fmt/section"
)

var le = endian.GetLittleEndianEngine()

// HeaderSize is the fixed size of the leading AGF container header.
const HeaderSize = 12

// acifHeaderSize is the fixed size of the type=2 ACIF sub-header.
const acifHeaderSize = 24

// decodeConfig holds Decode's optional behavior, set via Option values.
type decodeConfig struct {
	forceRGB bool
}

// Option configures Decode.
type Option = options.Option[*decodeConfig]

// ForceRGB swaps BGR(A) channel order to RGB(A) in the returned raster.
func ForceRGB() Option {
	return options.New(func(c *decodeConfig) error {
		c.forceRGB = true
		return nil
	})
}

// Decode reads a complete AGF blob from r and returns its decoded raster.
//
// Two variants are handled, matching the two observed agf_type values:
//
// Type 24-bit: the pixel section is a raw bottom-up row sequence and is
// never row-flipped — the source writes it as received. A 1-byte-per-pixel
// image decodes to Gray8; anything else reshapes to Bgr24 or Bgra32
// unmodified.
//
// Type 32-bit: an ACIF sub-header and an alpha-plane section follow the
// pixel section. If the pixel section's length exactly matches
// width*height*bpp, it is reshaped and row-flipped (this branch's source is
// bottom-up, unlike the 24-bit branch above) then the alpha plane is
// concatenated as a 4th channel, producing Bgra32. Otherwise the pixel
// bytes are palette indices; Decode returns Paletted8 with the palette and
// the indices. In this branch the alpha-plane section is read but neither
// composited nor returned: Paletted8 carries no alpha plane.
func Decode(r io.Reader, opts ...Option) (Raster, error) {
	cfg := decodeConfig{}
	if err := options.Apply(&cfg, opts...); err != nil {
		return Raster{}, err
	}

	var hdr [HeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return Raster{}, ageerr.New(ageerr.ShortRead, "agf header: %v", err)
	}

	agfType := format.AgfType(le.Uint32(hdr[4:8]))
	if agfType != format.AgfType24Bit && agfType != format.AgfType32Bit {
		return Raster{}, ageerr.New(ageerr.UnsupportedAgfType, "agf_type %d", uint32(agfType))
	}

	bitmapBuf, err := section.Read(r)
	if err != nil {
		return Raster{}, err
	}
	bmp, err := section.ParseBitmapHeader(bitmapBuf)
	if err != nil {
		return Raster{}, err
	}

	if bmp.InfoHeader.BiHeight < 0 {
		return Raster{}, ageerr.New(ageerr.UnsupportedBitmap, "top-down layout (biHeight=%d) unsupported", bmp.InfoHeader.BiHeight)
	}
	if bmp.InfoHeader.BiBitCount%8 != 0 {
		return Raster{}, ageerr.New(ageerr.UnsupportedBitmap, "biBitCount %d not a multiple of 8", bmp.InfoHeader.BiBitCount)
	}
	if bmp.InfoHeader.BiCompression != 0 {
		return Raster{}, ageerr.New(ageerr.UnsupportedBitmap, "biCompression %d unsupported", bmp.InfoHeader.BiCompression)
	}

	width := int(bmp.InfoHeader.BiWidth)
	height := int(bmp.InfoHeader.BiHeight)
	bpp := int(bmp.InfoHeader.BiBitCount / 8)

	pixelData, err := section.Read(r)
	if err != nil {
		return Raster{}, err
	}

	var raster Raster
	switch agfType {
	case format.AgfType24Bit:
		raster, err = decodeType1(width, height, bpp, pixelData)
	case format.AgfType32Bit:
		raster, err = decodeType2(r, width, height, bpp, pixelData, bmp.Palette)
	}
	if err != nil {
		return Raster{}, err
	}

	if cfg.forceRGB {
		swapChannelsInPlace(raster)
	}

	return raster, nil
}

func decodeType1(width, height, bpp int, pixelData []byte) (Raster, error) {
	if bpp == 1 {
		return Raster{Kind: format.RasterGray8, Gray: &Gray8{Width: width, Height: height, Pixels: pixelData}}, nil
	}

	switch bpp {
	case 3:
		return Raster{Kind: format.RasterBgr24, Bgr: &Bgr24{Width: width, Height: height, Pixels: pixelData}}, nil
	case 4:
		return Raster{Kind: format.RasterBgra32, Bgra: &Bgra32{Width: width, Height: height, Pixels: pixelData}}, nil
	default:
		return Raster{}, ageerr.New(ageerr.UnsupportedBitmap, "unsupported bytes-per-pixel %d in type=1 image", bpp)
	}
}

func decodeType2(r io.Reader, width, height, bpp int, pixelData, palette []byte) (Raster, error) {
	var acif [acifHeaderSize]byte
	if _, err := io.ReadFull(r, acif[:]); err != nil {
		return Raster{}, ageerr.New(ageerr.ShortRead, "acif sub-header: %v", err)
	}

	alphaPlane, err := section.Read(r)
	if err != nil {
		return Raster{}, err
	}

	direct := len(pixelData) == width*height*bpp
	if direct {
		flipped := flipRowsTopBottom(pixelData, width, height, bpp)
		out := make([]byte, 0, width*height*4)
		for row := 0; row < height; row++ {
			rowStart := row * width * bpp
			for col := 0; col < width; col++ {
				px := flipped[rowStart+col*bpp : rowStart+col*bpp+bpp]
				out = append(out, px...)
				alphaIdx := row*width + col
				if alphaIdx < len(alphaPlane) {
					out = append(out, alphaPlane[alphaIdx])
				} else {
					out = append(out, 0)
				}
			}
		}
		return Raster{Kind: format.RasterBgra32, Bgra: &Bgra32{Width: width, Height: height, Pixels: out}}, nil
	}

	var pal [1024]byte
	copy(pal[:], palette)

	return Raster{
		Kind: format.RasterPaletted8,
		Paletted: &Paletted8{
			Width:   width,
			Height:  height,
			Palette: pal,
			Indices: pixelData,
		},
	}, nil
}

func flipRowsTopBottom(data []byte, width, height, bpp int) []byte {
	rowSize := width * bpp
	out := make([]byte, len(data))
	for row := 0; row < height; row++ {
		srcStart := row * rowSize
		dstStart := (height - 1 - row) * rowSize
		if srcStart+rowSize > len(data) || dstStart+rowSize > len(out) {
			continue
		}
		copy(out[dstStart:dstStart+rowSize], data[srcStart:srcStart+rowSize])
	}
	return out
}

func swapChannelsInPlace(r Raster) {
	switch r.Kind {
	case format.RasterBgr24:
		swapTriplets(r.Bgr.Pixels, 3)
	case format.RasterBgra32:
		swapTriplets(r.Bgra.Pixels, 4)
	}
}

func swapTriplets(pixels []byte, stride int) {
	for i := 0; i+stride <= len(pixels); i += stride {
		pixels[i], pixels[i+2] = pixels[i+2], pixels[i]
	}
}
