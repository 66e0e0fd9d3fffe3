// Package rasterio converts a decoded agf.Raster to a standard library
// image.Image and writes it out as PNG. It is the one place in this module
// that reaches for an external image representation; everywhere else a
// raster is just the tagged union package agf returns.
package rasterio

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/ageformats/age4fmt/agf"
	"github.com/ageformats/age4fmt/format"
)

// ToImage converts r to an image.Image. Gray8 becomes image.Gray, Bgr24 and
// Bgra32 become image.NRGBA (alpha fully opaque for Bgr24), and Paletted8
// becomes image.Paletted using r's 256-entry BGRA palette verbatim — each
// palette entry's 4th byte is its alpha; no separate alpha plane is applied.
func ToImage(r agf.Raster) (image.Image, error) {
	switch r.Kind {
	case format.RasterGray8:
		return grayToImage(r.Gray), nil
	case format.RasterBgr24:
		return bgr24ToImage(r.Bgr), nil
	case format.RasterBgra32:
		return bgra32ToImage(r.Bgra), nil
	case format.RasterPaletted8:
		return palettedToImage(r.Paletted), nil
	default:
		return nil, fmt.Errorf("rasterio: unsupported raster kind %s", r.Kind)
	}
}

// WritePNG converts r and encodes it as PNG to w.
func WritePNG(w io.Writer, r agf.Raster) error {
	img, err := ToImage(r)
	if err != nil {
		return err
	}

	return png.Encode(w, img)
}

func grayToImage(g *agf.Gray8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	copy(img.Pix, g.Pixels)
	return img
}

func bgr24ToImage(b *agf.Bgr24) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for i := 0; i < b.Width*b.Height; i++ {
		bb, gg, rr := b.Pixels[i*3], b.Pixels[i*3+1], b.Pixels[i*3+2]
		copy(img.Pix[i*4:i*4+4], []byte{rr, gg, bb, 0xFF})
	}
	return img
}

func bgra32ToImage(b *agf.Bgra32) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for i := 0; i < b.Width*b.Height; i++ {
		bb, gg, rr, aa := b.Pixels[i*4], b.Pixels[i*4+1], b.Pixels[i*4+2], b.Pixels[i*4+3]
		copy(img.Pix[i*4:i*4+4], []byte{rr, gg, bb, aa})
	}
	return img
}

func palettedToImage(p *agf.Paletted8) *image.Paletted {
	pal := make(color.Palette, 256)
	for i := 0; i < 256; i++ {
		b, g, r, a := p.Palette[i*4], p.Palette[i*4+1], p.Palette[i*4+2], p.Palette[i*4+3]
		pal[i] = color.NRGBA{R: r, G: g, B: b, A: a}
	}

	img := image.NewPaletted(image.Rect(0, 0, p.Width, p.Height), pal)
	copy(img.Pix, p.Indices)
	return img
}
