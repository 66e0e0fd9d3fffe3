package rasterio

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/ageformats/age4fmt/agf"
	"github.com/ageformats/age4fmt/format"
)

func TestToImage_Gray8(t *testing.T) {
	r := agf.Raster{
		Kind: format.RasterGray8,
		Gray: &agf.Gray8{Width: 2, Height: 1, Pixels: []byte{0x10, 0x20}},
	}

	img, err := ToImage(r)
	if err != nil {
		t.Fatalf("ToImage() error = %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Fatalf("unexpected bounds: %v", img.Bounds())
	}
}

func TestToImage_Bgra32PreservesAlpha(t *testing.T) {
	r := agf.Raster{
		Kind: format.RasterBgra32,
		Bgra: &agf.Bgra32{Width: 1, Height: 1, Pixels: []byte{0x01, 0x02, 0x03, 0x80}},
	}

	img, err := ToImage(r)
	if err != nil {
		t.Fatalf("ToImage() error = %v", err)
	}
	rr, gg, bb, aa := img.At(0, 0).RGBA()
	_ = rr
	_ = gg
	_ = bb
	if aa>>8 != 0x80 {
		t.Fatalf("alpha = %#x, want 0x80", aa>>8)
	}
}

func TestWritePNG_RoundTripsDimensions(t *testing.T) {
	r := agf.Raster{
		Kind: format.RasterBgr24,
		Bgr:  &agf.Bgr24{Width: 2, Height: 2, Pixels: make([]byte, 2*2*3)},
	}

	var buf bytes.Buffer
	if err := WritePNG(&buf, r); err != nil {
		t.Fatalf("WritePNG() error = %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("unexpected bounds: %v", img.Bounds())
	}
}

func TestToImage_UnsupportedKind(t *testing.T) {
	if _, err := ToImage(agf.Raster{}); err == nil {
		t.Fatal("ToImage() expected error for zero-value Raster, got nil")
	}
}
