// Package crop cuts a map-icon frame and its title out of a decoded BGRA
// sprite-sheet tile strip by scanning for non-transparent content, rather
// than reading fixed coordinates out of a layout table.
package crop

import (
	"errors"

	"github.com/ageformats/age4fmt/agf"
)

// ErrNoContent is returned when a scan finds no non-transparent pixels in
// the region it was asked to bound.
var ErrNoContent = errors.New("crop: no non-transparent content in region")

// Region is a half-open pixel rectangle: [Left,Right) x [Top,Bottom).
type Region struct {
	Left, Top, Right, Bottom int
}

// Result holds the icon frame cropped from a sprite sheet and, when found,
// the title subimage cropped from the band below it.
type Result struct {
	IconRegion Region
	Icon       agf.Bgra32

	// TitleRegion and Title are nil when no title content was found below
	// the icon frame; TitleRegion is relative to the band below the icon,
	// not to the full sheet.
	TitleRegion *Region
	Title       *agf.Bgra32
}

// CropMapIcon divides full's width by 8, crops frame 0 of that strip down
// to its non-transparent bounds, then looks for a title subimage in the
// band below the cropped frame. A missing title is not an error; any other
// failure to bound the icon frame itself is.
func CropMapIcon(full *agf.Bgra32) (*Result, error) {
	frameWidth := full.Width / 8
	frame0 := subimage(full, 0, 0, frameWidth, full.Height)

	top, bottom, err := scanRowBounds(frame0)
	if err != nil {
		return nil, err
	}

	rowBand := subimage(frame0, 0, top, frameWidth, bottom)
	left, right, err := scanColBounds(rowBand)
	if err != nil {
		return nil, err
	}

	icon := subimage(frame0, left, top, right, bottom)

	result := &Result{
		IconRegion: Region{Left: left, Top: top, Right: right, Bottom: bottom},
		Icon:       *icon,
	}

	titleBand := subimage(full, 0, bottom, full.Width, full.Height)
	if titleRegion, title, err := cropTitle(titleBand); err == nil {
		result.TitleRegion = &titleRegion
		result.Title = title
	}

	return result, nil
}

// cropTitle crops the non-transparent bounds out of band, exactly the way
// CropMapIcon crops the icon frame, but over the whole width.
func cropTitle(band *agf.Bgra32) (Region, *agf.Bgra32, error) {
	top, bottom, err := scanRowBounds(band)
	if err != nil {
		return Region{}, nil, err
	}

	rowBand := subimage(band, 0, top, band.Width, bottom)
	left, right, err := scanColBounds(rowBand)
	if err != nil {
		return Region{}, nil, err
	}

	return Region{Left: left, Top: top, Right: right, Bottom: bottom}, subimage(band, left, top, right, bottom), nil
}

// scanRowBounds finds the first row containing a non-transparent pixel and
// the first row after it containing none.
func scanRowBounds(img *agf.Bgra32) (top, bottom int, err error) {
	top = -1
	for y := 0; y < img.Height; y++ {
		if rowHasAlpha(img, y) {
			top = y
			break
		}
	}
	if top == -1 {
		return 0, 0, ErrNoContent
	}

	bottom = img.Height
	for y := top; y < img.Height; y++ {
		if !rowHasAlpha(img, y) {
			bottom = y
			break
		}
	}
	if top == bottom {
		return 0, 0, ErrNoContent
	}

	return top, bottom, nil
}

// scanColBounds finds the first column containing a non-transparent pixel
// and the first column after it containing none, across all of img's rows.
func scanColBounds(img *agf.Bgra32) (left, right int, err error) {
	left = -1
	for x := 0; x < img.Width; x++ {
		if colHasAlpha(img, x) {
			left = x
			break
		}
	}
	if left == -1 {
		return 0, 0, ErrNoContent
	}

	right = img.Width
	for x := left; x < img.Width; x++ {
		if !colHasAlpha(img, x) {
			right = x
			break
		}
	}
	if left == right {
		return 0, 0, ErrNoContent
	}

	return left, right, nil
}

func rowHasAlpha(img *agf.Bgra32, y int) bool {
	rowStart := y * img.Width * 4
	for x := 0; x < img.Width; x++ {
		if img.Pixels[rowStart+x*4+3] > 0 {
			return true
		}
	}
	return false
}

func colHasAlpha(img *agf.Bgra32, x int) bool {
	for y := 0; y < img.Height; y++ {
		if img.Pixels[(y*img.Width+x)*4+3] > 0 {
			return true
		}
	}
	return false
}

// subimage copies out the [left,right) x [top,bottom) rectangle of src into
// a new, independently-owned Bgra32.
func subimage(src *agf.Bgra32, left, top, right, bottom int) *agf.Bgra32 {
	width := right - left
	height := bottom - top
	pixels := make([]byte, width*height*4)

	for y := 0; y < height; y++ {
		srcStart := ((top+y)*src.Width + left) * 4
		dstStart := y * width * 4
		copy(pixels[dstStart:dstStart+width*4], src.Pixels[srcStart:srcStart+width*4])
	}

	return &agf.Bgra32{Width: width, Height: height, Pixels: pixels}
}
