package imageutil

import (
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
)

// ExifOrientation returns the EXIF orientation tag (1-8) of an encoded
// image, or 1 when there is none.
func ExifOrientation(r io.Reader) int {
	x, err := exif.Decode(r)
	if err == nil && x != nil {
		orient, err := x.Get(exif.Orientation)
		if err == nil && orient != nil && orient.Count != 0 {
			if i, err := orient.Int(0); err == nil && i >= 1 && i <= 8 {
				return i
			}
		}
	}
	return 1
}

// RotWH returns the width and height an image of w x h will have once
// orientation orient has been applied.
func RotWH(orient int, w, h int) (int, int) {
	switch orient {
	case 5, 6, 7, 8:
		w, h = h, w
	}
	return w, h
}

// Orient undoes the transformation described by an EXIF orientation tag.
func Orient(img image.Image, orient int) *image.NRGBA {
	switch orient {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.Transpose(img)
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.Transverse(img)
	case 8:
		return imaging.Rotate90(img)
	}
	return ToNRGBA(img)
}

// Transpose mirrors img across its main diagonal: pixel (x, y) moves to
// (y, x). This is a left/right flip followed by a 90 degree
// counter-clockwise rotation.
func Transpose(img image.Image) *image.NRGBA {
	return imaging.Transpose(img)
}
