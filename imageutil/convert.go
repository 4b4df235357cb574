package imageutil

import (
	"image"
	"image/color"
)

// Luma returns the BT.601 luminance of an 8-bit RGB triple:
// Y = 0.299*R + 0.587*G + 0.114*B, rounded.
func Luma(r, g, b uint8) uint8 {
	// Integer math, scaled by 1000
	lum := (299*int(r) + 587*int(g) + 114*int(b) + 500) / 1000
	if lum > 255 {
		lum = 255
	}
	return uint8(lum)
}

// ToGrayscale converts an image to grayscale using Luma. Colour values
// are taken unpremultiplied, so transparent pixels keep the luminance of
// their colour channels. The result always starts at the origin.
func ToGrayscale(img image.Image) *GrayImage {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	gray := NewGrayImage(width, height)

	switch src := img.(type) {
	case *image.Gray:
		for y := 0; y < height; y++ {
			copy(gray.Pix[y*gray.Stride:y*gray.Stride+width],
				src.Pix[src.PixOffset(bounds.Min.X, bounds.Min.Y+y):])
		}
	case *image.NRGBA:
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				c := src.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y)
				gray.Pix[y*gray.Stride+x] = Luma(c.R, c.G, c.B)
			}
		}
	default:
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				c := color.NRGBAModel.Convert(
					img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
				gray.Pix[y*gray.Stride+x] = Luma(c.R, c.G, c.B)
			}
		}
	}

	return gray
}
