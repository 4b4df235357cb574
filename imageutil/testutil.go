package imageutil

import (
	"image"
	"image/color"
)

// CreateGradientImage creates a horizontal gradient test image, black on
// the left to white on the right.
func CreateGradientImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(255 * x / max(1, width-1))
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

// CreateVerticalGradientImage creates a vertical gradient test image.
func CreateVerticalGradientImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		v := uint8(255 * y / max(1, height-1))
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

// CreateCheckerboardImage creates a black and white checkerboard whose
// top-left square is white.
func CreateCheckerboardImage(width, height, squareSize int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			isWhite := ((x/squareSize)+(y/squareSize))%2 == 0
			if isWhite {
				img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
			} else {
				img.SetNRGBA(x, y, color.NRGBA{R: 0, G: 0, B: 0, A: 255})
			}
		}
	}
	return img
}

// CreateSolidImage creates a solid color image.
func CreateSolidImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// CreateGrayBlocksImage creates an image of blockWidth x blockHeight
// tiles, tile (bx, by) filled with gray level levels[by][bx].
func CreateGrayBlocksImage(levels [][]uint8, blockWidth, blockHeight int) *image.NRGBA {
	rows := len(levels)
	cols := 0
	if rows > 0 {
		cols = len(levels[0])
	}
	img := image.NewNRGBA(image.Rect(0, 0, cols*blockWidth, rows*blockHeight))
	for y := 0; y < rows*blockHeight; y++ {
		for x := 0; x < cols*blockWidth; x++ {
			v := levels[y/blockHeight][x/blockWidth]
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}
