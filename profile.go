package img2ascii

import (
	"image"
	"math"

	"github.com/wbrown/img2ascii/imageutil"
)

// ProfileBlocks partitions img into blockWidth x blockHeight blocks and
// measures the RMS luminance of each.
//
// The image is transposed first, so blocks are walked down the source
// image: Col counts blocks along the source's vertical axis and becomes
// the output line, Row counts blocks along the horizontal axis. Hence
// blockWidth spans source rows and blockHeight spans source columns; the
// default 4x2 gives blocks twice as tall as wide, matching a character
// cell.
//
// Blocks on the right and bottom edges keep their full size; the part
// outside the image counts as black. Every column has the same number of
// rows.
func ProfileBlocks(img image.Image, blockWidth, blockHeight int) (*BrightnessGrid, error) {
	if err := validateBlockSize(blockWidth, blockHeight); err != nil {
		return nil, err
	}
	gray := imageutil.ToGrayscale(imageutil.Transpose(img))
	return profileGray(gray, blockWidth, blockHeight), nil
}

func validateBlockSize(blockWidth, blockHeight int) error {
	if blockWidth <= 0 {
		return &ConfigError{Field: "block width", Reason: "must be positive"}
	}
	if blockHeight <= 0 {
		return &ConfigError{Field: "block height", Reason: "must be positive"}
	}
	return nil
}

func profileGray(gray *imageutil.GrayImage, blockWidth, blockHeight int) *BrightnessGrid {
	grid := NewBrightnessGrid()
	width, height := gray.Width(), gray.Height()

	col := 0
	for x := 0; x < width; x += blockWidth {
		row := 0
		for y := 0; y < height; y += blockHeight {
			rect := image.Rect(x, y, x+blockWidth, y+blockHeight)
			grid.Set(Coordinate{Col: col, Row: row}, BlockRMS(gray, rect))
			row++
		}
		col++
	}
	return grid
}

// BlockRMS returns the root mean square of the gray levels inside rect,
// rounded half to even. Pixels of rect outside the image are 0 but still
// count towards the mean. An empty rect measures 0.
func BlockRMS(gray *imageutil.GrayImage, rect image.Rectangle) int {
	if rect.Empty() {
		return 0
	}

	var sumSq uint64
	in := rect.Intersect(gray.Bounds())
	if !in.Empty() {
		for y := in.Min.Y; y < in.Max.Y; y++ {
			row := gray.Pix[gray.PixOffset(in.Min.X, y):gray.PixOffset(in.Max.X, y)]
			for _, v := range row {
				sumSq += uint64(v) * uint64(v)
			}
		}
	}
	n := float64(rect.Dx() * rect.Dy())
	return int(math.RoundToEven(math.Sqrt(float64(sumSq) / n)))
}
