package img2ascii

import (
	"fmt"
	"slices"
)

// Coordinate identifies one block of the profiled image. Col selects the
// output line and Row the position within that line; see ProfileBlocks
// for how they relate to the source image axes.
type Coordinate struct {
	Col int
	Row int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// BrightnessGrid maps every block coordinate to its RMS luminance in
// [0, 255], in the order the blocks were profiled.
type BrightnessGrid = OrderedMap[Coordinate, int]

// CharGrid is the final block coordinate to character assignment.
type CharGrid = OrderedMap[Coordinate, rune]

// GlyphSequence is a character set ranked by ink density. Duplicates are
// kept; only the order carries meaning.
type GlyphSequence []rune

func (g GlyphSequence) String() string {
	return string(g)
}

// NewBrightnessGrid returns an empty BrightnessGrid.
func NewBrightnessGrid() *BrightnessGrid {
	return NewOrderedMap[Coordinate, int]()
}

// DistinctBrightness returns the set of brightness values present in
// the grid, sorted ascending.
func DistinctBrightness(grid *BrightnessGrid) []int {
	seen := make(map[int]struct{}, 256)
	distinct := make([]int, 0, 256)
	grid.Iterate(func(_ Coordinate, v int) {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			distinct = append(distinct, v)
		}
	})
	slices.Sort(distinct)
	return distinct
}

// GridSize returns the number of columns and the largest number of rows
// found in any column of the grid.
func GridSize[V any](grid *OrderedMap[Coordinate, V]) (cols, rows int) {
	perCol := make(map[int]int)
	grid.Iterate(func(c Coordinate, _ V) {
		perCol[c.Col]++
	})
	for _, n := range perCol {
		rows = max(rows, n)
	}
	return len(perCol), rows
}
