package img2ascii

import (
	"bufio"
	"cmp"
	"io"
	"slices"
	"strings"
)

type renderCell struct {
	row int
	ch  rune
}

// groupColumns splits grid into columns, keeping the order in which
// columns were first seen, with each column's cells sorted by row.
func groupColumns(grid *CharGrid) [][]renderCell {
	index := make(map[int]int)
	var columns [][]renderCell
	grid.Iterate(func(c Coordinate, ch rune) {
		i, ok := index[c.Col]
		if !ok {
			i = len(columns)
			index[c.Col] = i
			columns = append(columns, nil)
		}
		columns[i] = append(columns[i], renderCell{row: c.Row, ch: ch})
	})
	for _, col := range columns {
		slices.SortStableFunc(col, func(a, b renderCell) int {
			return cmp.Compare(a.row, b.row)
		})
	}
	return columns
}

// WriteText serializes grid to w. Each column of the grid becomes one
// line: its characters ordered by row, without separators, followed by
// a newline. Columns are written in the order they appear in grid.
func WriteText(w io.Writer, grid *CharGrid) error {
	bw := bufio.NewWriter(w)
	for _, col := range groupColumns(grid) {
		for _, cell := range col {
			if _, err := bw.WriteRune(cell.ch); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// RenderText returns the text form of grid, see WriteText.
func RenderText(grid *CharGrid) string {
	var sb strings.Builder
	sb.Grow(grid.Len() + grid.Len()/8)
	// strings.Builder never fails
	_ = WriteText(&sb, grid)
	return sb.String()
}
