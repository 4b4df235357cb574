package img2ascii

import (
	"errors"
	"strings"
	"testing"
)

type cell struct {
	c  Coordinate
	ch rune
}

func charGrid(cells ...cell) *CharGrid {
	grid := NewOrderedMap[Coordinate, rune]()
	for _, cell := range cells {
		grid.Set(cell.c, cell.ch)
	}
	return grid
}

func TestRenderText(t *testing.T) {
	tests := []struct {
		name  string
		cells []cell
		want  string
	}{
		{
			name: "two by two",
			cells: []cell{
				{Coordinate{0, 0}, '.'}, {Coordinate{0, 1}, '#'},
				{Coordinate{1, 0}, '.'}, {Coordinate{1, 1}, '#'},
			},
			want: ".#\n.#\n",
		},
		{
			name: "rows sorted within a column",
			cells: []cell{
				{Coordinate{0, 2}, 'c'}, {Coordinate{0, 0}, 'a'}, {Coordinate{0, 1}, 'b'},
			},
			want: "abc\n",
		},
		{
			name: "columns in order of appearance",
			cells: []cell{
				{Coordinate{1, 0}, 'x'}, {Coordinate{0, 0}, 'y'}, {Coordinate{1, 1}, 'z'},
			},
			want: "xz\ny\n",
		},
		{
			name: "multibyte characters",
			cells: []cell{
				{Coordinate{0, 0}, 'é'}, {Coordinate{0, 1}, '█'},
			},
			want: "é█\n",
		},
		{
			name: "empty grid",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderText(charGrid(tt.cells...))
			if got != tt.want {
				t.Errorf("RenderText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderTextLineShape(t *testing.T) {
	grid := NewOrderedMap[Coordinate, rune]()
	for col := 0; col < 7; col++ {
		for row := 0; row < 11; row++ {
			grid.Set(Coordinate{col, row}, '+')
		}
	}

	text := RenderText(grid)
	if !strings.HasSuffix(text, "\n") {
		t.Fatal("Output should end with a newline")
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("Expected 7 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if len(line) != 11 {
			t.Errorf("Line %d has %d characters, want 11", i, len(line))
		}
	}
}

type failingWriter struct{}

var errWriteFailed = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWriteFailed }

func TestWriteTextError(t *testing.T) {
	grid := NewOrderedMap[Coordinate, rune]()
	grid.Set(Coordinate{0, 0}, '#')

	if err := WriteText(failingWriter{}, grid); !errors.Is(err, errWriteFailed) {
		t.Errorf("Expected write error, got %v", err)
	}
}
