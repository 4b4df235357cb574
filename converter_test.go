package img2ascii

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wbrown/img2ascii/imageutil"
	"github.com/wbrown/img2ascii/logx"
)

// twoByTwoImage draws the 2x2 block grid {(0,0):10, (0,1):200,
// (1,0):10, (1,1):200} for 4x2 blocks.
func twoByTwoImage() *image.NRGBA {
	return imageutil.CreateGrayBlocksImage([][]uint8{
		{10, 200},
		{10, 200},
	}, 2, 4)
}

func savePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.png")
	if err := imageutil.SavePNG(img, path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConvertImage(t *testing.T) {
	face := loadTestFace(t, FontGoRegular)
	conv := NewConverter(WithCharset("#."))

	res, err := conv.ConvertImage(face, twoByTwoImage())
	if err != nil {
		t.Fatalf("ConvertImage: %v", err)
	}
	if res.Text != ".#\n.#\n" {
		t.Errorf("Text = %q, want %q", res.Text, ".#\n.#\n")
	}
	if res.Columns != 2 || res.Rows != 2 || res.DistinctBrightness != 2 {
		t.Errorf("Unexpected shape: %d columns, %d rows, %d levels",
			res.Columns, res.Rows, res.DistinctBrightness)
	}
	if res.Glyphs.String() != ".#" {
		t.Errorf("Glyphs = %q, want %q", res.Glyphs, ".#")
	}
	if len(res.Warnings) != 0 {
		t.Errorf("Unexpected warnings: %v", res.Warnings)
	}

	inverted, err := NewConverter(WithCharset("#."), WithInvert(true)).
		ConvertImage(face, twoByTwoImage())
	if err != nil {
		t.Fatal(err)
	}
	if inverted.Text != "#.\n#.\n" {
		t.Errorf("Inverted text = %q, want %q", inverted.Text, "#.\n#.\n")
	}
}

func TestConvertImageShape(t *testing.T) {
	face := loadTestFace(t, FontGoRegular)

	// 30 wide and 17 tall with 4x2 blocks: 17/4 -> 5 lines of 30/2 = 15
	res, err := NewConverter().ConvertImage(face, imageutil.CreateGradientImage(30, 17))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(res.Text, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("Expected 5 lines, got %d:\n%s", len(lines), res.Text)
	}
	for i, line := range lines {
		if n := len([]rune(line)); n != 15 {
			t.Errorf("Line %d has %d characters, want 15", i, n)
		}
	}
}

func TestConvertImageTargetWidth(t *testing.T) {
	face := loadTestFace(t, FontGoRegular)

	res, err := NewConverter(WithTargetWidth(5)).
		ConvertImage(face, imageutil.CreateGradientImage(40, 40))
	if err != nil {
		t.Fatal(err)
	}
	if res.Rows != 5 {
		t.Errorf("Rows = %d, want 5", res.Rows)
	}
}

func TestConvertImageDegenerate(t *testing.T) {
	face := loadTestFace(t, FontGoRegular)
	gray := color.NRGBA{R: 90, G: 90, B: 90, A: 255}

	var logs bytes.Buffer
	conv := NewConverter(WithCharset(" .#"), WithLogger(logx.NewWriterLogger(&logs, logx.WARN)))
	res, err := conv.ConvertImage(face, imageutil.CreateSolidImage(8, 8, gray))
	if err != nil {
		t.Fatal(err)
	}

	if len(res.Warnings) != 1 {
		t.Fatalf("Expected one warning, got %v", res.Warnings)
	}
	if strings.Trim(res.Text, "#\n") != "" {
		t.Errorf("Flat image should use the last glyph only, got %q", res.Text)
	}
	if !strings.Contains(logs.String(), "degenerate input") {
		t.Errorf("Warning not logged, log was %q", logs.String())
	}

	res, err = NewConverter(WithCharset("@@")).ConvertImage(face, twoByTwoImage())
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Warnings) != 1 || res.Text != "@@\n@@\n" {
		t.Errorf("Single glyph: warnings %v, text %q", res.Warnings, res.Text)
	}
}

func TestConvertImageEmpty(t *testing.T) {
	face := loadTestFace(t, FontGoRegular)
	_, err := NewConverter().ConvertImage(face, image.NewNRGBA(image.Rect(0, 0, 0, 0)))
	if !errors.Is(err, ErrEmptyImage) {
		t.Errorf("Expected ErrEmptyImage, got %v", err)
	}
}

func TestConvertFromFiles(t *testing.T) {
	path := savePNG(t, twoByTwoImage())

	res, err := NewConverter(WithCharset(".#")).Convert(FontGoRegular, path)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if res.Text != ".#\n.#\n" {
		t.Errorf("Text = %q, want %q", res.Text, ".#\n.#\n")
	}
}

func TestConvertErrors(t *testing.T) {
	dir := t.TempDir()
	imgPath := savePNG(t, twoByTwoImage())
	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}

	var cfgErr *ConfigError
	var resErr *ResourceError

	// configuration is checked before the missing files are noticed
	_, err := NewConverter(WithBlockSize(0, 2)).Convert("/no/such/font.ttf", "/no/such/image.png")
	if !errors.As(err, &cfgErr) {
		t.Errorf("Bad block size: expected ConfigError, got %v", err)
	}
	_, err = NewConverter(WithPreset("nope")).Convert("/no/such/font.ttf", imgPath)
	if !errors.As(err, &cfgErr) {
		t.Errorf("Bad preset: expected ConfigError, got %v", err)
	}

	_, err = NewConverter().Convert("/no/such/font.ttf", imgPath)
	if !errors.As(err, &resErr) || resErr.Kind != ResourceFont {
		t.Errorf("Missing font: expected font ResourceError, got %v", err)
	}

	for _, path := range []string{filepath.Join(dir, "missing.png"), garbage} {
		_, err = NewConverter().Convert(FontGoRegular, path)
		if !errors.As(err, &resErr) || resErr.Kind != ResourceImage {
			t.Errorf("%s: expected image ResourceError, got %v", path, err)
		}
	}
}

func TestWriteOutput(t *testing.T) {
	var stdout bytes.Buffer
	if err := WriteOutput("", "ab\n", &stdout); err != nil {
		t.Fatal(err)
	}
	if stdout.String() != "ab\n" {
		t.Errorf("stdout = %q", stdout.String())
	}

	path := filepath.Join(t.TempDir(), "out.txt")
	if err := WriteOutput(path, "cd\n", &stdout); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "cd\n" {
		t.Errorf("File holds %q, %v", data, err)
	}

	err = WriteOutput(filepath.Join(t.TempDir(), "missing", "out.txt"), "x", &stdout)
	var resErr *ResourceError
	if !errors.As(err, &resErr) || resErr.Kind != ResourceOutput {
		t.Errorf("Expected output ResourceError, got %v", err)
	}
}

func TestConvertFile(t *testing.T) {
	opts := DefaultOptions()
	opts.FontFile = FontGoRegular
	opts.ImageFile = savePNG(t, twoByTwoImage())
	opts.Charset = ".#"
	opts.OutputFile = filepath.Join(t.TempDir(), "out.txt")

	var stdout bytes.Buffer
	res, err := ConvertFile(opts, logx.Nop, &stdout)
	if err != nil {
		t.Fatalf("ConvertFile: %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("Nothing should go to stdout, got %q", stdout.String())
	}
	data, _ := os.ReadFile(opts.OutputFile)
	if string(data) != res.Text || res.Text != ".#\n.#\n" {
		t.Errorf("File holds %q, result %q", data, res.Text)
	}

	opts.ImageFile = ""
	var cfgErr *ConfigError
	if _, err := ConvertFile(opts, nil, &stdout); !errors.As(err, &cfgErr) {
		t.Errorf("Expected ConfigError, got %v", err)
	}
}
