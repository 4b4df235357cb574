package img2ascii

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"time"

	"golang.org/x/image/font"

	"github.com/wbrown/img2ascii/imageutil"
	"github.com/wbrown/img2ascii/logx"
)

// ErrEmptyImage is returned for images without a single pixel.
var ErrEmptyImage = errors.New("image has no pixels")

// Converter turns images into character art. A Converter holds only
// configuration; every conversion allocates its own grids, so one
// Converter can be reused for any number of images.
type Converter struct {
	BlockWidth  int
	BlockHeight int
	FontSize    int
	Charset     string
	Preset      string
	Invert      bool
	// TargetWidth, when positive, resizes the image so that each output
	// line is TargetWidth characters long.
	TargetWidth int

	lx logx.LoggerX
}

// ConverterOption is a functional option for configuring a Converter.
type ConverterOption func(*Converter)

// NewConverter creates a new Converter with the given options.
// Default values: 4x2 blocks, font size 99, the symbol character set,
// no inversion, no resizing, no logging.
func NewConverter(opts ...ConverterOption) *Converter {
	c := &Converter{
		BlockWidth:  DefaultBlockWidth,
		BlockHeight: DefaultBlockHeight,
		FontSize:    DefaultFontSize,
		Charset:     DefaultCharset,
		lx:          logx.Nop,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithBlockSize sets the block dimensions in pixels.
func WithBlockSize(width, height int) ConverterOption {
	return func(c *Converter) {
		c.BlockWidth = width
		c.BlockHeight = height
	}
}

// WithFontSize sets the point size glyphs are measured at.
func WithFontSize(size int) ConverterOption {
	return func(c *Converter) {
		c.FontSize = size
	}
}

// WithCharset sets the characters to draw with.
func WithCharset(charset string) ConverterOption {
	return func(c *Converter) {
		c.Charset = charset
	}
}

// WithPreset selects named character sets, overriding WithCharset.
func WithPreset(presets string) ConverterOption {
	return func(c *Converter) {
		c.Preset = presets
	}
}

// WithInvert maps dark blocks to dense glyphs instead of sparse ones.
func WithInvert(invert bool) ConverterOption {
	return func(c *Converter) {
		c.Invert = invert
	}
}

// WithTargetWidth sets the output line length, 0 keeps the image size.
func WithTargetWidth(width int) ConverterOption {
	return func(c *Converter) {
		c.TargetWidth = width
	}
}

// WithLogger sets where progress and warnings are logged.
func WithLogger(l logx.LoggerX) ConverterOption {
	return func(c *Converter) {
		if l == nil {
			l = logx.Nop
		}
		c.lx = l
	}
}

// WithOptions applies every conversion parameter of opts.
func WithOptions(opts Options) ConverterOption {
	return func(c *Converter) {
		c.BlockWidth = opts.BlockWidth
		c.BlockHeight = opts.BlockHeight
		c.FontSize = opts.FontSize
		c.Charset = opts.Charset
		c.Preset = opts.Preset
		c.Invert = bool(opts.Invert)
		c.TargetWidth = opts.TargetWidth
	}
}

// Result is the outcome of one conversion.
type Result struct {
	Text   string
	Grid   *CharGrid
	Glyphs GlyphSequence
	// Columns is the number of output lines, Rows the characters per line.
	Columns            int
	Rows               int
	DistinctBrightness int
	// Warnings lists non-fatal problems with the input.
	Warnings []*DegenerateInputError
}

// charset validates the conversion parameters and resolves the runes to
// rank. Nothing is loaded before this succeeds.
func (c *Converter) charset() ([]rune, error) {
	if err := validateBlockSize(c.BlockWidth, c.BlockHeight); err != nil {
		return nil, err
	}
	if c.FontSize <= 0 {
		return nil, &ConfigError{Field: "font size", Reason: "must be positive"}
	}
	if c.TargetWidth < 0 {
		return nil, &ConfigError{Field: "target width", Reason: "must not be negative"}
	}
	opts := Options{Charset: c.Charset, Preset: c.Preset}
	return opts.ResolveCharset()
}

// Convert loads the font at fontPath and the image at imagePath and
// converts the image. Configuration problems are reported as
// *ConfigError before either file is opened; unreadable files as
// *ResourceError.
func (c *Converter) Convert(fontPath, imagePath string) (*Result, error) {
	log := logx.NewLogToX(c.lx, "load")

	runes, err := c.charset()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	face, err := LoadFace(fontPath, float64(c.FontSize))
	if err != nil {
		return nil, err
	}
	defer face.Close()
	log.LogPrintf(logx.DEBUG, "font %s loaded at %dpt in %v",
		fontPath, c.FontSize, time.Since(start))

	start = time.Now()
	dec, err := imageutil.LoadImage(imagePath)
	if err != nil {
		return nil, &ResourceError{Kind: ResourceImage, Path: imagePath, Err: err}
	}
	log.LogPrintf(logx.DEBUG, "image %s decoded as %s %dx%d (orientation %d) in %v",
		imagePath, dec.Format, dec.Image.Bounds().Dx(), dec.Image.Bounds().Dy(),
		dec.Orientation, time.Since(start))

	res, err := c.convert(runes, face, dec.Image)
	if errors.Is(err, ErrEmptyImage) {
		return nil, &ResourceError{Kind: ResourceImage, Path: imagePath, Err: err}
	}
	return res, err
}

// ConvertImage converts an already decoded image using face to measure
// glyphs. The caller keeps ownership of face.
func (c *Converter) ConvertImage(face font.Face, img image.Image) (*Result, error) {
	runes, err := c.charset()
	if err != nil {
		return nil, err
	}
	return c.convert(runes, face, img)
}

func (c *Converter) convert(runes []rune, face font.Face, img image.Image) (*Result, error) {
	log := logx.NewLogToX(c.lx, "convert")

	if img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}

	start := time.Now()
	glyphs := RankGlyphs(face, runes, c.Invert)
	log.LogPrintf(logx.DEBUG, "ranked %d glyphs in %v: %s",
		len(glyphs), time.Since(start), glyphs)

	if c.TargetWidth > 0 {
		b := img.Bounds()
		img = imageutil.ResizeToWidth(img, c.TargetWidth*c.BlockHeight,
			imageutil.InterpolationArea)
		log.LogPrintf(logx.DEBUG, "resized %dx%d to %dx%d",
			b.Dx(), b.Dy(), img.Bounds().Dx(), img.Bounds().Dy())
	}

	start = time.Now()
	grid, err := ProfileBlocks(img, c.BlockWidth, c.BlockHeight)
	if err != nil {
		return nil, err
	}
	distinct := DistinctBrightness(grid)
	cols, rows := GridSize(grid)
	log.LogPrintf(logx.DEBUG, "profiled %dx%d blocks, %d distinct brightness values in %v",
		cols, rows, len(distinct), time.Since(start))

	res := &Result{
		Glyphs:             glyphs,
		Columns:            cols,
		Rows:               rows,
		DistinctBrightness: len(distinct),
		Warnings:           degenerateInput(distinct, glyphs),
	}
	for _, w := range res.Warnings {
		log.LogPrint(logx.WARN, w)
	}

	start = time.Now()
	res.Grid, err = AssignCharacters(grid, glyphs)
	if err != nil {
		return nil, err
	}
	res.Text = RenderText(res.Grid)
	log.LogPrintf(logx.DEBUG, "assigned and rendered %d characters in %v",
		res.Grid.Len(), time.Since(start))

	return res, nil
}

func degenerateInput(distinct []int, glyphs GlyphSequence) []*DegenerateInputError {
	var warnings []*DegenerateInputError
	if len(distinct) == 1 {
		warnings = append(warnings, &DegenerateInputError{
			Reason: fmt.Sprintf("every block has brightness %d", distinct[0]),
		})
	}
	if len(glyphs) > 0 {
		single := true
		for _, g := range glyphs[1:] {
			if g != glyphs[0] {
				single = false
				break
			}
		}
		if single {
			warnings = append(warnings, &DegenerateInputError{
				Reason: fmt.Sprintf("character set has the single glyph %q", glyphs[0]),
			})
		}
	}
	return warnings
}

// WriteOutput writes text to the file at path, or to stdout when path
// is empty.
func WriteOutput(path, text string, stdout io.Writer) error {
	if path == "" {
		if _, err := io.WriteString(stdout, text); err != nil {
			return &ResourceError{Kind: ResourceOutput, Path: "<stdout>", Err: err}
		}
		return nil
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return &ResourceError{Kind: ResourceOutput, Path: path, Err: err}
	}
	return nil
}

// ConvertFile runs a whole conversion as described by opts and writes
// the result to opts.OutputFile, or stdout.
func ConvertFile(opts Options, l logx.LoggerX, stdout io.Writer) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	res, err := NewConverter(WithOptions(opts), WithLogger(l)).
		Convert(opts.FontFile, opts.ImageFile)
	if err != nil {
		return nil, err
	}
	if err := WriteOutput(opts.OutputFile, res.Text, stdout); err != nil {
		return nil, err
	}
	return res, nil
}
