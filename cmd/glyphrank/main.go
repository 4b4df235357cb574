// Command glyphrank measures the ink of every character of a character
// set in a font and prints them from sparsest to densest, the order the
// converter assigns them to brightness levels.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/logx"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// writeRanking prints one line per glyph: the character, its code point
// and its ink, followed by the ranked sequence on its own line.
func writeRanking(w io.Writer, ranked []img2ascii.RankedGlyph, seq img2ascii.GlyphSequence) error {
	bw := bufio.NewWriter(w)
	for i, g := range ranked {
		fmt.Fprintf(bw, "%3d  %s  U+%04X  %d\n", i, strconv.QuoteRune(g.Rune), g.Rune, g.Ink)
	}
	fmt.Fprintf(bw, "%s\n", seq)
	return bw.Flush()
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("glyphrank", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fontFile := fs.String("f", img2ascii.FontGoRegular,
		"Path to the font file, or 'goregular' / 'gomono'")
	fontSize := fs.Int("s", img2ascii.DefaultFontSize, "Font size glyphs are measured at")
	charset := fs.String("c", img2ascii.DefaultCharset, "Character set to rank")
	preset := fs.String("preset", "", "Comma separated presets, overrides -c")
	var invert img2ascii.Truthy
	fs.Var(&invert, "r", "Print densest first")
	outputFile := fs.String("o", "", "Path to save the ranking (default stdout)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	log := logx.NewLogToX(logx.NewWriterLogger(stderr, logx.NOTICE), "glyphrank")

	opts := img2ascii.Options{Charset: *charset, Preset: *preset}
	runes, err := opts.ResolveCharset()
	if err != nil {
		log.LogPrint(logx.ERROR, err)
		return 2
	}
	if *fontSize <= 0 {
		log.LogPrint(logx.ERROR, &img2ascii.ConfigError{Field: "font size", Reason: "must be positive"})
		return 2
	}

	face, err := img2ascii.LoadFace(*fontFile, float64(*fontSize))
	if err != nil {
		log.LogPrint(logx.ERROR, err)
		return 1
	}
	defer face.Close()

	ranked := img2ascii.RankGlyphsDetailed(face, runes)
	seq := img2ascii.RankGlyphs(face, runes, bool(invert))

	out := stdout
	if *outputFile != "" {
		f, err := os.Create(*outputFile)
		if err != nil {
			log.LogPrint(logx.ERROR, &img2ascii.ResourceError{
				Kind: img2ascii.ResourceOutput, Path: *outputFile, Err: err})
			return 1
		}
		defer f.Close()
		out = f
	}
	if err := writeRanking(out, ranked, seq); err != nil {
		log.LogPrintf(logx.ERROR, "failed to write ranking: %v", err)
		return 1
	}
	if *outputFile != "" {
		log.LogPrintf(logx.NOTICE, "Ranked %d glyphs of %s, saved to %s",
			len(ranked), filepath.Base(*fontFile), *outputFile)
	}
	return 0
}
