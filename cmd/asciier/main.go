package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/logx"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitConfig = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func newLogger(stderr io.Writer, lvl logx.Level, color string) (logx.LoggerX, error) {
	var mode logx.ColorMode
	switch strings.ToLower(color) {
	case "auto", "":
		mode = logx.ColorAuto
	case "on", "always":
		mode = logx.ColorOn
	case "off", "never":
		mode = logx.ColorOff
	default:
		return nil, fmt.Errorf("invalid color mode %q, options are auto, on, off", color)
	}
	if f, ok := stderr.(*os.File); ok {
		return logx.NewTermLogger(f, lvl, mode), nil
	}
	return logx.NewWriterLogger(stderr, lvl), nil
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("asciier", flag.ContinueOnError)
	fs.SetOutput(stderr)

	defaults := img2ascii.DefaultOptions()
	fontFile := fs.String("f", "",
		"Path to the font file (.ttf/.otf), or 'goregular' / 'gomono' "+
			"for the embedded Go fonts (required)")
	imageFile := fs.String("i", "",
		"Path to the input image file, '-' for stdin (required)")
	blockWidth := fs.Int("x", defaults.BlockWidth,
		"Block width in pixels")
	blockHeight := fs.Int("y", defaults.BlockHeight,
		"Block height in pixels")
	fontSize := fs.Int("s", defaults.FontSize,
		"Font size glyphs are measured at")
	charset := fs.String("c", defaults.Charset,
		"Character set to draw with")
	preset := fs.String("preset", "",
		"Comma separated character set presets, overrides -c ("+
			strings.Join(img2ascii.PresetNames(), ", ")+")")
	var invert img2ascii.Truthy
	fs.Var(&invert, "r",
		"Invert luminosity mapping (1/0, true/false, yes/no)")
	outputFile := fs.String("o", "",
		"Path to save the output (if not specified, prints to stdout)")
	targetWidth := fs.Int("width", 0,
		"Resize so every output line has this many characters, 0 to disable")
	configFile := fs.String("config", "",
		"TOML file with default options, flags override it")
	logLevel := fs.String("loglevel", "notice",
		"Log level: debug, info, notice, warning, error, critical")
	verbose := fs.Bool("v", false, "Log progress and timings, same as -loglevel debug")
	quiet := fs.Bool("q", false, "Only log errors, same as -loglevel error")
	color := fs.String("color", "auto", "Colored log output: auto, on, off")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitConfig
	}

	lvl, err := logx.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}
	if *verbose {
		lvl = logx.DEBUG
	}
	if *quiet {
		lvl = logx.ERROR
	}
	lx, err := newLogger(stderr, lvl, *color)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}
	log := logx.NewLogToX(lx, "main")

	opts := defaults
	if *configFile != "" {
		if opts, err = img2ascii.LoadOptions(*configFile); err != nil {
			log.LogPrint(logx.ERROR, err)
			return exitCode(err)
		}
		log.LogPrintf(logx.DEBUG, "options loaded from %s", *configFile)
	}

	// Flags given on the command line win over the config file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "f":
			opts.FontFile = *fontFile
		case "i":
			opts.ImageFile = *imageFile
		case "x":
			opts.BlockWidth = *blockWidth
		case "y":
			opts.BlockHeight = *blockHeight
		case "s":
			opts.FontSize = *fontSize
		case "c":
			opts.Charset = *charset
		case "preset":
			opts.Preset = *preset
		case "r":
			opts.Invert = invert
		case "o":
			opts.OutputFile = *outputFile
		case "width":
			opts.TargetWidth = *targetWidth
		}
	})

	if err := opts.Validate(); err != nil {
		log.LogPrint(logx.ERROR, err)
		fs.Usage()
		return exitConfig
	}

	start := time.Now()
	res, err := img2ascii.ConvertFile(opts, lx, stdout)
	if err != nil {
		log.LogPrint(logx.ERROR, err)
		return exitCode(err)
	}

	if opts.OutputFile != "" {
		log.LogPrintf(logx.NOTICE, "Output written to %s", opts.OutputFile)
	}
	log.LogPrintf(logx.INFO, "%d lines of %d characters, %d brightness levels, glyphs %q",
		res.Columns, res.Rows, res.DistinctBrightness, res.Glyphs.String())
	log.LogPrintf(logx.DEBUG, "Computation time: %v", time.Since(start))
	return exitOK
}

func exitCode(err error) int {
	var cfgErr *img2ascii.ConfigError
	if errors.As(err, &cfgErr) {
		return exitConfig
	}
	return exitFailed
}
