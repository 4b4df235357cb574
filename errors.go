package img2ascii

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGlyphs is returned when characters are requested from an
	// empty glyph sequence.
	ErrEmptyGlyphs = errors.New("no glyphs available")

	// ErrEmptyCharset is returned when the character set contains no
	// characters after normalization.
	ErrEmptyCharset = errors.New("character set is empty")
)

// ConfigError reports an invalid option. It is raised before any image
// or font is touched.
type ConfigError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ResourceKind names the kind of external resource a ResourceError is
// about.
type ResourceKind string

const (
	ResourceFont   ResourceKind = "font"
	ResourceImage  ResourceKind = "image"
	ResourceOutput ResourceKind = "output"
	ResourceConfig ResourceKind = "config"
)

// ResourceError reports a font, image or output file that could not be
// read, decoded or written.
type ResourceError struct {
	Kind ResourceKind
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Kind, e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// DegenerateInputError describes input that still converts, but into a
// visually flat result. It is never returned as a failure; the converter
// collects it in Result.Warnings.
type DegenerateInputError struct {
	Reason string
}

func (e *DegenerateInputError) Error() string {
	return "degenerate input: " + e.Reason
}
