package img2ascii

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Default conversion parameters.
const (
	DefaultBlockWidth  = 4
	DefaultBlockHeight = 2
	DefaultFontSize    = 99
)

// Options is the complete configuration of one conversion, as read from
// a TOML file or the command line.
type Options struct {
	FontFile    string `toml:"font"`
	ImageFile   string `toml:"image"`
	OutputFile  string `toml:"output"`
	BlockWidth  int    `toml:"block_width"`
	BlockHeight int    `toml:"block_height"`
	FontSize    int    `toml:"font_size"`
	Charset     string `toml:"charset"`
	Preset      string `toml:"preset"`
	Invert      Truthy `toml:"invert"`
	TargetWidth int    `toml:"target_width"`
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		BlockWidth:  DefaultBlockWidth,
		BlockHeight: DefaultBlockHeight,
		FontSize:    DefaultFontSize,
		Charset:     DefaultCharset,
	}
}

// LoadOptions reads a TOML configuration file on top of DefaultOptions.
// Keys the file sets that Options does not know are rejected.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, &ResourceError{Kind: ResourceConfig, Path: path, Err: err}
	}

	md, err := toml.Decode(string(data), &opts)
	if err != nil {
		return opts, &ConfigError{Field: "config file", Reason: path, Err: err}
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return opts, &ConfigError{
			Field:  "config file",
			Reason: fmt.Sprintf("%s: unknown keys %s", path, strings.Join(keys, ", ")),
		}
	}
	return opts, nil
}

// ResolveCharset returns the runes to rank: the named presets when
// Preset is set, otherwise Charset.
func (o *Options) ResolveCharset() ([]rune, error) {
	set := o.Charset
	if o.Preset != "" {
		var err error
		if set, err = ExpandPresets(o.Preset); err != nil {
			return nil, err
		}
	}
	return NormalizeCharset(set)
}

// Validate checks every option without touching the filesystem.
func (o *Options) Validate() error {
	if o.FontFile == "" {
		return &ConfigError{Field: "font file", Reason: "required"}
	}
	if o.ImageFile == "" {
		return &ConfigError{Field: "image file", Reason: "required"}
	}
	if err := validateBlockSize(o.BlockWidth, o.BlockHeight); err != nil {
		return err
	}
	if o.FontSize <= 0 {
		return &ConfigError{Field: "font size", Reason: "must be positive"}
	}
	if o.TargetWidth < 0 {
		return &ConfigError{Field: "target width", Reason: "must not be negative"}
	}
	_, err := o.ResolveCharset()
	return err
}

// Truthy is a boolean that also accepts numbers and words. It works as a
// flag.Value and as a TOML value of any scalar type.
type Truthy bool

// ParseBool parses s leniently. Integers are true when non-zero. Words
// are matched case-insensitively: yes/y/on are true, no/n are false, and
// otherwise anything containing an 'f' is false and anything containing
// a 't' is true, so "False", "off", "TRUE" and "t" all work. The empty
// string is false.
func ParseBool(s string) (bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return false, nil
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i != 0, nil
	}

	l := strings.ToLower(s)
	switch l {
	case "yes", "y", "on":
		return true, nil
	case "no", "n":
		return false, nil
	}
	if strings.Contains(l, "f") {
		return false, nil
	}
	if strings.Contains(l, "t") {
		return true, nil
	}
	return false, fmt.Errorf("cannot interpret %q as true or false", s)
}

func (t *Truthy) Set(s string) error {
	b, err := ParseBool(s)
	if err != nil {
		return err
	}
	*t = Truthy(b)
	return nil
}

func (t *Truthy) String() string {
	if t == nil {
		return "false"
	}
	return strconv.FormatBool(bool(*t))
}

// UnmarshalTOML implements toml.Unmarshaler.
func (t *Truthy) UnmarshalTOML(v interface{}) error {
	switch v := v.(type) {
	case bool:
		*t = Truthy(v)
	case int64:
		*t = v != 0
	case float64:
		*t = v != 0
	case string:
		return t.Set(v)
	default:
		return fmt.Errorf("cannot interpret %T as true or false", v)
	}
	return nil
}
