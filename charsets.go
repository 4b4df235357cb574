package img2ascii

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Character sets the converter knows by name.
const (
	Upper  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lower  = "abcdefghijklmnopqrstuvwxyz"
	Digit  = "0123456789"
	Symbol = "~!@#$%^&*()_+`-=[]{}|\\:;\"'<>?,./"

	DefaultCharset = Symbol
)

// Presets maps preset names to character sets.
var Presets = map[string]string{
	"upper":  Upper,
	"lower":  Lower,
	"digit":  Digit,
	"symbol": Symbol,
	"alnum":  Upper + Lower + Digit,
	"all":    Upper + Lower + Digit + Symbol,
}

// PresetNames returns the preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for n := range Presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ExpandPresets concatenates the character sets named in a comma
// separated list, e.g. "upper,digit".
func ExpandPresets(list string) (string, error) {
	var sb strings.Builder
	for _, name := range strings.Split(list, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		set, ok := Presets[name]
		if !ok {
			return "", &ConfigError{
				Field: "preset",
				Reason: fmt.Sprintf("unknown preset %q (known: %s)",
					name, strings.Join(PresetNames(), ", ")),
			}
		}
		sb.WriteString(set)
	}
	return sb.String(), nil
}

// NormalizeCharset turns a character set string into the runes to rank.
// The string is NFC normalized so composed characters count once, and
// runes that cannot be printed (newlines, tabs, other controls) are
// dropped. Duplicates are kept.
func NormalizeCharset(s string) ([]rune, error) {
	runes := make([]rune, 0, len(s))
	for _, r := range norm.NFC.String(s) {
		if unicode.IsPrint(r) {
			runes = append(runes, r)
		}
	}
	if len(runes) == 0 {
		return nil, &ConfigError{
			Field:  "charset",
			Reason: "no printable characters",
			Err:    ErrEmptyCharset,
		}
	}
	return runes, nil
}
