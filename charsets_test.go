package img2ascii

import (
	"errors"
	"testing"
)

func TestNormalizeCharset(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "abc", "abc"},
		{"controls dropped", "a\tb\nc\r", "abc"},
		{"composed", "e\u0301", "\u00e9"},
		{"duplicates kept", "..#", "..#"},
		{"space kept", " .", " ."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeCharset(tt.input)
			if err != nil {
				t.Fatalf("NormalizeCharset(%q): %v", tt.input, err)
			}
			if string(got) != tt.want {
				t.Errorf("NormalizeCharset(%q) = %q, want %q", tt.input, string(got), tt.want)
			}
		})
	}
}

func TestNormalizeCharsetEmpty(t *testing.T) {
	for _, input := range []string{"", "\n\t", "\x00"} {
		_, err := NormalizeCharset(input)
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) || !errors.Is(err, ErrEmptyCharset) {
			t.Errorf("NormalizeCharset(%q): expected ConfigError wrapping ErrEmptyCharset, got %v",
				input, err)
		}
	}
}

func TestExpandPresets(t *testing.T) {
	got, err := ExpandPresets("upper, Digit,")
	if err != nil {
		t.Fatal(err)
	}
	if got != Upper+Digit {
		t.Errorf("ExpandPresets = %q, want %q", got, Upper+Digit)
	}

	_, err = ExpandPresets("upper,emoji")
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Field != "preset" {
		t.Errorf("Expected preset ConfigError, got %v", err)
	}
}

func TestPresetNames(t *testing.T) {
	names := PresetNames()
	if len(names) != len(Presets) {
		t.Fatalf("Expected %d names, got %d", len(Presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Names not sorted: %v", names)
		}
	}
}
