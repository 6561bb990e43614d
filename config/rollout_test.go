package config_test

import (
	"testing"

	"github.com/andrewjapar/playpublish/config"
)

func TestParseRollout(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"100", 100},
		{"100%", 100},
		{"", 100},        // unset rolls out fully
		{"garbage", 100}, // unparseable rolls out fully
		{"50%", 50},
		{"50", 50},
		{"0", 0},
		{"12.5%", 12.5},
		{"-1", -1},   // out of range, rejected by Validate, not clamped
		{"101", 101}, // likewise
		{" 75% ", 75},
		// strconv parses these, but a percentage is never non-finite;
		// they behave like any other unparseable input.
		{"NaN", 100},
		{"nan", 100},
		{"Inf", 100},
		{"+Inf", 100},
		{"-Inf", 100},
	}

	for _, tt := range tests {
		if got := config.ParseRollout(tt.in); got != tt.want {
			t.Errorf("ParseRollout(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// Parsing an already-clean numeric string is idempotent: formatting the
// parsed value reproduces the input.
func TestParseRolloutIdempotent(t *testing.T) {
	for _, s := range []string{"100", "50", "12.5", "0"} {
		v := config.ParseRollout(s)
		if got := config.FormatPercentage(v); got != s {
			t.Errorf("FormatPercentage(ParseRollout(%q)) = %q", s, got)
		}
	}
}

func TestFormatPercentage(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{100, "100"},
		{50, "50"},
		{12.5, "12.5"},
		{-1, "-1"},
	}
	for _, tt := range tests {
		if got := config.FormatPercentage(tt.in); got != tt.want {
			t.Errorf("FormatPercentage(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
