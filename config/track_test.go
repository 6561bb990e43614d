package config_test

import (
	"testing"

	"github.com/andrewjapar/playpublish/config"
)

func TestParseTrack(t *testing.T) {
	tests := []struct {
		in   string
		want config.Track
		ok   bool
	}{
		{"production", config.TrackProduction, true},
		{"Production", config.TrackProduction, true},
		{"PRODUCTION", config.TrackProduction, true},
		{"beta", config.TrackBeta, true},
		{"alpha", config.TrackAlpha, true},
		{"Internal", config.TrackInternal, true},
		{"nightly-test", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := config.ParseTrack(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseTrack(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
