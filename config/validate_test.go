package config_test

import (
	"strings"
	"testing"

	"github.com/andrewjapar/playpublish/config"
)

// validRelease returns a minimal valid release for tests to modify.
func validRelease() config.Release {
	return config.Release{
		ArtifactPattern: "**/build/outputs/bundle/release/*.aab",
		ApplicationID:   "com.example.app",
		Track:           "production",
	}
}

func TestValidate_Valid(t *testing.T) {
	rel := validRelease()
	if errs := rel.Validate(); len(errs) > 0 {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestValidate_MissingArtifactPattern(t *testing.T) {
	rel := validRelease()
	rel.ArtifactPattern = ""

	errs := rel.Validate()
	assertContainsError(t, errs, "Path or pattern to AAB file was not specified")
}

func TestValidate_MissingTrack(t *testing.T) {
	rel := validRelease()
	rel.Track = ""

	errs := rel.Validate()
	assertContainsError(t, errs, "Release track was not specified")
}

func TestValidate_UnknownTrack(t *testing.T) {
	rel := validRelease()
	rel.Track = "nightly-test"

	errs := rel.Validate()
	assertContainsError(t, errs, "'nightly-test' is not a valid release track")
}

// A bad track must produce exactly one error: the rollout check is
// meaningless without a valid target track, so it must not run.
func TestValidate_BadTrackSkipsRolloutCheck(t *testing.T) {
	rel := validRelease()
	rel.Track = "nightly-test"
	rel.Rollout = "9001" // would fail the rollout check if it ran

	errs := rel.Validate()
	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 error, got %d: %v", len(errs), errs)
	}
	assertContainsError(t, errs, "not a valid release track")
}

func TestValidate_TrackCaseInsensitive(t *testing.T) {
	for _, name := range []string{"production", "Production", "PRODUCTION", "Beta", "ALPHA", "internal"} {
		rel := validRelease()
		rel.Track = name
		if errs := rel.Validate(); len(errs) > 0 {
			t.Errorf("track %q: expected no errors, got: %v", name, errs)
		}
	}
}

func TestValidate_Rollout(t *testing.T) {
	tests := []struct {
		rollout string
		wantErr string // empty means valid
	}{
		{"", ""},
		{"100", ""},
		{"100%", ""},
		{"50%", ""},
		{"0", ""},
		{"not-a-number", ""}, // unparseable defaults to 100
		{"NaN", ""},          // non-finite counts as unparseable, never slips past the range check
		{"Inf", ""},
		{"-1", "-1% is not a valid rollout percentage"},
		{"101", "101% is not a valid rollout percentage"},
	}

	for _, tt := range tests {
		rel := validRelease()
		rel.Rollout = tt.rollout

		errs := rel.Validate()
		if tt.wantErr == "" {
			if len(errs) > 0 {
				t.Errorf("rollout %q: expected no errors, got: %v", tt.rollout, errs)
			}
			continue
		}
		assertContainsError(t, errs, tt.wantErr)
	}
}

func TestValidate_ErrorsAccumulate(t *testing.T) {
	rel := config.Release{} // nothing set

	errs := rel.Validate()
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), errs)
	}
	assertContainsError(t, errs, "Path or pattern to AAB file was not specified")
	assertContainsError(t, errs, "Release track was not specified")
}

func TestValidate_ChangelogTooLong(t *testing.T) {
	rel := validRelease()
	rel.Changelog = []config.ChangeNote{
		{Language: "en-GB", Text: strings.Repeat("x", 501)},
	}

	errs := rel.Validate()
	assertContainsError(t, errs, "500 characters or fewer")
}

// The 500-character limit counts characters, not bytes: a 400-character
// Japanese note is 1200 bytes but well within the limit.
func TestValidate_ChangelogLimitCountsCharacters(t *testing.T) {
	rel := validRelease()
	rel.Changelog = []config.ChangeNote{
		{Language: "ja", Text: strings.Repeat("あ", 400)},
	}
	if errs := rel.Validate(); len(errs) > 0 {
		t.Errorf("400-character multibyte note: expected no errors, got: %v", errs)
	}

	rel.Changelog[0].Text = strings.Repeat("あ", 501)
	errs := rel.Validate()
	assertContainsError(t, errs, "500 characters or fewer")
	assertContainsError(t, errs, "got 501")
}

func TestValidate_ChangelogLanguage(t *testing.T) {
	tests := []struct {
		language string
		ok       bool
	}{
		{"en", true},
		{"en-GB", true},
		{"fil", true},
		{"pt-BR", true},
		{"${RELEASE_LANG}", true}, // unexpanded placeholder is accepted
		{"English", false},
		{"e", false},
	}

	for _, tt := range tests {
		rel := validRelease()
		rel.Changelog = []config.ChangeNote{{Language: tt.language, Text: "Bug fixes"}}

		errs := rel.Validate()
		if tt.ok && len(errs) > 0 {
			t.Errorf("language %q: expected no errors, got: %v", tt.language, errs)
		}
		if !tt.ok {
			assertContainsError(t, errs, "should be a language code")
		}
	}
}

func assertContainsError(t *testing.T, errs []string, substr string) {
	t.Helper()
	for _, err := range errs {
		if strings.Contains(err, substr) {
			return
		}
	}
	t.Errorf("expected an error containing %q, got: %v", substr, errs)
}
