package config

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// maxChangeNoteLen is the longest release-notes text the publishing
// service accepts for one locale.
const maxChangeNoteLen = 500

var (
	// languagePattern matches BCP 47-ish locale codes the publishing
	// service understands, e.g. "en", "en-GB", "fil", "pt-BR".
	languagePattern = regexp.MustCompile(`^[a-z]{2,3}([-_][A-Za-z]{2,4})?$`)

	// placeholderPattern matches an unexpanded ${VAR} reference. Such a
	// language code is accepted at validation time; it means the expansion
	// collaborator left it alone and the remote service will reject it
	// with its own error.
	placeholderPattern = regexp.MustCompile(`^\$\{[A-Za-z0-9_]+\}$`)
)

// Validate checks an expanded Release and returns every problem found,
// in a stable order, so the operator can fix the whole configuration in
// one pass. An empty slice means the release is valid. Validate is pure:
// logging and aborting are the caller's job.
func (r Release) Validate() []string {
	var errs []string

	if r.ArtifactPattern == "" {
		errs = append(errs, "Path or pattern to AAB file was not specified")
	}

	trackName := strings.ToLower(r.Track)
	_, known := ParseTrack(trackName)
	switch {
	case trackName == "":
		errs = append(errs, "Release track was not specified")
	case !known:
		errs = append(errs, fmt.Sprintf("'%s' is not a valid release track", trackName))
	default:
		// A rollout percentage is meaningless without a target track, so
		// this check only runs once the track itself is valid.
		pct := ParseRollout(r.Rollout)
		if pct < 0 || pct > 100 {
			errs = append(errs, fmt.Sprintf("%s%% is not a valid rollout percentage", FormatPercentage(pct)))
		}
	}

	for i, note := range r.Changelog {
		// The service limit is characters, not bytes: a multibyte note
		// must not be rejected for its encoded length.
		if n := utf8.RuneCountInString(note.Text); n > maxChangeNoteLen {
			errs = append(errs, fmt.Sprintf(
				"Changelog entry %d (%s): text must be %d characters or fewer, got %d",
				i+1, note.Language, maxChangeNoteLen, n))
		}
		if note.Language != "" && !languagePattern.MatchString(note.Language) &&
			!placeholderPattern.MatchString(note.Language) {
			errs = append(errs, fmt.Sprintf(
				"Changelog entry %d: '%s' should be a language code like 'be' or 'en-GB'",
				i+1, note.Language))
		}
	}

	return errs
}
