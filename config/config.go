// Package config holds the release configuration for a publish run: where
// to find the built bundles and their deobfuscation mapping files, which
// release track to target, and how far to roll the release out.
//
// A Release is built once per publish invocation: loaded from YAML,
// expanded exactly once against the environment, validated, and then
// consumed read-only by the publish pipeline.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Release is the configuration for one publish invocation. String fields
// may contain ${VAR} placeholders until Expand has been applied; the
// publish pipeline only ever sees expanded values.
type Release struct {
	// ArtifactPattern is a glob matched against the workspace to find the
	// .aab files to upload. Required.
	ArtifactPattern string `yaml:"aab_pattern"`

	// ApplicationID is the package name the bundles belong to
	// (e.g. "com.example.app").
	ApplicationID string `yaml:"application_id"`

	// MappingPattern is a glob for ProGuard/R8 mapping files. Optional:
	// when empty, no mapping files are uploaded. When set, it must match
	// at least one file or the publish fails.
	MappingPattern string `yaml:"mapping_pattern"`

	// Track is the release track name, matched case-insensitively against
	// the known tracks.
	Track string `yaml:"track"`

	// Rollout is the staged-rollout percentage as entered by the operator,
	// e.g. "50", "50%", or empty for a full rollout.
	Rollout string `yaml:"rollout"`

	// Changelog holds per-locale release notes, in the order they should
	// be sent to the publishing service.
	Changelog []ChangeNote `yaml:"changelog"`
}

// ChangeNote is the release notes for a single locale.
type ChangeNote struct {
	Language string `yaml:"language"`
	Text     string `yaml:"text"`
}

// Load reads a Release from a YAML file. Unknown fields are rejected so
// that a typo in a field name fails loudly instead of silently disabling
// the option.
func Load(path string) (Release, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Release{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse unmarshals a Release from YAML bytes. An empty document is a
// valid, empty Release; validation is what decides which fields are
// required.
func Parse(data []byte) (Release, error) {
	var rel Release
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&rel); err != nil && !errors.Is(err, io.EOF) {
		return Release{}, fmt.Errorf("parse config: %w", err)
	}
	return rel.trimmed(), nil
}

// trimmed returns a copy with surrounding whitespace removed from every
// string field, so that "  " behaves the same as unset.
func (r Release) trimmed() Release {
	r.ArtifactPattern = strings.TrimSpace(r.ArtifactPattern)
	r.ApplicationID = strings.TrimSpace(r.ApplicationID)
	r.MappingPattern = strings.TrimSpace(r.MappingPattern)
	r.Track = strings.TrimSpace(r.Track)
	r.Rollout = strings.TrimSpace(r.Rollout)
	for i, note := range r.Changelog {
		r.Changelog[i].Language = strings.TrimSpace(note.Language)
		r.Changelog[i].Text = strings.TrimSpace(note.Text)
	}
	return r
}

// Expander resolves placeholders in a configuration string. The pipeline
// treats its output as opaque.
type Expander func(string) string

// EnvExpander expands ${VAR} and $VAR references from the process
// environment. Unset variables expand to the empty string.
func EnvExpander(s string) string {
	return os.Expand(s, os.Getenv)
}

// Expand returns a copy of the release with the expander applied to every
// string field, including changelog entries. This is the single expansion
// pass: the result is what validation and publishing consume.
func (r Release) Expand(expand Expander) Release {
	if expand == nil {
		return r
	}
	out := r
	out.ArtifactPattern = expand(r.ArtifactPattern)
	out.ApplicationID = expand(r.ApplicationID)
	out.MappingPattern = expand(r.MappingPattern)
	out.Track = expand(r.Track)
	out.Rollout = expand(r.Rollout)
	out.Changelog = make([]ChangeNote, len(r.Changelog))
	for i, note := range r.Changelog {
		out.Changelog[i] = ChangeNote{
			Language: expand(note.Language),
			Text:     expand(note.Text),
		}
	}
	return out.trimmed()
}
