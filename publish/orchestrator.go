// Package publish coordinates a publish run: gate on the prior build
// result, validate configuration, discover artifacts, pair mapping files,
// and hand off to the upload collaborator. Every run ends in exactly one
// tagged Outcome.
package publish

import (
	"context"
	"errors"
	"fmt"

	"github.com/matgreaves/run"

	"github.com/andrewjapar/playpublish/config"
	"github.com/andrewjapar/playpublish/workspace"
)

// PatternResolver matches a glob pattern against the workspace file tree,
// returning relative paths in a deterministic order.
type PatternResolver interface {
	Resolve(pattern string) ([]string, error)
}

// Uploader performs the actual network publish. Contract: when Upload
// returns an error, the remote account has not been modified: the edit
// is abandoned, never partially committed.
type Uploader interface {
	Upload(ctx context.Context, req UploadRequest) error
}

// UploadRequest is everything the upload collaborator needs for one
// publish: which app, which files, where they live, and how to release.
type UploadRequest struct {
	ApplicationID string
	Workspace     string

	// Artifacts holds bundle paths relative to Workspace, in resolver
	// order.
	Artifacts []string

	// Mappings associates each artifact with its deobfuscation mapping
	// file. Empty when no mapping pattern was configured.
	Mappings workspace.Pairing

	Track      config.Track
	Percentage float64
	Changelog  []config.ChangeNote
}

// Orchestrator runs the publish pipeline. Each invocation is independent:
// configuration, artifact lists, and pairing results are all scoped to a
// single Publish call.
type Orchestrator struct {
	Workspace string
	Resolver  PatternResolver
	Uploader  Uploader
	Log       *Logger
}

// Publish runs the pipeline against an expanded release configuration.
// Steps run sequentially and the first failure is terminal; every failure
// path logs an explanation before returning. A prior build result worse
// than unstable short-circuits to StatusSkipped, which is not a failure.
func (o *Orchestrator) Publish(ctx context.Context, prior BuildResult, rel config.Release) Outcome {
	if prior.WorseThan(ResultUnstable) {
		o.Log.Linef("Skipping upload to Google Play due to build result")
		return Outcome{Status: StatusSkipped}
	}

	if errs := rel.Validate(); len(errs) > 0 {
		o.Log.Linef("Cannot upload to Google Play:")
		for _, e := range errs {
			o.Log.Linef("- %s", e)
		}
		return Outcome{Status: StatusConfigInvalid, ConfigErrors: errs}
	}

	artifacts, err := o.Resolver.Resolve(rel.ArtifactPattern)
	if err != nil {
		o.Log.Linef("Failed to search the workspace for AAB files: %s", err)
		return Outcome{Status: StatusNoArtifacts, Err: err}
	}
	if len(artifacts) == 0 {
		o.Log.Linef("No AAB files matching the pattern '%s' could be found", rel.ArtifactPattern)
		return Outcome{Status: StatusNoArtifacts}
	}

	// The mapping pattern being unset and the pattern matching nothing
	// are different situations: the first means no mapping step at all,
	// the second almost certainly means symbolication would silently be
	// lost, so it is fatal.
	var mappings []string
	if rel.MappingPattern != "" {
		mappings, err = o.Resolver.Resolve(rel.MappingPattern)
		if err != nil {
			o.Log.Linef("Failed to search the workspace for mapping files: %s", err)
			return Outcome{Status: StatusNoMappingFiles, Err: err}
		}
		if len(mappings) == 0 {
			o.Log.Linef("No deobfuscation mapping files matching the pattern '%s' could be found; no files will be uploaded", rel.MappingPattern)
			return Outcome{Status: StatusNoMappingFiles}
		}
	}

	paired, err := workspace.Pair(artifacts, mappings)
	if err != nil {
		var mismatch *workspace.MismatchError
		if errors.As(err, &mismatch) {
			o.Log.Linef("There are %d AABs to be uploaded, but only %d deobfuscation mapping files were found matching the pattern '%s':",
				len(mismatch.Artifacts), len(mismatch.Mappings), rel.MappingPattern)
			for _, p := range mismatch.Artifacts {
				o.Log.Linef("- %s", p)
			}
			for _, p := range mismatch.Mappings {
				o.Log.Linef("- %s", p)
			}
		}
		return Outcome{Status: StatusPairingMismatch, Err: err}
	}

	// Validation has already vetted both of these.
	track, _ := config.ParseTrack(rel.Track)
	pct := config.ParseRollout(rel.Rollout)

	req := UploadRequest{
		ApplicationID: rel.ApplicationID,
		Workspace:     o.Workspace,
		Artifacts:     artifacts,
		Mappings:      paired,
		Track:         track,
		Percentage:    pct,
		Changelog:     rel.Changelog,
	}
	if err := o.Uploader.Upload(ctx, req); err != nil {
		o.Log.Linef("Upload failed: %s", err)
		o.Log.Linef("- No changes have been applied to the Google Play account")
		return Outcome{Status: StatusUploadFailed, Err: err}
	}

	return Outcome{Status: StatusSuccess}
}

// Runner wraps Publish so the CLI can drive the pipeline like any other
// build task. The outcome is written through out before the runner
// returns; a non-OK outcome becomes the runner's error, which the build
// host surfaces as a hard failure.
func (o *Orchestrator) Runner(prior BuildResult, rel config.Release, out *Outcome) run.Runner {
	return run.Func(func(ctx context.Context) error {
		outcome := o.Publish(ctx, prior, rel)
		if out != nil {
			*out = outcome
		}
		if !outcome.OK() {
			return fmt.Errorf("upload to Google Play failed")
		}
		return nil
	})
}
