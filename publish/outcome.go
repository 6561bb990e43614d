package publish

// Status identifies the terminal state a publish run reached. Every run
// ends in exactly one of these, so callers and tests can discriminate
// causes without string-matching log output.
type Status string

const (
	// StatusSkipped: the prior build result was worse than unstable, so
	// nothing was attempted. Deliberately counts as overall success:
	// publishing must never mask or worsen an already-failing build.
	StatusSkipped Status = "skipped"

	// StatusConfigInvalid: validation rejected the release configuration
	// before anything was resolved.
	StatusConfigInvalid Status = "config.invalid"

	// StatusNoArtifacts: the artifact pattern matched no files.
	StatusNoArtifacts Status = "artifacts.none"

	// StatusNoMappingFiles: a mapping pattern was configured but matched
	// no files. Distinct from the pattern being unset, which skips the
	// mapping step entirely.
	StatusNoMappingFiles Status = "mappings.none"

	// StatusPairingMismatch: mapping files could not be unambiguously
	// associated with artifacts.
	StatusPairingMismatch Status = "pairing.mismatch"

	// StatusUploadFailed: the upload collaborator failed. Its contract
	// guarantees the remote account was left unmodified.
	StatusUploadFailed Status = "upload.failed"

	// StatusSuccess: the release was published.
	StatusSuccess Status = "success"
)

// Outcome is the result of one publish run.
type Outcome struct {
	Status Status

	// Err carries the underlying failure for the statuses that have one
	// (pairing mismatch, upload failure, resolver I/O errors). Nil for
	// configuration problems, which are reported as ConfigErrors instead.
	Err error

	// ConfigErrors holds the validation errors when Status is
	// StatusConfigInvalid.
	ConfigErrors []string
}

// OK reports whether the run should be treated as an overall success by
// the build host. Skipped runs are OK: lenient on an already-failing
// build, strict on everything else.
func (o Outcome) OK() bool {
	return o.Status == StatusSuccess || o.Status == StatusSkipped
}
