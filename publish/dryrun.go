package publish

import (
	"context"

	"github.com/andrewjapar/playpublish/config"
)

// DryRun is an Uploader that logs what would be uploaded without touching
// the network. Used by the CLI's -dry-run flag to let operators verify
// pattern resolution and pairing before a real publish.
type DryRun struct {
	Log *Logger
}

// Upload logs the planned publish and succeeds.
func (d DryRun) Upload(_ context.Context, req UploadRequest) error {
	d.Log.Linef("Dry run: would upload %d bundle(s) for %s to track '%s' at %s%% rollout",
		len(req.Artifacts), req.ApplicationID, req.Track, config.FormatPercentage(req.Percentage))
	for _, a := range req.Artifacts {
		if m, ok := req.Mappings[a]; ok {
			d.Log.Linef("- %s (mapping: %s)", a, m)
		} else {
			d.Log.Linef("- %s", a)
		}
	}
	return nil
}
