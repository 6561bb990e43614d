package googleplay

import (
	"google.golang.org/api/androidpublisher/v3"

	"github.com/andrewjapar/playpublish/config"
)

// trackRelease builds the release object for a track update. A 100%
// rollout is a "completed" release; anything lower is "inProgress" with
// the user fraction set. UserFraction must only be sent for staged
// releases; the API rejects a completed release that carries one.
func trackRelease(percentage float64, versionCodes []int64, changelog []config.ChangeNote) *androidpublisher.TrackRelease {
	release := &androidpublisher.TrackRelease{
		VersionCodes: versionCodes,
	}
	if percentage >= 100 {
		release.Status = "completed"
	} else {
		release.Status = "inProgress"
		release.UserFraction = percentage / 100
	}
	for _, note := range changelog {
		release.ReleaseNotes = append(release.ReleaseNotes, &androidpublisher.LocalizedText{
			Language: note.Language,
			Text:     note.Text,
		})
	}
	return release
}
