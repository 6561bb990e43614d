// Package googleplay uploads app bundles through the Google Play
// Developer Edits API. All changes for one publish run happen inside a
// single edit session, which is only committed once every upload and the
// track update have succeeded; any failure abandons the edit, so a failed
// run never modifies the Google Play account.
package googleplay

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"google.golang.org/api/androidpublisher/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/andrewjapar/playpublish/config"
	"github.com/andrewjapar/playpublish/publish"
)

// deobfuscationFileType is the kind of mapping file produced by
// ProGuard/R8 shrinking.
const deobfuscationFileType = "proguard"

// Client publishes releases to Google Play.
type Client struct {
	svc *androidpublisher.Service
	log *publish.Logger
}

// NewClient builds a Client authenticated with a service-account JSON key
// file. The credentials are passed through to the API client untouched.
func NewClient(ctx context.Context, credentialsFile string, log *publish.Logger) (*Client, error) {
	svc, err := androidpublisher.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(androidpublisher.AndroidpublisherScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create publisher client: %w", err)
	}
	return &Client{svc: svc, log: log}, nil
}

// Upload implements publish.Uploader. It opens an edit, uploads every
// bundle (and its mapping file, when paired), points the target track at
// the uploaded version codes with the requested rollout, and commits.
// On any error the edit is deleted best-effort before returning, leaving
// the account unmodified.
func (c *Client) Upload(ctx context.Context, req publish.UploadRequest) error {
	edits := c.svc.Edits

	edit, err := edits.Insert(req.ApplicationID, nil).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("create edit for %s: %w", req.ApplicationID, err)
	}

	commit := func() error {
		var versionCodes []int64
		for _, artifact := range req.Artifacts {
			code, err := c.uploadBundle(ctx, req, edit.Id, artifact)
			if err != nil {
				return err
			}
			versionCodes = append(versionCodes, code)

			if mapping, ok := req.Mappings[artifact]; ok {
				if err := c.uploadMapping(ctx, req, edit.Id, code, mapping); err != nil {
					return err
				}
			}
		}

		release := trackRelease(req.Percentage, versionCodes, req.Changelog)
		c.log.Linef("Setting track '%s' to %s%% rollout for version code(s) %v",
			req.Track, config.FormatPercentage(req.Percentage), versionCodes)
		track := &androidpublisher.Track{
			Track:    string(req.Track),
			Releases: []*androidpublisher.TrackRelease{release},
		}
		if _, err := edits.Tracks.Update(req.ApplicationID, edit.Id, string(req.Track), track).Context(ctx).Do(); err != nil {
			return fmt.Errorf("update track %q: %w", req.Track, err)
		}

		if _, err := edits.Commit(req.ApplicationID, edit.Id).Context(ctx).Do(); err != nil {
			return fmt.Errorf("commit edit: %w", err)
		}
		return nil
	}

	if err := commit(); err != nil {
		// Abandon the edit so nothing staged in it can ever land. Delete
		// failures are logged, not returned: the edit expires on its own
		// and the upload error is the one the operator needs.
		if delErr := edits.Delete(req.ApplicationID, edit.Id).Context(ctx).Do(); delErr != nil {
			c.log.Linef("Failed to abandon edit %s: %s", edit.Id, delErr)
		}
		return err
	}

	c.log.Linef("Changes were successfully applied to Google Play")
	return nil
}

func (c *Client) uploadBundle(ctx context.Context, req publish.UploadRequest, editID, artifact string) (int64, error) {
	f, err := os.Open(filepath.Join(req.Workspace, filepath.FromSlash(artifact)))
	if err != nil {
		return 0, fmt.Errorf("open bundle: %w", err)
	}
	defer f.Close()

	c.log.Linef("Uploading bundle %s", artifact)
	bundle, err := c.svc.Edits.Bundles.Upload(req.ApplicationID, editID).
		Media(f, googleapi.ContentType("application/octet-stream")).
		Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("upload bundle %s: %w", artifact, err)
	}
	c.log.Linef("Uploaded bundle %s as version code %d", artifact, bundle.VersionCode)
	return bundle.VersionCode, nil
}

func (c *Client) uploadMapping(ctx context.Context, req publish.UploadRequest, editID string, versionCode int64, mapping string) error {
	f, err := os.Open(filepath.Join(req.Workspace, filepath.FromSlash(mapping)))
	if err != nil {
		return fmt.Errorf("open mapping file: %w", err)
	}
	defer f.Close()

	c.log.Linef("Uploading mapping file %s for version code %d", mapping, versionCode)
	_, err = c.svc.Edits.Deobfuscationfiles.
		Upload(req.ApplicationID, editID, versionCode, deobfuscationFileType).
		Media(f, googleapi.ContentType("application/octet-stream")).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("upload mapping file %s: %w", mapping, err)
	}
	return nil
}
