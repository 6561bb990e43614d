package config

import "strings"

// Track is a release track on the publishing service.
type Track string

const (
	TrackProduction Track = "production"
	TrackBeta       Track = "beta"
	TrackAlpha      Track = "alpha"
	TrackInternal   Track = "internal"
)

// ParseTrack resolves a configured track name, case-insensitively, to a
// known track. The second return value is false for names that are not a
// recognized track; they are never passed through as-is, because an
// unknown track would create a new channel on the remote service rather
// than fail.
func ParseTrack(name string) (Track, bool) {
	switch Track(strings.ToLower(name)) {
	case TrackProduction:
		return TrackProduction, true
	case TrackBeta:
		return TrackBeta, true
	case TrackAlpha:
		return TrackAlpha, true
	case TrackInternal:
		return TrackInternal, true
	}
	return "", false
}
