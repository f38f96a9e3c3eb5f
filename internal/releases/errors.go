package releases

import "errors"

var (
	// ErrNoReleases is returned by Latest when the repository has no
	// published release.
	ErrNoReleases = errors.New("no published releases")

	// ErrUpstream wraps any non-2xx answer from the release API.
	ErrUpstream = errors.New("release API error")
)
