// Package version holds build-time metadata injected via -ldflags.
package version

// Version, Commit, and Date are overridden at build time with:
//
//	go build -ldflags "-X github.com/kamil-cwintal/no-flip-tester/pkg/version.Version=... \
//	  -X .../pkg/version.Commit=... -X .../pkg/version.Date=..."
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
