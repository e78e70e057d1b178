package build

import "strings"

// Overridden at build time via -ldflags.
var (
	Version = "dev"
	GitRef  = ""
)

var LongVersion = strings.TrimSpace(Version + " " + GitRef)
