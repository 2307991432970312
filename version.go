package tendril

import _ "embed"

// Version is the current tendril release. It lives in version.txt so release
// tooling can bump it without touching Go sources; consumers should trim
// surrounding whitespace.
//
//go:embed version.txt
var Version string
