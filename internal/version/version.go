// Package version carries the build metadata stamped into the binary.
package version

import (
	"strings"

	"github.com/fatih/color"
)

// Set at release time via -ldflags; the defaults mark a source build.
var (
	Version   = "0.1.0-dev"
	GitCommit = ""
	BuildDate = ""
)

var (
	numberColor = color.New(color.FgCyan, color.Bold)
	suffixColor = color.New(color.Faint)
)

// Colorized renders the version with the number highlighted and any
// prerelease suffix dimmed. Honors the global color.NoColor switch.
func Colorized() string {
	num, suffix, found := strings.Cut(Version, "-")
	out := numberColor.Sprint(num)
	if found {
		out += suffixColor.Sprint("-" + suffix)
	}
	return out
}
