// Package build holds build-time information.
package build

import "fmt"

// Version and Commit default to development values and are overwritten by
// linker flags in release builds.
var (
	Version = "dev"
	Commit  = "none"
)

// String returns the version line printed by the CLI.
func String() string {
	return fmt.Sprintf("syringe version %s (%s)", Version, Commit)
}
