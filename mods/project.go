package mods

import "github.com/Masterminds/semver/v3"

// GclProject represents a project configuration loaded from a `gcl.toml`
// file.  Project files are optional: translating a bare source file just
// uses the defaults.
type GclProject struct {
	// Name is the name of the project.
	Name string

	// ProjectRoot is the path to the directory containing the project file.
	ProjectRoot string

	// Version is the project's own version.
	Version *semver.Version

	// Output selects how translated formulas print: OutputNamed keeps the
	// combinator names, OutputExpanded substitutes their definitions.
	Output string

	// MaxDepth is the translator's recursion guard.
	MaxDepth int

	// MaxSteps is the reducer's step budget.
	MaxSteps int
}

// The formula printing modes.
const (
	OutputNamed    = "named"
	OutputExpanded = "expanded"
)

// IsValidIdentifier returns whether or not a given string would be a valid
// project name.
func IsValidIdentifier(idstr string) bool {
	if idstr == "" {
		return false
	}

	if idstr[0] == '_' || ('a' <= idstr[0] && idstr[0] <= 'z') || ('A' <= idstr[0] && idstr[0] <= 'Z') {
		for _, c := range idstr[1:] {
			if c == '_' || c == '-' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
				continue
			}

			return false
		}

		return true
	}

	return false
}
