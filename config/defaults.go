// Package config provides configuration types and loading for tree-viz.
package config

// Default values for the construction-time option surface.
const (
	DefaultShowFiles        = true
	DefaultShowModifiedTime = false
	DefaultShowSize         = false
	DefaultShowHidden       = false
	DefaultUseGitignore     = false
)

// DefaultOptions returns the hardcoded default configuration: files shown,
// nothing ignored, no annotations, hidden entries suppressed.
func DefaultOptions() Options {
	return Options{
		Root:             ".",
		ShowFiles:        DefaultShowFiles,
		ShowModifiedTime: DefaultShowModifiedTime,
		ShowSize:         DefaultShowSize,
		ShowHidden:       DefaultShowHidden,
		UseGitignore:     DefaultUseGitignore,
	}
}
