package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Options is the resolved render configuration. It is immutable for the
// duration of a draw; the renderer never mutates it.
type Options struct {
	Root             string   // directory to render
	Ignore           []string // shell-glob patterns matched against bare entry names
	ShowFiles        bool     // include files (not just directories)
	ShowModifiedTime bool     // append [Modified: ...] annotations
	ShowSize         bool     // append [Size: ...] annotations
	ShowHidden       bool     // include dotfiles
	UseGitignore     bool     // also filter entries matched by <root>/.gitignore
}

// File is the JSON config file structure.
// All fields are pointers to distinguish "not set" from "set to zero".
type File struct {
	Ignore           *[]string `json:"ignore,omitempty"`
	ShowFiles        *bool     `json:"showFiles,omitempty"`
	ShowModifiedTime *bool     `json:"showModifiedTime,omitempty"`
	ShowSize         *bool     `json:"showSize,omitempty"`
	ShowHidden       *bool     `json:"showHidden,omitempty"`
	UseGitignore     *bool     `json:"gitignore,omitempty"`
}

// Load reads and parses a config file from the given path.
// Returns nil config (not error) if path is empty.
func Load(path string) (*File, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &f, nil
}

// Resolve combines defaults, the config file, and CLI flag overrides.
// Precedence: built-in defaults < config file < overrides.
// Root is a positional concern and is left for the caller to fill in.
func (f *File) Resolve(overrides *File) Options {
	result := DefaultOptions()

	if f != nil {
		result = merge(result, *f)
	}
	if overrides != nil {
		result = merge(result, *overrides)
	}

	return result
}

// merge overlays src onto base, only replacing non-nil values.
func merge(base Options, src File) Options {
	if src.Ignore != nil {
		base.Ignore = *src.Ignore
	}
	if src.ShowFiles != nil {
		base.ShowFiles = *src.ShowFiles
	}
	if src.ShowModifiedTime != nil {
		base.ShowModifiedTime = *src.ShowModifiedTime
	}
	if src.ShowSize != nil {
		base.ShowSize = *src.ShowSize
	}
	if src.ShowHidden != nil {
		base.ShowHidden = *src.ShowHidden
	}
	if src.UseGitignore != nil {
		base.UseGitignore = *src.UseGitignore
	}
	return base
}
