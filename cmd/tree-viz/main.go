// Command tree-viz renders a directory hierarchy as a connector-glyph tree,
// optionally annotated with modification times and sizes.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kylesnowschwartz/tree-viz/config"
	"github.com/kylesnowschwartz/tree-viz/internal/logger"
	"github.com/kylesnowschwartz/tree-viz/internal/render"
	"github.com/kylesnowschwartz/tree-viz/internal/scan"
)

var (
	flagIgnore    []string
	flagDirsOnly  bool
	flagAll       bool
	flagMtime     bool
	flagSize      bool
	flagGitignore bool
	flagSave      string
	flagNoColor   bool
	flagConfig    string
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "tree-viz [path]",
	Short: "Render a directory hierarchy as a tree",
	Long: `tree-viz prints a visual tree of a directory, with directories sorted
before files at every level. Entries can be filtered with shell-glob
ignore patterns and annotated with last-modified times and sizes.

Examples:
  tree-viz
  tree-viz /var/log --size --mtime
  tree-viz . -i "*.tmp" -i "node_modules" --dirs-only
  tree-viz . --save /tmp           Also write a plain-text copy`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       "0.1.0",
}

func init() {
	f := rootCmd.Flags()
	f.StringSliceVarP(&flagIgnore, "ignore", "i", nil, "Glob pattern to hide (repeatable)")
	f.BoolVarP(&flagDirsOnly, "dirs-only", "d", false, "Show directories only")
	f.BoolVarP(&flagAll, "all", "a", false, "Include hidden entries")
	f.BoolVarP(&flagMtime, "mtime", "t", false, "Show last-modified times")
	f.BoolVarP(&flagSize, "size", "s", false, "Show sizes (recursive totals for directories)")
	f.BoolVar(&flagGitignore, "gitignore", false, "Also hide entries matched by the root's .gitignore")
	f.StringVar(&flagSave, "save", "", "Directory to also write a plain-text copy into")
	f.BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	f.StringVar(&flagConfig, "config", "", "Path to a JSON options file")
	f.BoolVarP(&flagVerbose, "verbose", "v", false, "Log skipped entries to stderr")
}

func run(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{Enabled: flagVerbose})

	file, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	opts := file.Resolve(flagOverrides(cmd))
	if len(args) == 1 {
		opts.Root = args[0]
	}

	if err := scan.ValidatePatterns(opts.Ignore); err != nil {
		return err
	}

	useColor := !flagNoColor && term.IsTerminal(int(os.Stdout.Fd()))

	r := render.New(os.Stdout, opts, useColor)
	_, err = r.Draw(false, flagSave)
	return err
}

// flagOverrides maps explicitly set flags onto the config overlay, leaving
// untouched flags nil so config-file values survive.
func flagOverrides(cmd *cobra.Command) *config.File {
	var o config.File
	f := cmd.Flags()
	if f.Changed("ignore") {
		o.Ignore = &flagIgnore
	}
	if f.Changed("dirs-only") {
		showFiles := !flagDirsOnly
		o.ShowFiles = &showFiles
	}
	if f.Changed("all") {
		o.ShowHidden = &flagAll
	}
	if f.Changed("mtime") {
		o.ShowModifiedTime = &flagMtime
	}
	if f.Changed("size") {
		o.ShowSize = &flagSize
	}
	if f.Changed("gitignore") {
		o.UseGitignore = &flagGitignore
	}
	return &o
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
