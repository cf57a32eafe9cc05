// Package models defines data structures for configuration and run reports.
package models

import "time"

// Options holds the resolved run configuration for a build.
// All values come from CLI flags, not external config files. The struct is
// populated once before the pipeline runs and never mutated afterwards.
type Options struct {
	MarkdownPath string // path to the source Markdown file
	OutputDir    string // directory receiving the HTML output
	OutputName   string // base name for per-page HTML files
	ImagesSubdir string // images subdirectory name, "" if unset
	ImagesPath   string // images directory next to the source, "" if unset
	CodeSubdir   string // code subdirectory name, "" if unset
	CodePath     string // code directory next to the source, "" if unset
	CSSPath      string // CSS file path in the output directory, "" if unset
	ImageDelay   int    // seconds to wait for a code image to appear
	RunTime      time.Time
}
