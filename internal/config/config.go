// Package config defines the documentation task configuration and its loaders.
//
// A Config is built fresh for every task invocation, either from New/Default
// or from a configuration file via Load, and is treated as immutable for the
// duration of the run. There is no package-level configuration state.
package config

import (
	"maps"
	"slices"
)

// Config is the complete configuration for one documentation run.
type Config struct {
	// Source is the glob selecting style-sheet files, relative to the project root.
	Source          string
	Dest            string
	DescriptionPath string
	// Exclude lists paths or globs removed from the Source matches.
	Exclude          []string
	Theme            string
	Package          string
	Autofill         []string
	Groups           GroupLabels
	NoUpdateNotifier bool
	Verbose          bool
	Strict           bool
	Display          DisplayOptions
	BasePath         string
	ShortcutIcon     string
	// Sort is the item precedence, first entry wins.
	Sort   []string
	Engine EngineConfig
}

// DisplayOptions controls what the rendered documentation shows.
type DisplayOptions struct {
	Access    []string
	Alias     bool
	Watermark bool
}

// EngineConfig selects the external documentation engine executable.
type EngineConfig struct {
	Binary string
}

// Clone returns a deep copy so a run can own its configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	out := *c
	out.Exclude = slices.Clone(c.Exclude)
	out.Autofill = slices.Clone(c.Autofill)
	out.Sort = slices.Clone(c.Sort)
	out.Display.Access = slices.Clone(c.Display.Access)
	out.Groups = maps.Clone(c.Groups)
	return &out
}
