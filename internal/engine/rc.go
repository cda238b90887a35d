package engine

import (
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sassdocbuilder/internal/config"
)

// RCFileName is the configuration file name the engine reads.
const RCFileName = ".sassdocrc"

// rcFile mirrors the engine's option names. Field order is fixed so the
// encoded bytes only change when the configuration does.
type rcFile struct {
	Dest             string            `yaml:"dest"`
	Exclude          []string          `yaml:"exclude,omitempty"`
	Theme            string            `yaml:"theme"`
	Package          string            `yaml:"package,omitempty"`
	Autofill         []string          `yaml:"autofill"`
	Groups           map[string]string `yaml:"groups,omitempty"`
	NoUpdateNotifier bool              `yaml:"no-update-notifier"`
	Verbose          bool              `yaml:"verbose"`
	Strict           bool              `yaml:"strict"`
	Display          rcDisplay         `yaml:"display"`
	BasePath         string            `yaml:"basePath,omitempty"`
	ShortcutIcon     string            `yaml:"shortcutIcon,omitempty"`
	Sort             []string          `yaml:"sort"`
	DescriptionPath  string            `yaml:"descriptionPath,omitempty"`
}

type rcDisplay struct {
	Access    []string `yaml:"access"`
	Alias     bool     `yaml:"alias"`
	Watermark bool     `yaml:"watermark"`
}

// EncodeConfig renders cfg as the engine's configuration file.
func EncodeConfig(cfg *config.Config) ([]byte, error) {
	autofill := cfg.Autofill
	if autofill == nil {
		autofill = []string{}
	}
	rc := rcFile{
		Dest:             cfg.Dest,
		Exclude:          cfg.Exclude,
		Theme:            cfg.Theme,
		Package:          cfg.Package,
		Autofill:         autofill,
		Groups:           cfg.Groups,
		NoUpdateNotifier: cfg.NoUpdateNotifier,
		Verbose:          cfg.Verbose,
		Strict:           cfg.Strict,
		Display: rcDisplay{
			Access:    cfg.Display.Access,
			Alias:     cfg.Display.Alias,
			Watermark: cfg.Display.Watermark,
		},
		BasePath:        cfg.BasePath,
		ShortcutIcon:    cfg.ShortcutIcon,
		Sort:            cfg.Sort,
		DescriptionPath: cfg.DescriptionPath,
	}
	return yaml.Marshal(&rc)
}
