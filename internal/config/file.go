package config

// fileConfig is the on-disk shape. Pointer and nil-able fields distinguish
// "absent" from "set to the zero value" so that a file only overrides what it names.
type fileConfig struct {
	Source           *string           `yaml:"source,omitempty" toml:"source,omitempty" json:"source,omitempty"`
	Dest             *string           `yaml:"dest,omitempty" toml:"dest,omitempty" json:"dest,omitempty"`
	DescriptionPath  *string           `yaml:"description_path,omitempty" toml:"description_path,omitempty" json:"description_path,omitempty"`
	Exclude          []string          `yaml:"exclude,omitempty" toml:"exclude,omitempty" json:"exclude,omitempty"`
	Theme            *string           `yaml:"theme,omitempty" toml:"theme,omitempty" json:"theme,omitempty"`
	Package          *string           `yaml:"package,omitempty" toml:"package,omitempty" json:"package,omitempty"`
	Autofill         []string          `yaml:"autofill,omitempty" toml:"autofill,omitempty" json:"autofill,omitempty"`
	Groups           map[string]string `yaml:"groups,omitempty" toml:"groups,omitempty" json:"groups,omitempty"`
	NoUpdateNotifier *bool             `yaml:"no_update_notifier,omitempty" toml:"no_update_notifier,omitempty" json:"no_update_notifier,omitempty"`
	Verbose          *bool             `yaml:"verbose,omitempty" toml:"verbose,omitempty" json:"verbose,omitempty"`
	Strict           *bool             `yaml:"strict,omitempty" toml:"strict,omitempty" json:"strict,omitempty"`
	Display          *fileDisplay      `yaml:"display,omitempty" toml:"display,omitempty" json:"display,omitempty"`
	BasePath         *string           `yaml:"base_path,omitempty" toml:"base_path,omitempty" json:"base_path,omitempty"`
	ShortcutIcon     *string           `yaml:"shortcut_icon,omitempty" toml:"shortcut_icon,omitempty" json:"shortcut_icon,omitempty"`
	Sort             []string          `yaml:"sort,omitempty" toml:"sort,omitempty" json:"sort,omitempty"`
	Engine           *fileEngine       `yaml:"engine,omitempty" toml:"engine,omitempty" json:"engine,omitempty"`
}

type fileDisplay struct {
	Access    []string `yaml:"access,omitempty" toml:"access,omitempty" json:"access,omitempty"`
	Alias     *bool    `yaml:"alias,omitempty" toml:"alias,omitempty" json:"alias,omitempty"`
	Watermark *bool    `yaml:"watermark,omitempty" toml:"watermark,omitempty" json:"watermark,omitempty"`
}

type fileEngine struct {
	Binary *string `yaml:"binary,omitempty" toml:"binary,omitempty" json:"binary,omitempty"`
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

// applyTo overlays the fields present in the file onto c.
func (f *fileConfig) applyTo(c *Config) {
	setString(&c.Source, f.Source)
	setString(&c.Dest, f.Dest)
	setString(&c.DescriptionPath, f.DescriptionPath)
	setString(&c.Theme, f.Theme)
	setString(&c.Package, f.Package)
	setString(&c.BasePath, f.BasePath)
	setString(&c.ShortcutIcon, f.ShortcutIcon)
	setBool(&c.NoUpdateNotifier, f.NoUpdateNotifier)
	setBool(&c.Verbose, f.Verbose)
	setBool(&c.Strict, f.Strict)
	if f.Exclude != nil {
		c.Exclude = f.Exclude
	}
	if f.Autofill != nil {
		c.Autofill = f.Autofill
	}
	if f.Groups != nil {
		c.Groups = GroupLabels(f.Groups)
	}
	if f.Sort != nil {
		c.Sort = f.Sort
	}
	if f.Display != nil {
		if f.Display.Access != nil {
			c.Display.Access = f.Display.Access
		}
		setBool(&c.Display.Alias, f.Display.Alias)
		setBool(&c.Display.Watermark, f.Display.Watermark)
	}
	if f.Engine != nil {
		setString(&c.Engine.Binary, f.Engine.Binary)
	}
}

// toFile produces a fully populated file representation of c.
func toFile(c *Config) *fileConfig {
	str := func(s string) *string { return &s }
	b := func(v bool) *bool { return &v }
	f := &fileConfig{
		Source:           str(c.Source),
		Dest:             str(c.Dest),
		DescriptionPath:  str(c.DescriptionPath),
		Exclude:          c.Exclude,
		Theme:            str(c.Theme),
		Package:          str(c.Package),
		Autofill:         c.Autofill,
		Groups:           c.Groups,
		NoUpdateNotifier: b(c.NoUpdateNotifier),
		Verbose:          b(c.Verbose),
		Strict:           b(c.Strict),
		Display: &fileDisplay{
			Access:    c.Display.Access,
			Alias:     b(c.Display.Alias),
			Watermark: b(c.Display.Watermark),
		},
		BasePath: str(c.BasePath),
		Sort:     c.Sort,
		Engine:   &fileEngine{Binary: str(c.Engine.Binary)},
	}
	if c.ShortcutIcon != "" {
		f.ShortcutIcon = str(c.ShortcutIcon)
	}
	return f
}
