package config

const (
	DefaultSource          = "./src/**/*.scss"
	DefaultDest            = "./docs"
	DefaultDescriptionPath = "./README.md"
	DefaultTheme           = "default"
	DefaultPackage         = "./package.json"
	DefaultBasePath        = "https://github.com/gmvqbu/duo"
	DefaultEngineBinary    = "sassdoc"
	DefaultConfigFile      = "sassdoc.yaml"
)

// DefaultGroups returns the group labels used by the stock task.
func DefaultGroups() GroupLabels {
	return GroupLabels{
		"error": "Error",
		"theme": "Theme",
	}
}

// New builds the stock task configuration with the given group labels.
// Missing labels are derived from their group ids.
func New(groups GroupLabels) *Config {
	return &Config{
		Source:           DefaultSource,
		Dest:             DefaultDest,
		DescriptionPath:  DefaultDescriptionPath,
		Exclude:          []string{"./src/helpers/_errors.scss"},
		Theme:            DefaultTheme,
		Package:          DefaultPackage,
		Autofill:         []string{AutofillContent},
		Groups:           groups.withDerivedLabels(),
		NoUpdateNotifier: false,
		Verbose:          false,
		Strict:           false,
		Display: DisplayOptions{
			Access:    []string{AccessPublic},
			Alias:     true,
			Watermark: true,
		},
		BasePath: DefaultBasePath,
		Sort:     []string{SortAccess, SortGroup, SortLine},
		Engine:   EngineConfig{Binary: DefaultEngineBinary},
	}
}

// Default is New(DefaultGroups()).
func Default() *Config {
	return New(DefaultGroups())
}

// applyDefaults fills fields that must never be empty after loading.
func applyDefaults(c *Config) {
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	if c.Engine.Binary == "" {
		c.Engine.Binary = DefaultEngineBinary
	}
	if len(c.Sort) == 0 {
		c.Sort = []string{SortAccess, SortGroup, SortLine}
	}
	if len(c.Display.Access) == 0 {
		c.Display.Access = []string{AccessPublic}
	}
	c.Groups = c.Groups.withDerivedLabels()
}
