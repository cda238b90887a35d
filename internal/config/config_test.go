package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/sassdocbuilder/internal/foundation/errors"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvSource, EnvDest, EnvTheme, EnvBasePath, EnvVerbose, EnvStrict, EnvBinary} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestDefault_MatchesStockTask(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "./src/**/*.scss", cfg.Source)
	assert.Equal(t, "./docs", cfg.Dest)
	assert.Equal(t, "./README.md", cfg.DescriptionPath)
	assert.Equal(t, []string{"./src/helpers/_errors.scss"}, cfg.Exclude)
	assert.Equal(t, "default", cfg.Theme)
	assert.Equal(t, "./package.json", cfg.Package)
	assert.Equal(t, []string{"content"}, cfg.Autofill)
	assert.Equal(t, GroupLabels{"error": "Error", "theme": "Theme"}, cfg.Groups)
	assert.False(t, cfg.NoUpdateNotifier)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.Strict)
	assert.Equal(t, DisplayOptions{Access: []string{"public"}, Alias: true, Watermark: true}, cfg.Display)
	assert.Equal(t, "https://github.com/gmvqbu/duo", cfg.BasePath)
	assert.Equal(t, []string{"access", "group", "line"}, cfg.Sort)
	require.NoError(t, Validate(cfg))
}

func TestNew_DerivesMissingLabels(t *testing.T) {
	cfg := New(GroupLabels{"theme-helpers": "", "error": "Errors"})
	assert.Equal(t, "Theme Helpers", cfg.Groups["theme-helpers"])
	assert.Equal(t, "Errors", cfg.Groups["error"])
}

func TestNew_EachCallIsIndependent(t *testing.T) {
	a := Default()
	b := Default()
	a.Groups["extra"] = "Extra"
	a.Sort[0] = "line"
	assert.NotContains(t, b.Groups, "extra")
	assert.Equal(t, "access", b.Sort[0])
}

func TestGroupsFromPairs(t *testing.T) {
	groups, err := GroupsFromPairs([]string{"error=Error", "theme", " mixins = Mixin helpers "})
	require.NoError(t, err)
	assert.Equal(t, GroupLabels{"error": "Error", "theme": "Theme", "mixins": "Mixin helpers"}, groups)

	_, err = GroupsFromPairs([]string{"error=Error", "error=Errors"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateKey)

	_, err = GroupsFromPairs([]string{"=Nameless"})
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
}

func TestParse_YAMLOverlaysDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Parse([]byte(`
dest: ./public/sassdoc
verbose: true
display:
  alias: false
groups:
  error:
  theme: Themes
sort: ["file<", "line"]
`), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "./public/sassdoc", cfg.Dest)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.Display.Alias)
	assert.True(t, cfg.Display.Watermark, "unset fields keep their defaults")
	assert.Equal(t, []string{"public"}, cfg.Display.Access)
	assert.Equal(t, GroupLabels{"error": "Error", "theme": "Themes"}, cfg.Groups)
	assert.Equal(t, []string{"file<", "line"}, cfg.Sort)
	assert.Equal(t, Default().Exclude, cfg.Exclude)
}

func TestParse_DuplicateKeysAreRejected(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name   string
		format Format
		data   string
		key    string
	}{
		{
			name:   "yaml duplicate verbose flag",
			format: FormatYAML,
			data:   "verbose: false\nstrict: false\nverbose: true\n",
			key:    "verbose",
		},
		{
			name:   "yaml duplicate group id",
			format: FormatYAML,
			data:   "groups:\n  error: Error\n  theme: Theme\n  error: Errors\n",
			key:    "error",
		},
		{
			name:   "json duplicate group id",
			format: FormatJSON,
			data:   `{"groups": {"error": "Error", "error": "Errors"}}`,
			key:    "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDuplicateKey)
			c, ok := ferrors.AsClassified(err)
			require.True(t, ok)
			key := c.FieldString("key")
			assert.Equal(t, tt.key, key)
		})
	}

	t.Run("toml duplicate group id", func(t *testing.T) {
		_, err := Parse([]byte("[groups]\nerror = \"Error\"\nerror = \"Errors\"\n"), FormatTOML)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDuplicateKey)
		c, ok := ferrors.AsClassified(err)
		require.True(t, ok)
		assert.Equal(t, "groups", c.FieldString("field"))
		assert.Equal(t, "error", c.FieldString("key"))
	})

	t.Run("toml duplicate top-level key", func(t *testing.T) {
		_, err := Parse([]byte("theme = \"default\"\ntheme = \"neat\"\n"), FormatTOML)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDuplicateKey)
		c, ok := ferrors.AsClassified(err)
		require.True(t, ok)
		assert.Equal(t, ".", c.FieldString("field"))
		assert.Equal(t, "theme", c.FieldString("key"))
	})
}

func TestParse_TOMLAndJSON(t *testing.T) {
	clearEnv(t)
	cfg, err := Parse([]byte(`
source = "styles/**/*.scss"
exclude = ["styles/vendor/**"]

[display]
access = ["public", "private"]
`), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, "styles/**/*.scss", cfg.Source)
	assert.Equal(t, []string{"styles/vendor/**"}, cfg.Exclude)
	assert.Equal(t, []string{"public", "private"}, cfg.Display.Access)

	cfg, err = Parse([]byte(`{"theme": "flippant", "strict": true}`), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "flippant", cfg.Theme)
	assert.True(t, cfg.Strict)
}

func TestParse_ValidationErrors(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name  string
		data  string
		field string
	}{
		{"unknown sort field", "sort: [access, weight]", "sort"},
		{"repeated sort field", "sort: [access, 'access>']", "sort"},
		{"leading direction marker", "sort: ['>line']", "sort"},
		{"unknown access level", "display: {access: [protected]}", "display.access"},
		{"unknown autofill", "autofill: [content, magic]", "autofill"},
		{"relative base path", "base_path: gmvqbu/duo", "base_path"},
		{"malformed glob", "source: 'src/[*.scss'", "source"},
		{"empty dest", "dest: ''", "dest"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), FormatYAML)
			require.Error(t, err)
			c, ok := ferrors.AsClassified(err)
			require.True(t, ok)
			assert.Equal(t, ferrors.CategoryValidation, c.Category())
			field := c.FieldString("field")
			assert.Equal(t, tt.field, field)
		})
	}
}

func TestParse_UnknownFieldIsConfigError(t *testing.T) {
	clearEnv(t)
	_, err := Parse([]byte("destination: ./docs\n"), FormatYAML)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
}

func TestParse_CanonicalizesValues(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name string
		sort string
		want []string
	}{
		{"plain fields", "[' Access ', 'GROUP']", []string{"access", "group"}},
		{"descending marker", "['LINE>']", []string{"line>"}},
		{"ascending marker", "['file<', access]", []string{"file<", "access"}},
		{"space before marker", "['group >']", []string{"group>"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte("sort: "+tt.sort+"\nautofill: [Requires]\n"), FormatYAML)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Sort)
			assert.Equal(t, []string{"requires"}, cfg.Autofill)
		})
	}
}

func TestValidate_SortDirectionSuffix(t *testing.T) {
	cfg := Default()
	cfg.Sort = []string{"access", "line>", "group", "file"}
	require.NoError(t, Validate(cfg))
	assert.Equal(t, []string{"access", "line>", "group", "file"}, cfg.Sort)

	cfg.Sort = []string{"line<", "line>"}
	err := Validate(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestApplyEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDest, "/tmp/out")
	t.Setenv(EnvStrict, "true")

	cfg, err := Parse([]byte("dest: ./docs\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/out", cfg.Dest)
	assert.True(t, cfg.Strict)

	t.Setenv(EnvVerbose, "sometimes")
	_, err = Parse(nil, FormatYAML)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryNotFound))
}

func TestLoadOrDefault_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "sassdoc.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Snapshot(), cfg.Snapshot())
}

func TestLoad_ReadsDotEnvNextToConfig(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, ".env", "SASSDOC_THEME=neat\n")
	path := writeFile(t, dir, "sassdoc.yaml", "dest: ./out\n")
	// godotenv does not override variables that already exist, so drop the
	// empty value installed by clearEnv.
	require.NoError(t, os.Unsetenv(EnvTheme))
	t.Cleanup(func() { _ = os.Unsetenv(EnvTheme) })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "neat", cfg.Theme)
	assert.Equal(t, "./out", cfg.Dest)
}

func TestLoad_DotEnvLocalOverridesDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, ".env", "SASSDOC_THEME=neat\nSASSDOC_DEST=./from-env\n")
	writeFile(t, dir, ".env.local", "SASSDOC_THEME=flippant\n")
	path := writeFile(t, dir, "sassdoc.yaml", "source: ./scss\n")
	for _, key := range []string{EnvTheme, EnvDest} {
		require.NoError(t, os.Unsetenv(key))
		t.Cleanup(func() { _ = os.Unsetenv(key) })
	}

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "flippant", cfg.Theme, ".env.local takes precedence")
	assert.Equal(t, "./from-env", cfg.Dest, ".env still supplies the rest")
}

func TestInit_RoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "conf", "sassdoc.yaml")
	require.NoError(t, Init(path, false))

	err := Init(path, false)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
	require.NoError(t, Init(path, true))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Snapshot(), cfg.Snapshot())
}

func TestSnapshot(t *testing.T) {
	a := Default()
	b := Default()
	assert.Equal(t, a.Snapshot(), b.Snapshot(), "identical configs hash identically")

	b.Exclude = []string{"x.scss", "./src/helpers/_errors.scss"}
	a.Exclude = []string{"./src/helpers/_errors.scss", "x.scss"}
	assert.Equal(t, a.Snapshot(), b.Snapshot(), "exclusion order does not matter")

	b.Sort = []string{"group", "access", "line"}
	assert.NotEqual(t, a.Snapshot(), b.Snapshot(), "sort precedence matters")

	var nilCfg *Config
	assert.Empty(t, nilCfg.Snapshot())
}

func TestClone(t *testing.T) {
	a := Default()
	b := a.Clone()
	b.Display.Access[0] = "private"
	b.Groups["new"] = "New"
	assert.Equal(t, "public", a.Display.Access[0])
	assert.NotContains(t, a.Groups, "new")
}
