package helpers

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// WriteFiles creates files (slash separated paths) with the given contents under root.
func WriteFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
			t.Fatalf("mkdir %s: %v", p, err)
		}
		if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", p, err)
		}
	}
}

// StockProject lays out the project shape the default configuration expects.
func StockProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	WriteFiles(t, root, map[string]string{
		"package.json":             `{"name": "duo", "version": "1.2.0", "description": "Sass toolkit"}`,
		"README.md":                "# Duo\n\nA Sass toolkit.\n",
		"src/main.scss":            "/// Main\n@mixin main {}\n",
		"src/theme/_colors.scss":   "/// Colors\n$primary: red;\n",
		"src/helpers/_errors.scss": "/// Errors\n@function error() {}\n",
	})
	return root
}

// fakeSassdoc records its invocation into the destination directory and
// renders a minimal index page, exiting 3 when dest cannot be created.
const fakeSassdoc = `#!/bin/sh
files=""
flags=""
while [ $# -gt 0 ]; do
  case "$1" in
    --dest) dest="$2"; shift ;;
    --config) rc="$2"; shift ;;
    --*) flags="$flags $1" ;;
    *) files="$files$1
" ;;
  esac
  shift
done
mkdir -p "$dest" 2>/dev/null || { echo "cannot create $dest" >&2; exit 3; }
printf '%s' "$files" > "$dest/files.txt"
cp "$rc" "$dest/sassdocrc.yaml"
echo "$flags" > "$dest/flags.txt"
printf '<html><head><title>SassDoc</title></head><body>ok</body></html>' > "$dest/index.html"
`

// FakeSassdoc writes an executable stand-in for the sassdoc CLI and returns its path.
func FakeSassdoc(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake engine is a POSIX shell script")
	}
	p := filepath.Join(t.TempDir(), "sassdoc")
	if err := os.WriteFile(p, []byte(fakeSassdoc), 0o700); err != nil { // #nosec G306 - must be executable
		t.Fatalf("write fake engine: %v", err)
	}
	return p
}
