package report

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helpers "git.home.luguber.info/inful/sassdocbuilder/internal/testutil/testutils"
)

func writeSite(t *testing.T) string {
	t.Helper()
	dest := t.TempDir()
	helpers.WriteFiles(t, dest, map[string]string{
		"index.html":          "<!doctype html><html><head><title>\n  Duo - SassDoc\n</title></head><body></body></html>",
		"assets/css/main.css": "body{}",
		"assets/js/main.js":   "void 0;",
	})
	return dest
}

func TestBuild(t *testing.T) {
	dest := writeSite(t)

	r, err := Build(context.Background(), dest)
	require.NoError(t, err)
	require.Equal(t, 3, r.Len())
	assert.Equal(t, "Duo - SassDoc", r.Title)

	paths := make([]string, 0, r.Len())
	for _, a := range r.Artifacts {
		paths = append(paths, a.Path)
		assert.Len(t, a.SHA256, 64)
	}
	assert.Equal(t, []string{"assets/css/main.css", "assets/js/main.js", "index.html"}, paths)
	assert.Equal(t, int64(6), r.Artifacts[0].Size)
}

func TestBuild_DigestStableAndSensitive(t *testing.T) {
	dest := writeSite(t)

	first, err := Build(context.Background(), dest)
	require.NoError(t, err)
	second, err := Build(context.Background(), dest)
	require.NoError(t, err)
	assert.Equal(t, first.Digest, second.Digest)

	require.NoError(t, os.WriteFile(filepath.Join(dest, "assets", "js", "main.js"), []byte("void 1;"), 0o600))
	third, err := Build(context.Background(), dest)
	require.NoError(t, err)
	assert.NotEqual(t, first.Digest, third.Digest)
}

func TestBuild_SkipsNamedFiles(t *testing.T) {
	dest := writeSite(t)
	reportPath := filepath.Join(dest, "report.json")

	first, err := Build(context.Background(), dest, reportPath)
	require.NoError(t, err)
	require.NoError(t, first.Write(reportPath))

	second, err := Build(context.Background(), dest, reportPath)
	require.NoError(t, err)
	assert.Equal(t, first.Digest, second.Digest)
	assert.Equal(t, 3, second.Len())

	withReport, err := Build(context.Background(), dest)
	require.NoError(t, err)
	assert.Equal(t, 4, withReport.Len())
	assert.NotEqual(t, first.Digest, withReport.Digest)
}

func TestBuild_NoIndex(t *testing.T) {
	dest := t.TempDir()
	helpers.WriteFiles(t, dest, map[string]string{"a.txt": "a"})

	r, err := Build(context.Background(), dest)
	require.NoError(t, err)
	assert.Empty(t, r.Title)
	assert.Equal(t, 1, r.Len())
}

func TestBuild_MissingDest(t *testing.T) {
	_, err := Build(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestWrite(t *testing.T) {
	r, err := Build(context.Background(), writeSite(t))
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "reports", "sassdoc.json")
	require.NoError(t, r.Write(out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var decoded Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, r.Digest, decoded.Digest)
	assert.Len(t, decoded.Artifacts, 3)
}
