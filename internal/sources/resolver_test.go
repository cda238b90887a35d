package sources

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/sassdocbuilder/internal/foundation/errors"
)

func touch(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
		require.NoError(t, os.WriteFile(p, []byte("// "+f+"\n"), 0o600))
	}
}

func TestResolve_ExcludesListedFile(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "a.scss", "b.scss", "helpers/_errors.scss")

	r, err := NewResolver(root)
	require.NoError(t, err)
	set, err := r.Resolve(context.Background(), []string{"**/*.scss"}, []string{"helpers/_errors.scss"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.scss", "b.scss"}, set.Files)
	assert.Equal(t, []string{"helpers/_errors.scss"}, set.Excluded)
	assert.Equal(t, 2, set.Len())
}

func TestResolve_StockLayout(t *testing.T) {
	root := t.TempDir()
	touch(t, root,
		"src/main.scss",
		"src/theme/_colors.scss",
		"src/helpers/_errors.scss",
		"src/helpers/_mixins.scss",
		"src/notes.md",
		"vendor/lib.scss",
	)

	r, err := NewResolver(root)
	require.NoError(t, err)
	set, err := r.Resolve(context.Background(), []string{"./src/**/*.scss"}, []string{"./src/helpers/_errors.scss"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"src/helpers/_mixins.scss",
		"src/main.scss",
		"src/theme/_colors.scss",
	}, set.Files)
}

func TestResolve_OverlappingPatternsHaveNoDuplicates(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "src/a.scss", "src/b/c.scss")

	r, err := NewResolver(root)
	require.NoError(t, err)
	set, err := r.Resolve(context.Background(), []string{"src/**/*.scss", "src/*.scss", "src/a.scss"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"src/a.scss", "src/b/c.scss"}, set.Files)
}

func TestResolve_GlobExclusionsAndInertEntries(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "src/a.scss", "src/vendor/x.scss", "src/vendor/deep/y.scss")

	r, err := NewResolver(root)
	require.NoError(t, err)
	set, err := r.Resolve(context.Background(),
		[]string{"src/**/*.scss"},
		[]string{"src/vendor/**", "src/does-not-exist.scss", "../outside.scss"},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"src/a.scss"}, set.Files)
	assert.Equal(t, []string{"src/vendor/deep/y.scss", "src/vendor/x.scss"}, set.Excluded)
}

func TestResolve_AbsolutePathsUnderRoot(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "src/a.scss", "src/b.scss")

	r, err := NewResolver(root)
	require.NoError(t, err)
	set, err := r.Resolve(context.Background(),
		[]string{filepath.Join(r.BaseDir(), "src", "*.scss")},
		[]string{filepath.Join(r.BaseDir(), "src", "b.scss")},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"src/a.scss"}, set.Files)
	assert.Equal(t, []string{filepath.Join(r.BaseDir(), "src", "a.scss")}, set.Abs())
}

func TestResolve_EmptyDirectory(t *testing.T) {
	r, err := NewResolver(t.TempDir())
	require.NoError(t, err)
	set, err := r.Resolve(context.Background(), []string{"src/**/*.scss"}, []string{"src/x.scss"})
	require.NoError(t, err)
	assert.Empty(t, set.Files)
	assert.Empty(t, set.Excluded)
}

func TestResolve_IsDeterministic(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "z.scss", "m/a.scss", "a.scss", "m/z.scss")

	r, err := NewResolver(root)
	require.NoError(t, err)
	first, err := r.Resolve(context.Background(), []string{"**/*.scss"}, nil)
	require.NoError(t, err)
	for range 5 {
		again, err := r.Resolve(context.Background(), []string{"**/*.scss"}, nil)
		require.NoError(t, err)
		assert.Equal(t, first.Files, again.Files)
	}
	assert.Equal(t, []string{"a.scss", "m/a.scss", "m/z.scss", "z.scss"}, first.Files)
}

func TestResolve_Errors(t *testing.T) {
	r, err := NewResolver(t.TempDir())
	require.NoError(t, err)

	_, err = r.Resolve(context.Background(), []string{"src/[*.scss"}, nil)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategorySources))

	_, err = r.Resolve(context.Background(), []string{"../elsewhere/*.scss"}, nil)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategorySources))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Resolve(ctx, []string{"*.scss"}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
