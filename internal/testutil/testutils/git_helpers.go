package helpers

import (
	"testing"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
)

// SetupTestGitRepo initializes a temporary git repository with an origin remote.
// An empty originURL leaves the repository without remotes.
func SetupTestGitRepo(t *testing.T, originURL string) (*git.Repository, string) {
	t.Helper()

	tempDir := t.TempDir()
	repo, err := git.PlainInit(tempDir, false)
	if err != nil {
		t.Fatalf("failed to initialize git repo: %v", err)
	}
	if originURL != "" {
		if _, err := repo.CreateRemote(&gitconfig.RemoteConfig{
			Name: git.DefaultRemoteName,
			URLs: []string{originURL},
		}); err != nil {
			t.Fatalf("failed to create origin remote: %v", err)
		}
	}
	return repo, tempDir
}
