// Package gitremote derives the documentation cross-link base URL from the
// enclosing repository's origin remote.
package gitremote

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-git/go-git/v5"

	ferrors "git.home.luguber.info/inful/sassdocbuilder/internal/foundation/errors"
)

var (
	ErrNoRepository = errors.New("not inside a git repository")
	ErrNoOrigin     = errors.New("repository has no origin remote")
	ErrUnsupported  = errors.New("unsupported remote url")
)

// BasePath opens the repository containing dir and returns origin as an
// https URL without credentials, port or .git suffix.
func BasePath(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			err = ErrNoRepository
		}
		return "", ferrors.WrapError(err, ferrors.CategoryGit, "open repository").WithContext("path", dir).Build()
	}

	remote, err := repo.Remote(git.DefaultRemoteName)
	if err != nil {
		if errors.Is(err, git.ErrRemoteNotFound) {
			err = ErrNoOrigin
		}
		return "", ferrors.WrapError(err, ferrors.CategoryGit, "read origin remote").WithContext("path", dir).Build()
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", ferrors.WrapError(ErrNoOrigin, ferrors.CategoryGit, "read origin remote").WithContext("path", dir).Build()
	}

	base, err := HTTPSURL(urls[0])
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryGit, "convert origin url").WithContext("url", urls[0]).Build()
	}
	return base, nil
}

// HTTPSURL converts scp-like (git@host:owner/repo.git), ssh://, git:// and
// http(s) remote URLs to https://host/owner/repo.
func HTTPSURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	var host, path string

	switch {
	case strings.Contains(raw, "://"):
		u, err := url.Parse(raw)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrUnsupported, err)
		}
		switch u.Scheme {
		case "ssh", "git", "http", "https", "git+ssh":
		default:
			return "", fmt.Errorf("%w: scheme %q", ErrUnsupported, u.Scheme)
		}
		host, path = u.Hostname(), u.Path
	case strings.Contains(raw, ":"):
		at := strings.Index(raw, "@")
		colon := strings.Index(raw, ":")
		if at > colon {
			return "", fmt.Errorf("%w: %q", ErrUnsupported, raw)
		}
		host, path = raw[at+1:colon], raw[colon+1:]
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupported, raw)
	}

	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")
	if host == "" || path == "" {
		return "", fmt.Errorf("%w: %q", ErrUnsupported, raw)
	}
	return "https://" + host + "/" + path, nil
}
