package git

import (
	"fmt"

	git "github.com/go-git/go-git/v5"
)

// OriginURL returns the fetch URL of the "origin" remote of the
// repository at path. The path may point anywhere inside the worktree.
func OriginURL(path string) (string, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", fmt.Errorf("error opening repository: %w", err)
	}

	remote, err := repo.Remote(git.DefaultRemoteName)
	if err != nil {
		return "", fmt.Errorf("error looking up origin remote: %w", err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("origin remote has no URL configured")
	}

	// The first URL is the fetch URL, additional ones are push-only.
	return urls[0], nil
}
