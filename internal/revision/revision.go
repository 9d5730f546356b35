package revision

import (
	"errors"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Returns the commit hash HEAD points to in the repository containing root.
//
// The repository is discovered by walking up from root. Returns an empty
// string and no error when root is not inside a git checkout or HEAD is
// unborn, because a revision is optional metadata for the release.
func Head(root string) (string, error) {
	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", nil
		}
		return "", err
	}

	ref, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", nil
		}
		return "", err
	}

	return ref.Hash().String(), nil
}
