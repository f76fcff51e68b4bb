package git

import (
	"context"
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ErrNotRepository is returned when Dir is not inside a git repository
var ErrNotRepository = errors.New("not a git repository")

// detachedHead is what git reports as the branch name of a detached HEAD
const detachedHead = "HEAD"

func (c *Client) open() (*gogit.Repository, error) {
	r, err := gogit.PlainOpenWithOptions(c.Dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		return nil, fmt.Errorf("%s: %w", c.Dir, ErrNotRepository)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open repository at %s: %w", c.Dir, err)
	}
	return r, nil
}

// CheckRepository succeeds when Dir, or one of its parents, is a git repository
func (c *Client) CheckRepository(ctx context.Context) error {
	_, err := c.open()
	return err
}

// CurrentBranch returns the short name of the checked out branch.
// A branch with no commits yet is still reported by name; a detached
// HEAD is reported as "HEAD".
func (c *Client) CurrentBranch(ctx context.Context) (string, error) {
	r, err := c.open()
	if err != nil {
		return "", err
	}
	head, err := r.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", fmt.Errorf("cannot read HEAD: %w", err)
	}
	if head.Type() == plumbing.SymbolicReference && head.Target().IsBranch() {
		return head.Target().Short(), nil
	}
	return detachedHead, nil
}
