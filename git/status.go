package git

import (
	"context"
	"fmt"
	"strings"
)

// Status reports whether tracked files differ from HEAD. When they do,
// summary holds the output of `git status --short`.
func (c *Client) Status(ctx context.Context) (dirty bool, summary string, err error) {
	// stale stat info makes diff-index report untouched files as changed
	if _, err = c.Run(ctx, "update-index", "-q", "--refresh"); err != nil {
		return false, "", fmt.Errorf("cannot refresh index: %w", err)
	}

	res, err := c.Run(ctx, "diff-index", "--quiet", "HEAD", "--")
	if err != nil {
		return false, "", fmt.Errorf("cannot compare working tree: %w", err)
	}
	switch res.ExitCode {
	case 0:
		return false, "", nil
	case 1:
	default:
		return false, "", fmt.Errorf("git diff-index exited with status %d: %s", res.ExitCode, strings.TrimSpace(res.Stderr))
	}

	res, err = c.Run(ctx, "status", "--short")
	if err != nil {
		return true, "", fmt.Errorf("cannot list changes: %w", err)
	}
	return true, strings.TrimRight(res.Stdout, "\n"), nil
}
