package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/redbadger/sitedeploy/command"
)

// Client queries the git repository containing Dir
type Client struct {
	Dir    string
	Runner command.Runner
}

// New returns a Client for the repository containing dir
func New(dir string, runner command.Runner) *Client {
	return &Client{Dir: dir, Runner: runner}
}

// Run executes git (in the client's working directory) with args
// and returns the captured result
func (c *Client) Run(ctx context.Context, args ...string) (command.Result, error) {
	return c.Runner.Run(ctx, c.Dir, "git", args...)
}

// Output executes git with args and returns its trimmed stdout.
// A non-zero exit status is an error carrying git's stderr.
func (c *Client) Output(ctx context.Context, args ...string) (string, error) {
	res, err := c.Run(ctx, args...)
	if err != nil {
		return "", fmt.Errorf("cannot run git %s: %w", args[0], err)
	}
	if !res.Success() {
		return "", fmt.Errorf("git %s exited with status %d: %s",
			strings.Join(args, " "), res.ExitCode, strings.TrimSpace(res.Stderr))
	}
	return strings.TrimSpace(res.Stdout), nil
}
