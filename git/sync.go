package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/redbadger/sitedeploy/model"
)

// Classify returns the relationship between a local commit and its
// upstream commit, given their merge base
func Classify(local, remote, base string) model.SyncState {
	switch {
	case local == remote:
		return model.UpToDate
	case local == base:
		return model.Behind
	case remote == base:
		return model.Ahead
	}
	return model.Diverged
}

// Fetch updates the remote-tracking refs of the repository
func (c *Client) Fetch(ctx context.Context) error {
	if _, err := c.Output(ctx, "fetch", "--quiet"); err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}
	return nil
}

// Sync compares HEAD with its upstream tracking branch. Without an
// upstream the report's State is model.NoUpstream.
func (c *Client) Sync(ctx context.Context) (report model.SyncReport, err error) {
	res, err := c.Run(ctx, "rev-parse", "--abbrev-ref", "--symbolic-full-name", "@{u}")
	if err != nil {
		return report, fmt.Errorf("cannot resolve upstream: %w", err)
	}
	if !res.Success() {
		report.State = model.NoUpstream
		return report, nil
	}
	report.Upstream = strings.TrimSpace(res.Stdout)

	if report.Local, err = c.Output(ctx, "rev-parse", "@"); err != nil {
		return
	}
	if report.Remote, err = c.Output(ctx, "rev-parse", "@{u}"); err != nil {
		return
	}
	if report.Base, err = c.Output(ctx, "merge-base", "@", "@{u}"); err != nil {
		return
	}
	report.State = Classify(report.Local, report.Remote, report.Base)
	return
}
