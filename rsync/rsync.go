package rsync

import (
	"context"
	"fmt"

	"github.com/redbadger/sitedeploy/command"
	"github.com/redbadger/sitedeploy/ssh"
)

// Transfer mirrors an allow-list of files to a remote directory
type Transfer struct {
	Runner command.Runner
	// DryRun asks rsync to report what it would send without sending it
	DryRun bool
}

// Args returns the rsync arguments that send exactly files, and nothing else
// in the source directory, to dest using ssh on port as the transport
func Args(files []string, port int, dest string, dryRun bool) []string {
	args := []string{"-avz"}
	if dryRun {
		args = append(args, "--dry-run")
	}
	for _, f := range files {
		args = append(args, "--include="+f)
	}
	args = append(args,
		"--exclude=*",
		"-e", ssh.Command(port),
		"./",
		dest,
	)
	return args
}

// Send runs rsync from dir
func (t Transfer) Send(ctx context.Context, dir string, files []string, port int, dest string) error {
	res, err := t.Runner.Run(ctx, dir, "rsync", Args(files, port, dest, t.DryRun)...)
	if err != nil {
		return fmt.Errorf("cannot run rsync: %w", err)
	}
	if !res.Success() {
		return fmt.Errorf("rsync exited with status %d", res.ExitCode)
	}
	return nil
}
