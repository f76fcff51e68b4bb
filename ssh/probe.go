package ssh

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/redbadger/sitedeploy/command"
	"github.com/redbadger/sitedeploy/constants"
)

// Prober checks that a non-interactive ssh login to the remote host works
type Prober struct {
	Runner command.Runner
}

// Args returns the ssh arguments for a batch-mode login to login@host on port
// that runs `exit` and disconnects
func Args(login string, port int) []string {
	return []string{
		"-o", "BatchMode=yes",
		"-o", "ConnectTimeout=" + strconv.Itoa(constants.ProbeTimeout),
		"-p", strconv.Itoa(port),
		login,
		"exit",
	}
}

// Probe attempts the login. It never prompts for a password.
func (p Prober) Probe(ctx context.Context, login string, port int) error {
	res, err := p.Runner.Run(ctx, "", "ssh", Args(login, port)...)
	if err != nil {
		return fmt.Errorf("cannot run ssh: %w", err)
	}
	if !res.Success() {
		return fmt.Errorf("ssh exited with status %d: %s", res.ExitCode, strings.TrimSpace(res.Stderr))
	}
	return nil
}

// Command returns the transport command rsync uses to reach port
func Command(port int) string {
	return "ssh -p " + strconv.Itoa(port)
}
