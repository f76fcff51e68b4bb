package command

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"

	log "github.com/sirupsen/logrus"
)

// Result is the captured outcome of an external command
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports whether the command exited with status 0
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Runner executes external commands
type Runner interface {
	Run(ctx context.Context, workingDir, name string, args ...string) (Result, error)
}

// Exec runs commands on the local machine
type Exec struct {
	// Stream, when true, forwards the command's output to the terminal
	// instead of capturing it
	Stream bool
}

// Run executes name (in the specified workingDir) with args.
// A non-zero exit status is reported in Result.ExitCode; err is only set
// when the command could not be run at all.
func (e Exec) Run(ctx context.Context, workingDir, name string, args ...string) (res Result, err error) {
	log.WithFields(log.Fields{"dir": workingDir, "args": args}).Debug(name)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = os.Environ()
	cmd.Dir = workingDir
	var o, se bytes.Buffer
	if e.Stream {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	} else {
		cmd.Stdout = &o
		cmd.Stderr = &se
	}
	err = cmd.Run()
	res.Stdout = o.String()
	res.Stderr = se.String()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	if err != nil {
		res.ExitCode = -1
	}
	return
}
