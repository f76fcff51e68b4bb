// Package commandtest provides a command.Runner that records invocations
// and replays canned results.
package commandtest

import (
	"context"
	"strings"

	"github.com/redbadger/sitedeploy/command"
)

// Call is one recorded invocation
type Call struct {
	Dir  string
	Name string
	Args []string
}

// Line returns the invocation as a single space separated string
func (c Call) Line() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Response is what the Recorder returns for a matching invocation
type Response struct {
	Result command.Result
	Err    error
}

// Recorder is a fake command.Runner. Responses are keyed by Call.Line();
// unknown invocations succeed with empty output.
type Recorder struct {
	Responses map[string]Response
	Calls     []Call
}

// New returns an empty Recorder
func New() *Recorder {
	return &Recorder{Responses: map[string]Response{}}
}

// On registers the stdout and exit code returned for line
func (r *Recorder) On(line, stdout string, exitCode int) *Recorder {
	r.Responses[line] = Response{Result: command.Result{Stdout: stdout, ExitCode: exitCode}}
	return r
}

// Run implements command.Runner
func (r *Recorder) Run(ctx context.Context, workingDir, name string, args ...string) (command.Result, error) {
	call := Call{Dir: workingDir, Name: name, Args: args}
	r.Calls = append(r.Calls, call)
	resp := r.Responses[call.Line()]
	return resp.Result, resp.Err
}

// Lines returns every recorded invocation, in order
func (r *Recorder) Lines() []string {
	lines := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		lines[i] = c.Line()
	}
	return lines
}
