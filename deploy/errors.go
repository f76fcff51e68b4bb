package deploy

import "errors"

// Each fatal condition of a deployment wraps one of these
var (
	ErrNotRepository  = errors.New("not inside a git repository")
	ErrWrongBranch    = errors.New("not on the deploy branch")
	ErrDeclined       = errors.New("deployment cancelled")
	ErrFetchFailed    = errors.New("cannot fetch from remote")
	ErrBehindUpstream = errors.New("local branch is behind its upstream")
	ErrMissingFiles   = errors.New("required files missing")
	ErrTransferFailed = errors.New("transfer failed")
)
