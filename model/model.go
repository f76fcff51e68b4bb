package model

import "fmt"

// The Config type carries the deployment target settings
type Config struct {
	// RemoteUser is the ssh login on the remote host
	RemoteUser string `mapstructure:"remote_user"`
	// RemoteHost is the host the site is deployed to
	RemoteHost string `mapstructure:"remote_host"`
	// RemotePath is the directory on the remote host that receives the files
	RemotePath string `mapstructure:"remote_path"`
	// DeployBranch is the only branch deployments are allowed from
	DeployBranch string `mapstructure:"deploy_branch"`
	// SSHPort is used for both the probe and the rsync transport
	SSHPort int `mapstructure:"ssh_port"`
}

// Destination returns the rsync destination, user@host:path/
func (c Config) Destination() string {
	return fmt.Sprintf("%s@%s:%s/", c.RemoteUser, c.RemoteHost, c.RemotePath)
}

// Login returns user@host
func (c Config) Login() string {
	return c.RemoteUser + "@" + c.RemoteHost
}

// SyncState is the relationship between the local branch and its upstream
type SyncState int

const (
	NoUpstream SyncState = iota
	UpToDate
	Behind
	Ahead
	Diverged
)

func (s SyncState) String() string {
	switch s {
	case NoUpstream:
		return "no-upstream"
	case UpToDate:
		return "up-to-date"
	case Behind:
		return "behind"
	case Ahead:
		return "ahead"
	case Diverged:
		return "diverged"
	}
	return fmt.Sprintf("SyncState(%d)", int(s))
}

// The SyncReport type is a snapshot of the local branch against its upstream
type SyncReport struct {
	State SyncState
	// Upstream is the tracking branch name, e.g. origin/main. Empty when there is none.
	Upstream string
	Local    string
	Remote   string
	Base     string
}
