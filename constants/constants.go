package constants

const (
	// Version is the application version reported by `sitedeploy version` and `sitedeploy --version`
	Version = "0.2"
	// ConfigFile is the name of the configuration file looked up next to the executable
	ConfigFile = "deploy.conf"
	// ConfigTemplate is the name of the example configuration shipped alongside the executable
	ConfigTemplate = "deploy.conf.example"
	// DefaultBranch is the branch deployments are made from when DEPLOY_BRANCH is unset
	DefaultBranch = "main"
	// DefaultSSHPort is used when SSH_PORT is unset
	DefaultSSHPort = 22
	// ProbeTimeout is the ssh ConnectTimeout, in seconds, of the connectivity probe
	ProbeTimeout = 10
)

// Configuration keys, as they appear in deploy.conf and the environment
const (
	RemoteUserKey   = "REMOTE_USER"
	RemoteHostKey   = "REMOTE_HOST"
	RemotePathKey   = "REMOTE_PATH"
	DeployBranchKey = "DEPLOY_BRANCH"
	SSHPortKey      = "SSH_PORT"
)

// RequiredFiles are the only files ever deployed
var RequiredFiles = []string{"index.html", "style.css"}
