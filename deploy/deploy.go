package deploy

import (
	"context"
	"fmt"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	log "github.com/sirupsen/logrus"

	"github.com/redbadger/sitedeploy/config"
	"github.com/redbadger/sitedeploy/filesystem"
	"github.com/redbadger/sitedeploy/model"
)

// Repository answers questions about the git repository being deployed
type Repository interface {
	CheckRepository(ctx context.Context) error
	CurrentBranch(ctx context.Context) (string, error)
	Status(ctx context.Context) (dirty bool, summary string, err error)
	Fetch(ctx context.Context) error
	Sync(ctx context.Context) (model.SyncReport, error)
}

// Prober tries a non-interactive login to the remote host
type Prober interface {
	Probe(ctx context.Context, login string, port int) error
}

// Transferrer copies files from dir to dest
type Transferrer interface {
	Send(ctx context.Context, dir string, files []string, port int, dest string) error
}

// The Deployer type runs the checks and the transfer of a deployment
type Deployer struct {
	Config model.Config
	// Dir is the working directory the files are sent from
	Dir string
	// Files is Dir as a filesystem
	Files    billy.Filesystem
	Required []string

	Repo     Repository
	Prober   Prober
	Transfer Transferrer
	Confirm  ConfirmFunc
}

type stage struct {
	name string
	run  func(context.Context) error
}

// Run executes every stage in order and stops at the first error.
// Nothing on the remote host is modified before the final stage.
func (d *Deployer) Run(ctx context.Context) error {
	stages := []stage{
		{"configuration", d.checkConfig},
		{"repository", d.checkRepository},
		{"branch", d.checkBranch},
		{"working tree", d.checkClean},
		{"upstream", d.checkUpstream},
		{"files", d.checkFiles},
		{"connectivity", d.probe},
		{"transfer", d.transfer},
	}
	for _, s := range stages {
		log.WithField("stage", s.name).Debug("starting")
		if err := s.run(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (d *Deployer) checkConfig(ctx context.Context) error {
	return config.Validate(d.Config)
}

func (d *Deployer) checkRepository(ctx context.Context) error {
	if err := d.Repo.CheckRepository(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrNotRepository, err)
	}
	log.Info("git repository found")
	return nil
}

func (d *Deployer) checkBranch(ctx context.Context) error {
	branch, err := d.Repo.CurrentBranch(ctx)
	if err != nil {
		return fmt.Errorf("cannot determine current branch: %w", err)
	}
	if branch != d.Config.DeployBranch {
		return fmt.Errorf("%w: on %q, deployments are made from %q", ErrWrongBranch, branch, d.Config.DeployBranch)
	}
	log.WithField("branch", branch).Info("on deploy branch")
	return nil
}

func (d *Deployer) checkClean(ctx context.Context) error {
	dirty, summary, err := d.Repo.Status(ctx)
	if err != nil {
		return fmt.Errorf("cannot check working tree: %w", err)
	}
	if !dirty {
		log.Info("working tree clean")
		return nil
	}

	log.Warn("working tree has uncommitted changes")
	ok, err := d.Confirm(summary)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeclined, err)
	}
	if !ok {
		return ErrDeclined
	}
	log.Warn("deploying with uncommitted changes")
	return nil
}

func (d *Deployer) checkUpstream(ctx context.Context) error {
	log.Info("fetching from remote")
	if err := d.Repo.Fetch(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	report, err := d.Repo.Sync(ctx)
	if err != nil {
		return fmt.Errorf("cannot compare with upstream: %w", err)
	}

	l := log.WithFields(log.Fields{"upstream": report.Upstream, "state": report.State})
	switch report.State {
	case model.NoUpstream:
		l.Warn("no upstream branch configured, cannot check for newer commits")
	case model.UpToDate:
		l.Info("up to date with upstream")
	case model.Behind:
		return fmt.Errorf("%w %s: run git pull first", ErrBehindUpstream, report.Upstream)
	case model.Ahead:
		l.Warn("local branch has commits not pushed to upstream")
	case model.Diverged:
		l.Warn("local branch and upstream have diverged")
	}
	return nil
}

func (d *Deployer) checkFiles(ctx context.Context) error {
	missing, err := filesystem.Missing(d.Files, d.Required)
	if err != nil {
		return fmt.Errorf("cannot check files: %w", err)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingFiles, strings.Join(missing, ", "))
	}
	log.WithField("files", d.Required).Info("required files present")
	return nil
}

func (d *Deployer) probe(ctx context.Context) error {
	l := log.WithFields(log.Fields{"host": d.Config.RemoteHost, "port": d.Config.SSHPort})
	if err := d.Prober.Probe(ctx, d.Config.Login(), d.Config.SSHPort); err != nil {
		l.WithError(err).Warn("ssh connection test failed, the transfer may still prompt for authentication")
		return nil
	}
	l.Info("ssh connection ok")
	return nil
}

func (d *Deployer) transfer(ctx context.Context) error {
	dest := d.Config.Destination()
	log.WithField("destination", dest).Info("transferring files")
	if err := d.Transfer.Send(ctx, d.Dir, d.Required, d.Config.SSHPort, dest); err != nil {
		return fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}
	log.WithFields(log.Fields{
		"files":       strings.Join(d.Required, ", "),
		"destination": dest,
	}).Info("deployment complete")
	return nil
}
