package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/redbadger/sitedeploy/command"
	"github.com/redbadger/sitedeploy/config"
	"github.com/redbadger/sitedeploy/constants"
	"github.com/redbadger/sitedeploy/deploy"
	"github.com/redbadger/sitedeploy/git"
	"github.com/redbadger/sitedeploy/rsync"
	"github.com/redbadger/sitedeploy/ssh"
)

var (
	cfgFile string
	workDir string
	dryRun  bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sitedeploy",
	Short: "Deploy index.html and style.css to a web server over rsync",
	Long: `
Deploy the site in the current directory once the repository is in a
deployable state:

	1. loads the target from deploy.conf (next to the executable)
	2. checks this is a git repository on the deploy branch
	3. asks for confirmation if there are uncommitted changes
	4. fetches and refuses to deploy if the branch is behind its upstream
	5. checks index.html and style.css exist
	6. tests the ssh connection (a failure is only a warning)
	7. rsyncs exactly those two files to REMOTE_USER@REMOTE_HOST:REMOTE_PATH/
`,
	Example:       `sitedeploy --config ~/sites/blog.conf --dry-run`,
	Version:       constants.Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initLogging)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is deploy.conf next to the executable)")
	rootCmd.Flags().StringVar(&workDir, "dir", ".", "directory holding the site")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "run every check and show what rsync would send, without sending it")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log the commands that are run")
}

func initLogging() {
	log.SetFormatter(formatter())
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// colours follow the terminal; CLICOLOR_FORCE=1 or CLICOLOR=0 override it
func formatter() *log.TextFormatter {
	return &log.TextFormatter{DisableTimestamp: true, EnvironmentOverrideColors: true}
}

func run(ctx context.Context) error {
	path := cfgFile
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"config": path,
		"target": cfg.Destination(),
		"branch": cfg.DeployBranch,
	}).Info("configuration loaded")

	dir, err := filepath.Abs(workDir)
	if err != nil {
		return fmt.Errorf("cannot resolve %s: %w", workDir, err)
	}

	d := &deploy.Deployer{
		Config:   cfg,
		Dir:      dir,
		Files:    osfs.New(dir),
		Required: constants.RequiredFiles,
		Repo:     git.New(dir, command.Exec{}),
		Prober:   ssh.Prober{Runner: command.Exec{}},
		Transfer: rsync.Transfer{Runner: command.Exec{Stream: true}, DryRun: dryRun},
		Confirm:  deploy.Prompt(os.Stdin, os.Stdout),
	}
	return d.Run(ctx)
}
