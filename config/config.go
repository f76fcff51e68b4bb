package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/redbadger/sitedeploy/constants"
	"github.com/redbadger/sitedeploy/model"
)

var (
	// ErrConfigNotFound is returned when there is no configuration file
	ErrConfigNotFound = errors.New("configuration file not found")
	// ErrConfigInvalid is returned when required settings are missing or malformed
	ErrConfigInvalid = errors.New("invalid configuration")
)

// DefaultPath returns deploy.conf in the directory holding the running executable
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("cannot locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), constants.ConfigFile), nil
}

// Load reads KEY=value settings from path. Environment variables with the
// same names take precedence over the file.
func Load(path string) (cfg model.Config, err error) {
	path, err = homedir.Expand(path)
	if err != nil {
		return cfg, fmt.Errorf("cannot expand %s: %w", path, err)
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("%w: %s (copy %s to %s and edit it)", ErrConfigNotFound, path,
			filepath.Join(filepath.Dir(path), constants.ConfigTemplate), path)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	for _, key := range []string{
		constants.RemoteUserKey,
		constants.RemoteHostKey,
		constants.RemotePathKey,
		constants.DeployBranchKey,
		constants.SSHPortKey,
	} {
		v.BindEnv(strings.ToLower(key), key)
	}

	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("cannot read %s: %w", path, err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}

	applyDefaults(&cfg)
	return cfg, Validate(cfg)
}

func applyDefaults(cfg *model.Config) {
	if cfg.DeployBranch == "" {
		cfg.DeployBranch = constants.DefaultBranch
	}
	if cfg.SSHPort == 0 {
		cfg.SSHPort = constants.DefaultSSHPort
	}
}

// Validate checks that every required setting is present, naming all that are not
func Validate(cfg model.Config) error {
	var missing []string
	if cfg.RemoteUser == "" {
		missing = append(missing, constants.RemoteUserKey)
	}
	if cfg.RemoteHost == "" {
		missing = append(missing, constants.RemoteHostKey)
	}
	if cfg.RemotePath == "" {
		missing = append(missing, constants.RemotePathKey)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s must be set", ErrConfigInvalid, strings.Join(missing, ", "))
	}
	if cfg.SSHPort < 1 || cfg.SSHPort > 65535 {
		return fmt.Errorf("%w: %s %d is out of range", ErrConfigInvalid, constants.SSHPortKey, cfg.SSHPort)
	}
	return nil
}
