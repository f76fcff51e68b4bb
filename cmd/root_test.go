package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redbadger/sitedeploy/constants"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestVersion(t *testing.T) {
	want := "sitedeploy version " + constants.Version + "\n"
	assert.Equal(t, want, execute(t, "version"))
	assert.Equal(t, want, execute(t, "--version"), "subcommand and flag agree")
}

func TestFormatter(t *testing.T) {
	f := formatter()
	assert.True(t, f.DisableTimestamp)
	assert.True(t, f.EnvironmentOverrideColors)
	assert.False(t, f.DisableColors)
}
